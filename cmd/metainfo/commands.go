package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/easayliu/alist-aria2-metainfo/internal/application/container"
	"github.com/easayliu/alist-aria2-metainfo/internal/application/services/metainfo"
	"github.com/easayliu/alist-aria2-metainfo/internal/domain/models/meta"
	"github.com/easayliu/alist-aria2-metainfo/internal/infrastructure/config"
	"github.com/easayliu/alist-aria2-metainfo/internal/infrastructure/tagger"
	"github.com/easayliu/alist-aria2-metainfo/pkg/logger"
)

type rootOptions struct {
	configDirs []string
	tagger     string
	logLevel   string
	asJSON     bool
	fs         afero.Fs
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	opts := &rootOptions{fs: fs}

	root := &cobra.Command{
		Use:           "metainfo",
		Short:         "Infer media metadata from release names",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// 日志写到 stderr,避免混入 JSON 输出
			return logger.Init(logger.Options{Level: opts.logLevel, Output: "stderr"})
		},
	}

	flags := root.PersistentFlags()
	flags.StringSliceVar(&opts.configDirs, "config-dir", []string{"./configs", "."}, "directories searched for config.yaml")
	flags.StringVar(&opts.tagger, "tagger", "", "tagger to use ("+strings.Join(tagger.Names(), ", ")+"), overrides config")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level")
	flags.BoolVar(&opts.asJSON, "json", false, "print results as JSON")

	root.AddCommand(newParseCmd(opts))
	root.AddCommand(newBatchCmd(opts))
	root.AddCommand(newTaggersCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newParseCmd(opts *rootOptions) *cobra.Command {
	var req metainfo.ParseRequest

	cmd := &cobra.Command{
		Use:   "parse <title>",
		Short: "Parse a single release name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			req.Title = strings.Join(args, " ")
			result, err := svc.Parse(cmd.Context(), req)
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&req.Subtitle, "subtitle", "", "subtitle or description of the release")
	cmd.Flags().StringVar(&req.Path, "path", "", "local video file used for stream probing")
	cmd.Flags().BoolVar(&req.Enrich, "enrich", false, "probe the video file with ffprobe")
	return cmd
}

func newBatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [file]",
		Short: "Parse release names line by line from a file or stdin",
		Long:  "Each non-empty line is parsed separately. A line may carry a subtitle after a '|' separator.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := opts.fs.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			reqs, err := readRequests(in)
			if err != nil {
				return err
			}
			if len(reqs) == 0 {
				return nil
			}

			svc, err := opts.service()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			// 逐条解析,输入条数不受批量接口上限约束
			for i, req := range reqs {
				result, err := svc.Parse(cmd.Context(), req)
				if err != nil {
					return fmt.Errorf("line %d: %w", i+1, err)
				}
				if !opts.asJSON && i > 0 {
					fmt.Fprintln(out)
				}
				if err := opts.print(out, result); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newTaggersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "taggers",
		Short: "List available taggers",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range tagger.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

// service 按配置装配解析服务,不连接 Telegram
func (o *rootOptions) service() (*metainfo.Service, error) {
	cfg, err := config.Load(o.configDirs...)
	if err != nil {
		return nil, err
	}
	if o.tagger != "" {
		cfg.Parser.Tagger = o.tagger
	}
	c, err := container.NewServiceContainer(cfg, container.WithFs(o.fs), container.WithoutTelegram())
	if err != nil {
		return nil, err
	}
	return c.GetMetaInfoService(), nil
}

func (o *rootOptions) print(w io.Writer, result *meta.ParsedMetadata) error {
	if o.asJSON {
		return json.NewEncoder(w).Encode(result)
	}
	printText(w, result)
	return nil
}

func readRequests(r io.Reader) ([]metainfo.ParseRequest, error) {
	var reqs []metainfo.ParseRequest
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		title, subtitle, _ := strings.Cut(line, "|")
		reqs = append(reqs, metainfo.ParseRequest{
			Title:    strings.TrimSpace(title),
			Subtitle: strings.TrimSpace(subtitle),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return reqs, nil
}

func printText(w io.Writer, p *meta.ParsedMetadata) {
	fmt.Fprintf(w, "%-14s %s\n", "title:", p.OrgString)
	fmt.Fprintf(w, "%-14s %s\n", "type:", p.Type)

	fields := []struct {
		label string
		value string
	}{
		{"cn_name:", p.CNName},
		{"en_name:", p.ENName},
		{"year:", p.Year},
		{"season/ep:", p.SeasonEpisode()},
		{"part:", p.Part},
		{"edition:", p.Edition},
		{"source:", p.ResourceType},
		{"effect:", p.ResourceEffect},
		{"resolution:", p.ResourcePix},
		{"video:", p.VideoEncode},
		{"audio:", p.AudioEncode},
		{"web_source:", p.WebSource},
		{"group:", p.ResourceTeam},
		{"color_space:", p.ColorSpace},
		{"customization:", p.Customization},
	}
	for _, f := range fields {
		if f.value != "" {
			fmt.Fprintf(w, "%-14s %s\n", f.label, f.value)
		}
	}
	if len(p.AppliedWords) > 0 {
		fmt.Fprintf(w, "%-14s %s\n", "words:", strings.Join(p.AppliedWords, ", "))
	}
}
