package container

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/easayliu/alist-aria2-metainfo/internal/application/services/metainfo"
	domain "github.com/easayliu/alist-aria2-metainfo/internal/domain/services/metainfo"
	"github.com/easayliu/alist-aria2-metainfo/internal/infrastructure/aria2"
	"github.com/easayliu/alist-aria2-metainfo/internal/infrastructure/config"
	"github.com/easayliu/alist-aria2-metainfo/internal/infrastructure/ffprobe"
	"github.com/easayliu/alist-aria2-metainfo/internal/infrastructure/repository"
	"github.com/easayliu/alist-aria2-metainfo/internal/infrastructure/tagger"
	"github.com/easayliu/alist-aria2-metainfo/internal/infrastructure/telegram"
	"github.com/easayliu/alist-aria2-metainfo/pkg/logger"
)

// ServiceContainer 服务容器 - 按配置装配各层依赖
type ServiceContainer struct {
	config *config.Config

	taggerName string
	words      *metainfo.CustomWords
	service    *metainfo.Service

	aria2Client    *aria2.Client
	telegramClient *telegram.Client
	watcher        *metainfo.DownloadWatcher
}

// Option 覆盖默认装配
type Option func(*options)

type options struct {
	fs           afero.Fs
	withTelegram bool
}

// WithFs 指定读取识别词文件的文件系统
func WithFs(fs afero.Fs) Option {
	return func(o *options) { o.fs = fs }
}

// WithoutTelegram 不连接 Telegram,命令行模式下使用
func WithoutTelegram() Option {
	return func(o *options) { o.withTelegram = false }
}

// NewServiceContainer 创建服务容器
func NewServiceContainer(cfg *config.Config, opts ...Option) (*ServiceContainer, error) {
	o := options{fs: afero.NewOsFs(), withTelegram: true}
	for _, opt := range opts {
		opt(&o)
	}

	c := &ServiceContainer{config: cfg}

	// 1. 解析器
	t, err := tagger.New(cfg.Parser.Tagger)
	if err != nil {
		return nil, fmt.Errorf("failed to create tagger: %w", err)
	}
	c.taggerName = cfg.Parser.Tagger
	if c.taggerName == "" {
		c.taggerName = tagger.NameRLS
	}

	var prober domain.Prober
	if cfg.Parser.FFprobePath != "" {
		prober = ffprobe.NewClient(cfg.Parser.FFprobePath, cfg.Parser.ProbeTimeout)
	}
	parser := domain.NewParser(t, prober)

	// 2. 自定义识别词
	lines := append([]string{}, cfg.Parser.CustomWords...)
	if cfg.Parser.CustomWordsFile != "" {
		fileLines, err := ReadWordsFile(o.fs, cfg.Parser.CustomWordsFile)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fileLines...)
	}
	c.words = metainfo.CompileCustomWords(lines, cfg.Parser.Customization)

	// 3. 基础设施客户端
	var downloads metainfo.DownloadReader
	if cfg.Aria2.RpcURL != "" {
		c.aria2Client = aria2.NewClient(cfg.Aria2.RpcURL, cfg.Aria2.Token)
		downloads = c.aria2Client
	}
	if o.withTelegram && cfg.Telegram.Enabled && cfg.Telegram.BotToken != "" {
		c.telegramClient = telegram.NewClient(&cfg.Telegram)
	}

	// 4. 应用服务
	c.service = metainfo.NewService(parser, c.words, downloads, metainfo.Options{
		EnrichByDefault: cfg.Parser.EnrichMediaInfo,
		VideoExtensions: cfg.Parser.VideoExtensions,
	})

	if cfg.Watcher.Enabled && downloads != nil {
		var notifier metainfo.Notifier
		if cfg.Watcher.Notify && c.telegramClient != nil {
			notifier = c.telegramClient
		}
		watcherOpts := metainfo.WatcherOptions{
			Cron:  cfg.Watcher.Cron,
			Batch: cfg.Watcher.Batch,
		}
		if cfg.Watcher.StateFile != "" {
			store, err := repository.NewSeenRepository(o.fs, cfg.Watcher.StateFile, 0)
			if err != nil {
				return nil, err
			}
			watcherOpts.Store = store
		}
		c.watcher = metainfo.NewDownloadWatcher(c.service, downloads, notifier, watcherOpts)
	}

	logger.Info("Service container initialized",
		"tagger", c.taggerName,
		"customWords", c.words.Len(),
		"aria2", c.aria2Client != nil,
		"telegram", c.telegramClient != nil,
		"watcher", c.watcher != nil)
	return c, nil
}

// ReadWordsFile 读取识别词文件,忽略空行和 # 注释
func ReadWordsFile(fs afero.Fs, path string) ([]string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open custom words file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read custom words file: %w", err)
	}
	return lines, nil
}

// GetConfig 获取配置
func (c *ServiceContainer) GetConfig() *config.Config {
	return c.config
}

// GetMetaInfoService 获取元信息服务
func (c *ServiceContainer) GetMetaInfoService() *metainfo.Service {
	return c.service
}

// GetTaggerName 当前使用的打标器
func (c *ServiceContainer) GetTaggerName() string {
	return c.taggerName
}

// GetAria2Client 未配置时为 nil
func (c *ServiceContainer) GetAria2Client() *aria2.Client {
	return c.aria2Client
}

// GetTelegramClient 未启用时为 nil
func (c *ServiceContainer) GetTelegramClient() *telegram.Client {
	return c.telegramClient
}

// GetDownloadWatcher 未启用时为 nil
func (c *ServiceContainer) GetDownloadWatcher() *metainfo.DownloadWatcher {
	return c.watcher
}
