// Package ffprobe 调用 ffprobe 读取视频流信息。
package ffprobe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"

	"github.com/spf13/afero"

	"github.com/easayliu/alist-aria2-metainfo/internal/domain/models/meta"
	"github.com/easayliu/alist-aria2-metainfo/pkg/logger"
)

const defaultTimeout = 10 * time.Second

// runFunc 执行 ffprobe 并返回标准输出
type runFunc func(ctx context.Context, bin string, args ...string) ([]byte, error)

// Client ffprobe 客户端,实现 metainfo.Prober
type Client struct {
	bin     string
	timeout time.Duration
	fs      afero.Fs
	run     runFunc
}

// NewClient 创建客户端,bin 为空时从 PATH 查找 ffprobe
func NewClient(bin string, timeout time.Duration) *Client {
	if bin == "" {
		bin = "ffprobe"
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		bin:     bin,
		timeout: timeout,
		fs:      afero.NewOsFs(),
		run:     runCommand,
	}
}

func runCommand(ctx context.Context, bin string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, bin, args...).Output()
}

// Probe 读取文件的流信息,文件不存在、超时或输出无法解析时返回 nil
func (c *Client) Probe(ctx context.Context, path string) *meta.ProbeResult {
	result, err := c.probe(ctx, path)
	if err != nil {
		logger.Debug("ffprobe unavailable", "path", path, "error", err)
		return nil
	}
	return result
}

func (c *Client) probe(ctx context.Context, path string) (*meta.ProbeResult, error) {
	exists, err := afero.Exists(c.fs, path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !exists {
		return nil, fmt.Errorf("file not found: %s", path)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	output, err := c.run(ctx, c.bin, "-v", "quiet", "-print_format", "json", "-show_streams", path)
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	var result meta.ProbeResult
	if err := json.Unmarshal(output, &result); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}
	return &result, nil
}
