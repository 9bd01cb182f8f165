package metainfo

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/easayliu/alist-aria2-metainfo/internal/infrastructure/aria2"
	"github.com/easayliu/alist-aria2-metainfo/pkg/logger"
	strutil "github.com/easayliu/alist-aria2-metainfo/pkg/utils/string"
)

// Notifier 发送通知
type Notifier interface {
	Notify(text string) error
}

// SeenStore 记录已处理的任务
type SeenStore interface {
	// MarkSeen 首次记录返回 true
	MarkSeen(gid string) (bool, error)
}

// WatcherOptions 监听配置
type WatcherOptions struct {
	Cron    string // 5字段 cron 表达式
	Batch   int    // 每次拉取的已停止任务数
	Timeout time.Duration
	Store   SeenStore // 为空时只在内存中去重
}

type memorySeenStore struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func (m *memorySeenStore) MarkSeen(gid string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.seen[gid]; ok {
		return false, nil
	}
	m.seen[gid] = struct{}{}
	return true, nil
}

// DownloadWatcher 定时拉取 aria2 已完成的任务并识别,每个任务只处理一次
type DownloadWatcher struct {
	service   *Service
	downloads DownloadReader
	notifier  Notifier
	opts      WatcherOptions

	cron    *cron.Cron
	entryID cron.EntryID
	mu      sync.Mutex
	running bool
}

// NewDownloadWatcher notifier 可为 nil
func NewDownloadWatcher(service *Service, downloads DownloadReader, notifier Notifier, opts WatcherOptions) *DownloadWatcher {
	if opts.Batch <= 0 {
		opts.Batch = 50
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 2 * time.Minute
	}
	if opts.Store == nil {
		opts.Store = &memorySeenStore{seen: make(map[string]struct{})}
	}
	return &DownloadWatcher{
		service:   service,
		downloads: downloads,
		notifier:  notifier,
		opts:      opts,
		cron:      cron.New(), // 使用标准5字段格式(分 时 日 月 周)
	}
}

// Start 注册定时任务并启动
func (w *DownloadWatcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return fmt.Errorf("download watcher already running")
	}
	if _, err := cron.ParseStandard(w.opts.Cron); err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}

	id, err := w.cron.AddFunc(w.opts.Cron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), w.opts.Timeout)
		defer cancel()
		if _, err := w.Poll(ctx); err != nil {
			logger.Warn("download watcher poll failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule watcher: %w", err)
	}

	w.entryID = id
	w.cron.Start()
	w.running = true
	logger.Info("Download watcher started", "cron", w.opts.Cron, "batch", w.opts.Batch)
	return nil
}

// Stop 停止定时任务,等待正在执行的轮询结束
func (w *DownloadWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	<-w.cron.Stop().Done()
	w.cron.Remove(w.entryID)
	w.running = false
	logger.Info("Download watcher stopped")
}

// Poll 执行一次轮询,返回本次新识别的任务
func (w *DownloadWatcher) Poll(ctx context.Context) ([]*DownloadMetaInfo, error) {
	stopped, err := w.downloads.GetStopped(ctx, 0, w.opts.Batch)
	if err != nil {
		return nil, fmt.Errorf("tell stopped: %w", err)
	}

	var found []*DownloadMetaInfo
	for i := range stopped {
		status := &stopped[i]
		if status.Status != aria2.StatusComplete || !w.markSeen(status.GID) {
			continue
		}

		info := w.service.inspect(ctx, status)
		if len(info.Files) == 0 {
			continue
		}
		found = append(found, info)

		for _, f := range info.Files {
			logger.Info("download identified",
				"gid", info.GID,
				"file", f.Name,
				"summary", f.Metadata.Summary())
		}
		w.notify(info)
	}
	return found, nil
}

// markSeen 首次出现返回 true;持久化失败时仍按首次处理,只记录警告
func (w *DownloadWatcher) markSeen(gid string) bool {
	first, err := w.opts.Store.MarkSeen(gid)
	if err != nil {
		logger.Warn("failed to record processed download", "gid", gid, "error", err)
	}
	return first
}

func (w *DownloadWatcher) notify(info *DownloadMetaInfo) {
	if w.notifier == nil {
		return
	}
	if err := w.notifier.Notify(FormatDownloadMessage(info)); err != nil {
		logger.Warn("download notification failed", "gid", info.GID, "error", err)
	}
}

// FormatDownloadMessage 下载识别结果的 HTML 消息
func FormatDownloadMessage(info *DownloadMetaInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ <b>下载完成</b> <code>%s</code>\n", strutil.EscapeHTML(info.GID))
	for _, f := range info.Files {
		marker := "🎬"
		if f.Extra {
			marker = "📎"
		}
		fmt.Fprintf(&b, "\n%s <code>%s</code> (%s)\n%s\n", marker,
			strutil.EscapeHTML(f.Name), strutil.FormatFileSize(f.Size), strutil.EscapeHTML(f.Metadata.Summary()))
	}
	return b.String()
}
