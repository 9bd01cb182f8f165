package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/spf13/afero"
)

// 默认最多保留的记录数
const defaultSeenLimit = 5000

// SeenRecord 已处理的下载任务
type SeenRecord struct {
	GID    string    `json:"gid"`
	SeenAt time.Time `json:"seen_at"`
}

// SeenRepository 以 JSON 文件记录已识别的下载任务,重启后不会重复通知
type SeenRepository struct {
	fs       afero.Fs
	filePath string
	limit    int
	mu       sync.Mutex
	records  map[string]time.Time
	now      func() time.Time
}

// NewSeenRepository limit<=0 时使用默认上限
func NewSeenRepository(fs afero.Fs, filePath string, limit int) (*SeenRepository, error) {
	if limit <= 0 {
		limit = defaultSeenLimit
	}
	// 确保数据目录存在
	if err := fs.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	repo := &SeenRepository{
		fs:       fs,
		filePath: filePath,
		limit:    limit,
		records:  make(map[string]time.Time),
		now:      time.Now,
	}

	// 加载已存在的记录
	if err := repo.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load seen records: %w", err)
	}
	return repo, nil
}

// load 从文件加载记录
func (r *SeenRepository) load() error {
	data, err := afero.ReadFile(r.fs, r.filePath)
	if err != nil {
		return err
	}

	var records []SeenRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range records {
		r.records[rec.GID] = rec.SeenAt
	}
	return nil
}

// saveUnlocked 保存到文件(调用时必须已经持有锁),先写临时文件再替换
func (r *SeenRepository) saveUnlocked() error {
	data, err := json.MarshalIndent(r.sortedUnlocked(), "", "  ")
	if err != nil {
		return err
	}

	tmp := r.filePath + ".tmp"
	if err := afero.WriteFile(r.fs, tmp, data, 0o644); err != nil {
		return err
	}
	return r.fs.Rename(tmp, r.filePath)
}

// sortedUnlocked 按时间从新到旧排列
func (r *SeenRepository) sortedUnlocked() []SeenRecord {
	records := make([]SeenRecord, 0, len(r.records))
	for gid, at := range r.records {
		records = append(records, SeenRecord{GID: gid, SeenAt: at})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].SeenAt.Equal(records[j].SeenAt) {
			return records[i].GID < records[j].GID
		}
		return records[i].SeenAt.After(records[j].SeenAt)
	})
	return records
}

// MarkSeen 记录任务,首次出现返回 true;超过上限时淘汰最旧的记录
func (r *SeenRepository) MarkSeen(gid string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[gid]; exists {
		return false, nil
	}
	r.records[gid] = r.now()

	if len(r.records) > r.limit {
		sorted := r.sortedUnlocked()
		for _, rec := range sorted[r.limit:] {
			delete(r.records, rec.GID)
		}
	}
	if err := r.saveUnlocked(); err != nil {
		return true, fmt.Errorf("failed to save seen records: %w", err)
	}
	return true, nil
}

// Len 当前记录数
func (r *SeenRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}
