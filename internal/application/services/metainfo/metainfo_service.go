package metainfo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/easayliu/alist-aria2-metainfo/internal/domain/models/meta"
	domain "github.com/easayliu/alist-aria2-metainfo/internal/domain/services/metainfo"
	"github.com/easayliu/alist-aria2-metainfo/internal/infrastructure/aria2"
	apperrors "github.com/easayliu/alist-aria2-metainfo/internal/shared/errors"
	"github.com/easayliu/alist-aria2-metainfo/pkg/logger"
	fileutil "github.com/easayliu/alist-aria2-metainfo/pkg/utils/file"
	"github.com/easayliu/alist-aria2-metainfo/pkg/utils/media"
)

// 单次批量解析的上限
const MaxBatchSize = 200

// DownloadReader 读取下载任务
type DownloadReader interface {
	GetStatus(ctx context.Context, gid string) (*aria2.StatusResult, error)
	GetStopped(ctx context.Context, offset, num int) ([]aria2.StatusResult, error)
}

// ParseRequest 单条解析请求
type ParseRequest struct {
	Title    string `json:"title" binding:"required" example:"[Airota][Yuru Camp][12][1080p]"`
	Subtitle string `json:"subtitle" example:"第12集"`
	Path     string `json:"path" example:"/downloads/Yuru Camp 12.mkv"`
	Enrich   bool   `json:"enrich"`
}

// FileMetaInfo 下载任务中单个文件的识别结果
type FileMetaInfo struct {
	Path      string               `json:"path"`
	Name      string               `json:"name"`
	Size      int64                `json:"size"`
	Extra     bool                 `json:"extra"` // 花絮、预告等附加内容
	ExtraKind string               `json:"extra_kind,omitempty"`
	Metadata  *meta.ParsedMetadata `json:"metadata"`
}

// DownloadMetaInfo 下载任务的识别结果
type DownloadMetaInfo struct {
	GID    string         `json:"gid"`
	Status string         `json:"status"`
	Dir    string         `json:"dir"`
	Files  []FileMetaInfo `json:"files"`
}

// Options 服务配置
type Options struct {
	// 未在请求中指定时是否探测视频
	EnrichByDefault bool
	VideoExtensions []string
}

// Service 元信息应用服务
type Service struct {
	parser    *domain.Parser
	words     *CustomWords
	downloads DownloadReader
	opts      Options
}

// NewService downloads 可为 nil,此时下载相关操作返回 SERVICE_UNAVAILABLE
func NewService(parser *domain.Parser, words *CustomWords, downloads DownloadReader, opts Options) *Service {
	if words == nil {
		words = CompileCustomWords(nil, nil)
	}
	return &Service{
		parser:    parser,
		words:     words,
		downloads: downloads,
		opts:      opts,
	}
}

// Parse 解析单条发布名
func (s *Service) Parse(ctx context.Context, req ParseRequest) (*meta.ParsedMetadata, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewServiceError(apperrors.ErrorCodeInvalidRequest, "title is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewServiceErrorWithCause(apperrors.ErrorCodeTimeout, "request canceled", err)
	}
	return s.parse(ctx, req), nil
}

func (s *Service) parse(ctx context.Context, req ParseRequest) *meta.ParsedMetadata {
	title, applied := s.words.Apply(req.Title)
	subtitle, subApplied := s.words.Apply(req.Subtitle)

	result := s.parser.Parse(ctx, domain.Input{
		Title:         title,
		Subtitle:      subtitle,
		AppliedWords:  append(applied, subApplied...),
		Customization: s.words.Customization(req.Title),
		Path:          req.Path,
		Enrich:        req.Enrich || s.opts.EnrichByDefault,
	})
	// 溯源保留处理前的原始标题
	result.OrgString = req.Title
	return result
}

// ParseBatch 批量解析,结果与请求一一对应;任一请求无效时整体失败
func (s *Service) ParseBatch(ctx context.Context, reqs []ParseRequest) ([]*meta.ParsedMetadata, error) {
	if len(reqs) == 0 {
		return nil, apperrors.NewServiceError(apperrors.ErrorCodeInvalidRequest, "items must not be empty")
	}
	if len(reqs) > MaxBatchSize {
		return nil, apperrors.NewServiceError(apperrors.ErrorCodeInvalidRequest,
			fmt.Sprintf("at most %d items per batch", MaxBatchSize))
	}
	for i, req := range reqs {
		if strings.TrimSpace(req.Title) == "" {
			return nil, apperrors.NewServiceError(apperrors.ErrorCodeInvalidRequest,
				fmt.Sprintf("items[%d].title is required", i))
		}
	}

	results := make([]*meta.ParsedMetadata, 0, len(reqs))
	for _, req := range reqs {
		if err := ctx.Err(); err != nil {
			return nil, apperrors.NewServiceErrorWithCause(apperrors.ErrorCodeTimeout, "request canceled", err)
		}
		results = append(results, s.parse(ctx, req))
	}
	return results, nil
}

// InspectDownload 识别下载任务中的全部视频文件
func (s *Service) InspectDownload(ctx context.Context, gid string) (*DownloadMetaInfo, error) {
	if strings.TrimSpace(gid) == "" {
		return nil, apperrors.NewServiceError(apperrors.ErrorCodeInvalidRequest, "gid is required")
	}
	if s.downloads == nil {
		return nil, apperrors.NewServiceError(apperrors.ErrorCodeServiceUnavailable, "aria2 is not configured")
	}

	status, err := s.downloads.GetStatus(ctx, gid)
	if err != nil {
		var rpcErr *aria2.RPCError
		if errors.As(err, &rpcErr) {
			return nil, apperrors.NewServiceErrorWithCause(apperrors.ErrorCodeNotFound, "download not found", err).
				WithDetail("gid", gid)
		}
		return nil, apperrors.NewServiceErrorWithCause(apperrors.ErrorCodeServiceUnavailable,
			"failed to query aria2", fmt.Errorf("tell status %s: %w", gid, err))
	}
	return s.inspect(ctx, status), nil
}

func (s *Service) inspect(ctx context.Context, status *aria2.StatusResult) *DownloadMetaInfo {
	info := &DownloadMetaInfo{
		GID:    status.GID,
		Status: status.Status,
		Dir:    status.Dir,
		Files:  []FileMetaInfo{},
	}

	for _, f := range status.Files {
		if f.Selected == "false" || !fileutil.IsVideoFile(f.Path, s.opts.VideoExtensions) {
			continue
		}
		name := f.Name()
		// 未完成的文件无法探测
		path := ""
		if status.Status == aria2.StatusComplete {
			path = f.Path
		}
		kind := media.ClassifyExtra(name)
		info.Files = append(info.Files, FileMetaInfo{
			Path:      f.Path,
			Name:      name,
			Size:      f.Size(),
			Extra:     kind != media.ExtraNone,
			ExtraKind: string(kind),
			Metadata:  s.parse(ctx, ParseRequest{Title: name, Path: path}),
		})
	}

	logger.Debug("download inspected", "gid", status.GID, "files", len(info.Files))
	return info
}
