package handlers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/easayliu/alist-aria2-metainfo/internal/application/services/metainfo"
	"github.com/easayliu/alist-aria2-metainfo/internal/domain/models/meta"
	apperrors "github.com/easayliu/alist-aria2-metainfo/internal/shared/errors"
	httputil "github.com/easayliu/alist-aria2-metainfo/pkg/utils"
)

// MetaInfoService handler 依赖的应用服务
type MetaInfoService interface {
	Parse(ctx context.Context, req metainfo.ParseRequest) (*meta.ParsedMetadata, error)
	ParseBatch(ctx context.Context, reqs []metainfo.ParseRequest) ([]*meta.ParsedMetadata, error)
	InspectDownload(ctx context.Context, gid string) (*metainfo.DownloadMetaInfo, error)
}

// BatchParseRequest 批量解析请求
type BatchParseRequest struct {
	Items []metainfo.ParseRequest `json:"items" binding:"required"`
}

// BatchParseResponse 批量解析结果,与请求顺序一致
type BatchParseResponse struct {
	Items []*meta.ParsedMetadata `json:"items"`
}

// MetaInfoHandler 元信息识别接口
type MetaInfoHandler struct {
	service MetaInfoService
}

func NewMetaInfoHandler(service MetaInfoService) *MetaInfoHandler {
	return &MetaInfoHandler{service: service}
}

// Parse 识别单条发布名
// @Summary 识别发布名
// @Description 从种子/文件名中推断中英文名、年份、季集、分辨率、编码等信息
// @Tags 元信息
// @Accept json
// @Produce json
// @Param request body metainfo.ParseRequest true "解析请求"
// @Success 200 {object} httputil.Response{data=meta.ParsedMetadata} "识别结果"
// @Failure 400 {object} httputil.Response "请求参数错误"
// @Failure 429 {object} httputil.Response "请求过于频繁"
// @Router /metainfo/parse [post]
func (h *MetaInfoHandler) Parse(c *gin.Context) {
	// 1. 解析HTTP请求
	var req metainfo.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	// 2. 调用应用服务
	result, err := h.service.Parse(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	httputil.Success(c, result)
}

// ParseBatch 批量识别
// @Summary 批量识别发布名
// @Description 一次识别多条发布名,单次最多200条,任一条无效时整体返回400
// @Tags 元信息
// @Accept json
// @Produce json
// @Param request body BatchParseRequest true "批量解析请求"
// @Success 200 {object} httputil.Response{data=BatchParseResponse} "识别结果"
// @Failure 400 {object} httputil.Response "请求参数错误"
// @Router /metainfo/batch [post]
func (h *MetaInfoHandler) ParseBatch(c *gin.Context) {
	var req BatchParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	results, err := h.service.ParseBatch(c.Request.Context(), req.Items)
	if err != nil {
		_ = c.Error(err)
		return
	}

	httputil.Success(c, BatchParseResponse{Items: results})
}

// InspectDownload 识别下载任务中的视频文件
// @Summary 识别下载任务
// @Description 读取 aria2 任务的文件列表并逐个识别,任务完成时可探测视频流
// @Tags 元信息
// @Produce json
// @Param gid path string true "aria2 任务GID"
// @Success 200 {object} httputil.Response{data=metainfo.DownloadMetaInfo} "识别结果"
// @Failure 404 {object} httputil.Response "任务不存在"
// @Failure 503 {object} httputil.Response "aria2 不可用"
// @Router /downloads/{gid}/metainfo [get]
func (h *MetaInfoHandler) InspectDownload(c *gin.Context) {
	gid := strings.TrimSpace(c.Param("gid"))
	if gid == "" {
		_ = c.Error(apperrors.NewServiceError(apperrors.ErrorCodeInvalidRequest, "gid is required"))
		return
	}

	info, err := h.service.InspectDownload(c.Request.Context(), gid)
	if err != nil {
		_ = c.Error(err)
		return
	}

	httputil.Success(c, info)
}

func invalidRequest(err error) error {
	return apperrors.NewServiceErrorWithCause(apperrors.ErrorCodeInvalidRequest,
		"Invalid request parameters: "+err.Error(), err)
}
