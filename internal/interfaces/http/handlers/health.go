package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/easayliu/alist-aria2-metainfo/internal/infrastructure/aria2"
	httputil "github.com/easayliu/alist-aria2-metainfo/pkg/utils"
)

// VersionGetter 用于检查 aria2 连通性
type VersionGetter interface {
	GetVersion(ctx context.Context) (*aria2.VersionResult, error)
}

// HealthStatus 健康检查结果
type HealthStatus struct {
	Status       string `json:"status"`
	Tagger       string `json:"tagger"`
	Aria2        string `json:"aria2"` // connected | unavailable | disabled
	Aria2Version string `json:"aria2_version,omitempty"`
}

type HealthHandler struct {
	tagger string
	aria2  VersionGetter
}

// NewHealthHandler aria2 可为 nil
func NewHealthHandler(tagger string, aria2 VersionGetter) *HealthHandler {
	return &HealthHandler{tagger: tagger, aria2: aria2}
}

// HealthCheck 健康检查
// @Summary 健康检查
// @Description 检查服务健康状态,aria2 不可用不影响识别接口
// @Tags 健康检查
// @Produce json
// @Success 200 {object} httputil.Response{data=HealthStatus}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status := HealthStatus{Status: "ok", Tagger: h.tagger, Aria2: "disabled"}

	if h.aria2 != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if version, err := h.aria2.GetVersion(ctx); err != nil {
			status.Aria2 = "unavailable"
		} else {
			status.Aria2 = "connected"
			status.Aria2Version = version.Version
		}
	}

	httputil.Success(c, status)
}
