package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easayliu/alist-aria2-metainfo/internal/infrastructure/aria2"
)

type stubVersion struct {
	err error
}

func (s stubVersion) GetVersion(ctx context.Context) (*aria2.VersionResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &aria2.VersionResult{Version: "1.37.0"}, nil
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name        string
		aria2       VersionGetter
		wantAria2   string
		wantVersion string
	}{
		{"disabled", nil, "disabled", ""},
		{"connected", stubVersion{}, "connected", "1.37.0"},
		{"unavailable", stubVersion{err: errors.New("refused")}, "unavailable", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.GET("/health", NewHealthHandler("rls", tt.aria2).HealthCheck)

			w, env := doRequest(t, router, http.MethodGet, "/health", nil)
			require.Equal(t, http.StatusOK, w.Code)

			var status HealthStatus
			require.NoError(t, json.Unmarshal(env.Data, &status))
			assert.Equal(t, "ok", status.Status)
			assert.Equal(t, "rls", status.Tagger)
			assert.Equal(t, tt.wantAria2, status.Aria2)
			assert.Equal(t, tt.wantVersion, status.Aria2Version)
		})
	}
}
