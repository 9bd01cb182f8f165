package aria2

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// 任务状态
const (
	StatusActive   = "active"
	StatusWaiting  = "waiting"
	StatusPaused   = "paused"
	StatusError    = "error"
	StatusComplete = "complete"
	StatusRemoved  = "removed"
)

// Client Aria2 JSON-RPC 客户端,只读取任务信息
type Client struct {
	RpcURL     string
	Token      string
	httpClient *http.Client
}

// NewClient 创建新的Aria2客户端
func NewClient(rpcURL, token string) *Client {
	return &Client{
		RpcURL: rpcURL,
		Token:  token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// RPCRequest JSON-RPC请求结构
type RPCRequest struct {
	Version string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	ID      string        `json:"id"`
	Params  []interface{} `json:"params"`
}

// RPCResponse JSON-RPC响应结构
type RPCResponse struct {
	Version string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError JSON-RPC错误结构
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("RPC error: %s (code: %d)", e.Message, e.Code)
}

// File 任务中的单个文件
type File struct {
	Index    string `json:"index"`
	Path     string `json:"path"`
	Length   string `json:"length"`
	Selected string `json:"selected"`
}

// Name 文件名,不含目录
func (f File) Name() string {
	return filepath.Base(f.Path)
}

// Size 文件字节数,无法解析时为 0
func (f File) Size() int64 {
	n, _ := strconv.ParseInt(f.Length, 10, 64)
	return n
}

// StatusResult 状态查询结果
type StatusResult struct {
	GID             string `json:"gid"`
	Status          string `json:"status"`
	TotalLength     string `json:"totalLength"`
	CompletedLength string `json:"completedLength"`
	Dir             string `json:"dir"`
	ErrorCode       string `json:"errorCode,omitempty"`
	ErrorMessage    string `json:"errorMessage,omitempty"`
	Files           []File `json:"files,omitempty"`
}

// VersionResult 版本信息结果
type VersionResult struct {
	Version  string   `json:"version"`
	Features []string `json:"enabledFeatures"`
}

// callRPC 调用RPC方法并将 result 解码到 out
func (c *Client) callRPC(ctx context.Context, method string, params []interface{}, out interface{}) error {
	// 如果有token,添加到参数前面
	if c.Token != "" {
		params = append([]interface{}{"token:" + c.Token}, params...)
	}

	request := RPCRequest{
		Version: "2.0",
		Method:  method,
		ID:      uuid.NewString(),
		Params:  params,
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.RpcURL, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var rpcResp RPCResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if rpcResp.Error != nil {
		return rpcResp.Error
	}

	if out != nil {
		if err := json.Unmarshal(rpcResp.Result, out); err != nil {
			return fmt.Errorf("failed to parse %s result: %w", method, err)
		}
	}
	return nil
}

// GetStatus 获取下载状态
func (c *Client) GetStatus(ctx context.Context, gid string) (*StatusResult, error) {
	var status StatusResult
	if err := c.callRPC(ctx, "aria2.tellStatus", []interface{}{gid}, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetStopped 获取已停止的下载,包括已完成、出错和已删除的任务
func (c *Client) GetStopped(ctx context.Context, offset, num int) ([]StatusResult, error) {
	var stopped []StatusResult
	if err := c.callRPC(ctx, "aria2.tellStopped", []interface{}{offset, num}, &stopped); err != nil {
		return nil, err
	}
	return stopped, nil
}

// GetVersion 获取Aria2版本信息
func (c *Client) GetVersion(ctx context.Context) (*VersionResult, error) {
	var version VersionResult
	if err := c.callRPC(ctx, "aria2.getVersion", []interface{}{}, &version); err != nil {
		return nil, err
	}
	return &version, nil
}
