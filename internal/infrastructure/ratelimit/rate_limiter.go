package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter QPS 限制器
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter 创建新的速率限制器
// qps: 每秒允许的请求数,如果为0或负数则不限制
func NewRateLimiter(qps int) *RateLimiter {
	return &RateLimiter{limiter: newLimiter(qps)}
}

func newLimiter(qps int) *rate.Limiter {
	if qps <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	// 桶大小为QPS,允许短时间内的突发请求
	return rate.NewLimiter(rate.Limit(qps), qps)
}

// Wait 等待直到获得令牌,如果超时则返回错误
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

// Allow 检查是否允许当前请求,不阻塞
func (r *RateLimiter) Allow() bool {
	return r.limiter.Allow()
}

// GetQPS 获取当前QPS限制,0 表示无限制
func (r *RateLimiter) GetQPS() int {
	limit := r.limiter.Limit()
	if limit == rate.Inf {
		return 0
	}
	return int(limit)
}

type keyedEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter 按调用方(如客户端 IP)分别限流
type KeyedLimiter struct {
	mu      sync.Mutex
	qps     int
	idleTTL time.Duration
	entries map[string]*keyedEntry
	now     func() time.Time
}

// NewKeyedLimiter 创建按键限流器,超过 idleTTL 未访问的键会被清理
func NewKeyedLimiter(qps int, idleTTL time.Duration) *KeyedLimiter {
	if idleTTL <= 0 {
		idleTTL = 10 * time.Minute
	}
	return &KeyedLimiter{
		qps:     qps,
		idleTTL: idleTTL,
		entries: make(map[string]*keyedEntry),
		now:     time.Now,
	}
}

// Allow 检查 key 的当前请求是否允许
func (k *KeyedLimiter) Allow(key string) bool {
	if k.qps <= 0 {
		return true
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	k.evictIdle(now)

	entry, ok := k.entries[key]
	if !ok {
		entry = &keyedEntry{limiter: newLimiter(k.qps)}
		k.entries[key] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

// Len 当前跟踪的键数量
func (k *KeyedLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

func (k *KeyedLimiter) evictIdle(now time.Time) {
	for key, entry := range k.entries {
		if now.Sub(entry.lastSeen) > k.idleTTL {
			delete(k.entries, key)
		}
	}
}
