package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiter_Basic(t *testing.T) {
	// 创建QPS为2的限制器
	limiter := NewRateLimiter(2)

	if qps := limiter.GetQPS(); qps != 2 {
		t.Errorf("expected QPS 2, got %d", qps)
	}

	// 桶大小为2,第三个请求被拒绝
	if !limiter.Allow() || !limiter.Allow() {
		t.Error("burst requests should be allowed")
	}
	if limiter.Allow() {
		t.Error("third request should be limited")
	}
}

func TestRateLimiter_NoLimit(t *testing.T) {
	limiter := NewRateLimiter(0)

	if qps := limiter.GetQPS(); qps != 0 {
		t.Errorf("expected QPS 0 (unlimited), got %d", qps)
	}

	for i := 0; i < 100; i++ {
		if !limiter.Allow() {
			t.Error("unlimited limiter should allow all requests")
		}
	}
}

func TestRateLimiter_Wait(t *testing.T) {
	limiter := NewRateLimiter(1)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := limiter.Wait(ctx); err != nil {
		t.Errorf("first wait should not error: %v", err)
	}
	// 下一个令牌要等1秒,超过上下文期限
	if err := limiter.Wait(ctx); err == nil {
		t.Error("second wait should fail before deadline")
	}
}

func TestKeyedLimiter_PerKey(t *testing.T) {
	limiter := NewKeyedLimiter(1, time.Minute)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return base }

	if !limiter.Allow("10.0.0.1") {
		t.Error("first request from 10.0.0.1 should be allowed")
	}
	if limiter.Allow("10.0.0.1") {
		t.Error("second request from 10.0.0.1 should be limited")
	}
	if !limiter.Allow("10.0.0.2") {
		t.Error("other clients should not be affected")
	}

	// 1秒后补充令牌
	limiter.now = func() time.Time { return base.Add(time.Second) }
	if !limiter.Allow("10.0.0.1") {
		t.Error("token should be refilled after 1s")
	}
}

func TestKeyedLimiter_EvictIdle(t *testing.T) {
	limiter := NewKeyedLimiter(5, time.Minute)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return base }

	limiter.Allow("a")
	limiter.Allow("b")
	if n := limiter.Len(); n != 2 {
		t.Fatalf("expected 2 keys, got %d", n)
	}

	limiter.now = func() time.Time { return base.Add(2 * time.Minute) }
	limiter.Allow("c")
	if n := limiter.Len(); n != 1 {
		t.Errorf("idle keys should be evicted, got %d", n)
	}
}

func TestKeyedLimiter_Unlimited(t *testing.T) {
	limiter := NewKeyedLimiter(0, 0)
	for i := 0; i < 50; i++ {
		if !limiter.Allow("x") {
			t.Fatal("unlimited keyed limiter should allow all requests")
		}
	}
	if limiter.Len() != 0 {
		t.Error("unlimited keyed limiter should not track keys")
	}
}
