package telegram

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/easayliu/alist-aria2-metainfo/internal/infrastructure/config"
)

func TestIsAuthorized(t *testing.T) {
	tests := []struct {
		name   string
		admins []int64
		userID int64
		want   bool
	}{
		{"未配置管理员", nil, 42, true},
		{"管理员", []int64{1, 42}, 42, true},
		{"非管理员", []int64{1, 2}, 42, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Client{config: &config.TelegramConfig{AdminIDs: tt.admins}}
			if got := c.IsAuthorized(tt.userID); got != tt.want {
				t.Errorf("IsAuthorized(%d) = %v, want %v", tt.userID, got, tt.want)
			}
		})
	}
}

func TestSendWithoutBot(t *testing.T) {
	c := &Client{config: &config.TelegramConfig{Enabled: true, ChatIDs: []int64{1}}}

	if c.Ready() {
		t.Error("client without bot should not be ready")
	}
	if err := c.SendMessage(1, "hi"); err == nil {
		t.Error("SendMessage should fail without bot")
	}
	if err := c.Notify("hi"); err == nil {
		t.Error("Notify should fail when every chat fails")
	}
}

func TestNotifyDisabled(t *testing.T) {
	c := &Client{config: &config.TelegramConfig{Enabled: false, ChatIDs: []int64{1}}}
	if err := c.Notify("hi"); err != nil {
		t.Errorf("disabled notify should be a no-op, got %v", err)
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("字", 5000)
	got := truncate(long, maxMessageLength)
	if n := utf8.RuneCountInString(got); n != maxMessageLength {
		t.Errorf("truncate length = %d, want %d", n, maxMessageLength)
	}
	if !strings.HasSuffix(got, "…") {
		t.Error("truncated text should end with ellipsis")
	}
	if truncate("short", 10) != "short" {
		t.Error("short text should be unchanged")
	}
}

func TestCleanUTF8(t *testing.T) {
	if got := cleanUTF8("ok\xffok"); got != "ok?ok" {
		t.Errorf("cleanUTF8() = %q", got)
	}
}
