package telegram

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/easayliu/alist-aria2-metainfo/internal/infrastructure/config"
	"github.com/easayliu/alist-aria2-metainfo/internal/infrastructure/ratelimit"
	"github.com/easayliu/alist-aria2-metainfo/pkg/logger"
)

const (
	// Telegram 单条消息的长度上限
	maxMessageLength = 4096
	// Bot 全局发送频率,低于官方的每秒 30 条
	sendQPS = 20
)

type Client struct {
	config  *config.TelegramConfig
	bot     *tgbotapi.BotAPI
	limiter *ratelimit.RateLimiter
}

// NewClient 连接 Bot,失败时返回 bot 为空的客户端,发送操作会返回错误
func NewClient(cfg *config.TelegramConfig) *Client {
	client := &Client{config: cfg, limiter: ratelimit.NewRateLimiter(sendQPS)}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Error("Failed to create Telegram bot", "error", err)
		return client
	}
	client.bot = bot
	logger.Info("Telegram bot connected successfully", "username", bot.Self.UserName)

	// 注册Bot命令菜单
	if err := client.RegisterBotCommands(); err != nil {
		logger.Error("Failed to register bot commands", "error", err)
	}
	return client
}

// Ready bot 是否可用
func (c *Client) Ready() bool {
	return c.bot != nil
}

// SendMessage 发送 HTML 格式的消息
func (c *Client) SendMessage(chatID int64, text string) error {
	if c.bot == nil {
		return fmt.Errorf("telegram bot not initialized")
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(context.Background()); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	msg := tgbotapi.NewMessage(chatID, truncate(cleanUTF8(text), maxMessageLength))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}

// Notify 向所有配置的会话发送通知,单个会话失败不影响其他会话
func (c *Client) Notify(text string) error {
	if !c.config.Enabled || len(c.config.ChatIDs) == 0 {
		logger.Debug("Telegram disabled or no chat IDs configured")
		return nil
	}

	var failed int
	for _, chatID := range c.config.ChatIDs {
		if err := c.SendMessage(chatID, text); err != nil {
			logger.Error("Failed to send notification", "chatID", chatID, "error", err)
			failed++
		}
	}
	if failed == len(c.config.ChatIDs) {
		return fmt.Errorf("notification failed for all %d chats", failed)
	}
	return nil
}

func (c *Client) GetUpdates(offset int64, timeout int) ([]tgbotapi.Update, error) {
	if c.bot == nil {
		return nil, fmt.Errorf("telegram bot not initialized")
	}

	updateConfig := tgbotapi.NewUpdate(int(offset))
	updateConfig.Timeout = timeout

	updates, err := c.bot.GetUpdates(updateConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to get telegram updates: %w", err)
	}
	return updates, nil
}

// IsAuthorized 未配置管理员时所有人可用
func (c *Client) IsAuthorized(userID int64) bool {
	if len(c.config.AdminIDs) == 0 {
		return true
	}
	for _, adminID := range c.config.AdminIDs {
		if adminID == userID {
			return true
		}
	}
	return false
}

// RegisterBotCommands 注册Bot命令菜单
func (c *Client) RegisterBotCommands() error {
	if c.bot == nil {
		return fmt.Errorf("telegram bot not initialized")
	}

	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "🏠 显示欢迎信息"},
		{Command: "help", Description: "❓ 显示帮助信息和可用命令"},
		{Command: "parse", Description: "🔍 识别发布名 (用法: /parse 标题 | 副标题)"},
		{Command: "download", Description: "📥 识别下载任务 (用法: /download <GID>)"},
	}

	if _, err := c.bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		return fmt.Errorf("failed to set bot commands: %w", err)
	}
	return nil
}

// cleanUTF8 确保文本是有效的UTF-8编码
func cleanUTF8(text string) string {
	if !utf8.ValidString(text) {
		return strings.ToValidUTF8(text, "?")
	}
	return text
}

// truncate 按字符截断,超出时以省略号结尾
func truncate(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit-1]) + "…"
}
