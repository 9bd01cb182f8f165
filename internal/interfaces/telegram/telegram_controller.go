package telegram

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/easayliu/alist-aria2-metainfo/internal/application/services/metainfo"
	"github.com/easayliu/alist-aria2-metainfo/internal/domain/models/meta"
	"github.com/easayliu/alist-aria2-metainfo/pkg/logger"
)

// 长轮询超时(秒)
const pollTimeout = 30

// BotClient 控制器使用的 Bot 能力
type BotClient interface {
	GetUpdates(offset int64, timeout int) ([]tgbotapi.Update, error)
	SendMessage(chatID int64, text string) error
	IsAuthorized(userID int64) bool
}

// MetaInfoService 命令依赖的应用服务
type MetaInfoService interface {
	Parse(ctx context.Context, req metainfo.ParseRequest) (*meta.ParsedMetadata, error)
	InspectDownload(ctx context.Context, gid string) (*metainfo.DownloadMetaInfo, error)
}

// TelegramController Telegram 主控制器,负责轮询和命令分发
type TelegramController struct {
	bot      BotClient
	service  MetaInfoService
	messages *MessageHandler

	lastUpdateID int
	retryDelay   time.Duration
	ctx          context.Context
	cancel       context.CancelFunc
	done         chan struct{}
}

// NewTelegramController 创建控制器
func NewTelegramController(bot BotClient, service MetaInfoService) *TelegramController {
	ctx, cancel := context.WithCancel(context.Background())
	c := &TelegramController{
		bot:        bot,
		service:    service,
		retryDelay: 5 * time.Second,
		ctx:        ctx,
		cancel:     cancel,
	}
	c.messages = NewMessageHandler(bot, service)
	return c
}

// StartPolling 开始轮询
func (c *TelegramController) StartPolling() {
	logger.Info("Starting Telegram polling...")
	c.done = make(chan struct{})

	go func() {
		defer close(c.done)
		for {
			select {
			case <-c.ctx.Done():
				logger.Info("Telegram polling stopped")
				return
			default:
				c.pollUpdates()
			}
		}
	}()
}

// StopPolling 停止轮询,当前这一轮长轮询结束后返回
func (c *TelegramController) StopPolling() {
	c.cancel()
	if c.done != nil {
		<-c.done
	}
}

// pollUpdates 轮询一次更新
func (c *TelegramController) pollUpdates() {
	updates, err := c.bot.GetUpdates(int64(c.lastUpdateID+1), pollTimeout)
	if err != nil {
		logger.Error("Failed to get telegram updates", "error", err)
		select {
		case <-c.ctx.Done():
		case <-time.After(c.retryDelay):
		}
		return
	}

	for i := range updates {
		c.HandleUpdate(&updates[i])
	}
}

// HandleUpdate 处理单条更新,重复的更新会被忽略
func (c *TelegramController) HandleUpdate(update *tgbotapi.Update) {
	if update.UpdateID <= c.lastUpdateID {
		return
	}
	c.lastUpdateID = update.UpdateID

	if update.Message != nil {
		c.messages.HandleMessage(c.ctx, update.Message)
	}
}
