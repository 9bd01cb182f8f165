package telegram

import (
	"context"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/easayliu/alist-aria2-metainfo/internal/application/services/metainfo"
	apperrors "github.com/easayliu/alist-aria2-metainfo/internal/shared/errors"
	"github.com/easayliu/alist-aria2-metainfo/pkg/logger"
	strutil "github.com/easayliu/alist-aria2-metainfo/pkg/utils/string"
)

// 单条命令的处理时限,开启视频探测时可能较慢
const commandTimeout = time.Minute

const helpMessage = `<b>可用命令</b>

/parse 标题 | 副标题 - 识别发布名,副标题可省略
/download GID - 识别 aria2 下载任务中的视频文件
/help - 显示本帮助

直接发送文本等同于 /parse`

// MessageHandler 消息处理器
type MessageHandler struct {
	bot     BotClient
	service MetaInfoService
}

func NewMessageHandler(bot BotClient, service MetaInfoService) *MessageHandler {
	return &MessageHandler{bot: bot, service: service}
}

// HandleMessage 处理消息,未授权用户只会收到拒绝提示
func (h *MessageHandler) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if msg.From == nil || !h.bot.IsAuthorized(msg.From.ID) {
		h.reply(chatID, "❌ 未授权访问")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	if !msg.IsCommand() {
		if text := strings.TrimSpace(msg.Text); text != "" {
			h.handleParse(ctx, chatID, text)
		}
		return
	}

	args := strings.TrimSpace(msg.CommandArguments())
	switch msg.Command() {
	case "start":
		h.reply(chatID, "👋 <b>欢迎使用媒体信息识别机器人</b>\n\n"+helpMessage)
	case "help":
		h.reply(chatID, helpMessage)
	case "parse":
		if args == "" {
			h.reply(chatID, "用法: /parse 标题 | 副标题")
			return
		}
		h.handleParse(ctx, chatID, args)
	case "download":
		if args == "" {
			h.reply(chatID, "用法: /download GID")
			return
		}
		h.handleDownload(ctx, chatID, args)
	default:
		h.reply(chatID, "未知命令,发送 /help 查看帮助")
	}
}

func (h *MessageHandler) handleParse(ctx context.Context, chatID int64, text string) {
	req := ParseArguments(text)
	result, err := h.service.Parse(ctx, req)
	if err != nil {
		h.replyError(chatID, err)
		return
	}
	h.reply(chatID, FormatParseResult(result))
}

func (h *MessageHandler) handleDownload(ctx context.Context, chatID int64, gid string) {
	info, err := h.service.InspectDownload(ctx, strings.Fields(gid)[0])
	if err != nil {
		h.replyError(chatID, err)
		return
	}
	if len(info.Files) == 0 {
		h.reply(chatID, "任务中没有可识别的视频文件")
		return
	}
	h.reply(chatID, metainfo.FormatDownloadMessage(info))
}

// ParseArguments 按 "标题 | 副标题" 拆分参数
func ParseArguments(text string) metainfo.ParseRequest {
	title, subtitle, _ := strings.Cut(text, "|")
	return metainfo.ParseRequest{
		Title:    strings.TrimSpace(title),
		Subtitle: strings.TrimSpace(subtitle),
	}
}

func (h *MessageHandler) replyError(chatID int64, err error) {
	var text string
	switch apperrors.CodeOf(err) {
	case apperrors.ErrorCodeInvalidRequest:
		text = "❌ 参数错误"
	case apperrors.ErrorCodeNotFound:
		text = "❌ 任务不存在"
	case apperrors.ErrorCodeServiceUnavailable:
		text = "❌ aria2 不可用"
	case apperrors.ErrorCodeTimeout:
		text = "❌ 处理超时"
	default:
		logger.Error("Telegram command failed", "error", err)
		h.reply(chatID, "❌ 处理失败")
		return
	}
	if se, ok := apperrors.AsServiceError(err); ok && se.Message != "" {
		text += ": " + strutil.EscapeHTML(se.Message)
	}
	h.reply(chatID, text)
}

func (h *MessageHandler) reply(chatID int64, text string) {
	if err := h.bot.SendMessage(chatID, text); err != nil {
		logger.Error("Failed to send telegram reply", "chatID", chatID, "error", err)
	}
}
