package notification

import (
	"context"
	"fmt"

	"github.com/SZFO/shareit/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006 15:04"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, owner *domain.User, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*New booking request*\n\nItem: %s\nFrom: %s\nTo: %s\n\nApprove or reject it in the app.",
		booking.Item.Name,
		booking.Start.Format(dateLayout),
		booking.End.Format(dateLayout),
	)
	n.send(ctx, owner.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingApproved(ctx context.Context, booker *domain.User, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking approved!*\n\nItem: %s\nFrom: %s\nTo: %s",
		booking.Item.Name,
		booking.Start.Format(dateLayout),
		booking.End.Format(dateLayout),
	)
	n.send(ctx, booker.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingRejected(ctx context.Context, booker *domain.User, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking rejected*\n\nItem: %s\nFrom: %s\nTo: %s",
		booking.Item.Name,
		booking.Start.Format(dateLayout),
		booking.End.Format(dateLayout),
	)
	n.send(ctx, booker.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
