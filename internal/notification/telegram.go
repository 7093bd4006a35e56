package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/Tixoni/tourportal/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

// TelegramNotifier дублирует действия с бронями в Telegram-чат.
// Без токена превращается в no-op.
type TelegramNotifier struct {
	bot      *tgbotapi.BotAPI
	chatID   int64
	strategy retry.Strategy
	logger   logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	n := &TelegramNotifier{
		chatID: chatID,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		logger: logger,
	}

	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return n, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	n.bot = bot

	return n, nil
}

func (n *TelegramNotifier) BookingCreated(ctx context.Context, tour *domain.Tour, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Tour booked*\n\nTour: %s\nDestination: %s\nTravel date: %s\nParticipants: %d",
		tour.Title,
		tour.Destination,
		booking.TravelDate.Format("02.01.2006"),
		booking.ParticipantsCount,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) BookingConfirmed(ctx context.Context, bookingID int64) {
	n.send(ctx, fmt.Sprintf("*Booking #%d confirmed*", bookingID))
}

func (n *TelegramNotifier) BookingCancelled(ctx context.Context, bookingID int64) {
	n.send(ctx, fmt.Sprintf("*Booking #%d cancelled*", bookingID))
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil || n.chatID == 0 {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	err := retry.Do(func() error {
		_, sendErr := n.bot.Send(msg)
		return sendErr
	}, n.strategy)
	if err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
