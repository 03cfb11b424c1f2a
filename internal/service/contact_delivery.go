package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/folio-go-api/internal/config"
	"github.com/noah-isme/folio-go-api/internal/models"
)

// ContactDelivery forwards a freshly submitted message to the operator.
// Delivery is best effort; the submission has already been persisted.
type ContactDelivery interface {
	Deliver(ctx context.Context, message models.ContactMessage) error
}

// TelegramDelivery pushes the message to a Telegram chat via the bot API.
type TelegramDelivery struct {
	token  string
	chatID string
	client *http.Client
	base   string
}

// NewTelegramDelivery builds a Telegram notification sink.
func NewTelegramDelivery(token, chatID string) *TelegramDelivery {
	return &TelegramDelivery{
		token:  token,
		chatID: chatID,
		client: &http.Client{Timeout: 10 * time.Second},
		base:   "https://api.telegram.org",
	}
}

// Deliver sends one sendMessage call. Non-2xx responses are errors.
func (t *TelegramDelivery) Deliver(ctx context.Context, message models.ContactMessage) error {
	text := fmt.Sprintf("New contact message\nFrom: %s <%s>\nSubject: %s\n\n%s",
		message.Name, message.Email, message.Subject, message.Message)

	body, err := json.Marshal(map[string]string{
		"chat_id": t.chatID,
		"text":    text,
	})
	if err != nil {
		return fmt.Errorf("encode telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.base, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("telegram responded with status %d", resp.StatusCode)
	}
	return nil
}

// NewContactDelivery picks the configured notification sink. Missing
// credentials disable notification silently rather than failing startup.
func NewContactDelivery(cfg config.Config, logger zerolog.Logger) ContactDelivery {
	if cfg.TelegramBotToken == "" || cfg.TelegramChatID == "" {
		logger.Info().Msg("telegram credentials absent, contact notifications disabled")
		return nil
	}
	return NewTelegramDelivery(cfg.TelegramBotToken, cfg.TelegramChatID)
}
