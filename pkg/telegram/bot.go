package telegram

import (
	"fmt"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MaxMessageLength leaves headroom under Telegram's 4096 character limit.
const MaxMessageLength = 4000

// Config configures a Bot. APIURL is either a full tgbotapi endpoint template
// ("https://host/bot%s/%s") or a base URL, and defaults to api.telegram.org.
type Config struct {
	BotToken   string
	APIURL     string
	HTTPClient *http.Client
}

// Sender delivers plain text to Telegram chats.
type Sender interface {
	SendMessage(chatID int64, text string) error
}

// Bot is a send-only Telegram Bot API client.
type Bot struct {
	api *tgbotapi.BotAPI
}

// NewBot authorizes the token against the Bot API.
func NewBot(cfg Config) (*Bot, error) {
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("telegram: bot token is required")
	}
	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	api, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, endpoint(cfg.APIURL), client)
	if err != nil {
		return nil, fmt.Errorf("telegram: authorize bot: %w", err)
	}
	return &Bot{api: api}, nil
}

// Username returns the bot's @name.
func (b *Bot) Username() string {
	return b.api.Self.UserName
}

// SendMessage sends text as plain text, split into several messages when long.
func (b *Bot) SendMessage(chatID int64, text string) error {
	return b.SendMessageWithMode(chatID, text, "")
}

// SendMessageWithMode sends text with a parse mode such as tgbotapi.ModeMarkdown.
func (b *Bot) SendMessageWithMode(chatID int64, text, parseMode string) error {
	for i, chunk := range Split(text, MaxMessageLength) {
		msg := tgbotapi.NewMessage(chatID, chunk)
		msg.ParseMode = parseMode
		if _, err := b.api.Send(msg); err != nil {
			return fmt.Errorf("telegram: send chunk %d to %d: %w", i, chatID, err)
		}
	}
	return nil
}

// Split breaks text into chunks of at most max runes, preferring newline boundaries.
func Split(text string, max int) []string {
	if text == "" {
		return nil
	}
	var chunks []string
	runes := []rune(text)
	for len(runes) > max {
		cut := max
		if idx := strings.LastIndex(string(runes[:max]), "\n"); idx > 0 {
			cut = len([]rune(string(runes[:max])[:idx]))
		}
		chunks = append(chunks, string(runes[:cut]))
		runes = []rune(strings.TrimPrefix(string(runes[cut:]), "\n"))
	}
	return append(chunks, string(runes))
}

func endpoint(apiURL string) string {
	switch {
	case apiURL == "":
		return tgbotapi.APIEndpoint
	case strings.Contains(apiURL, "%s"):
		return apiURL
	default:
		return strings.TrimRight(apiURL, "/") + "/bot%s/%s"
	}
}
