package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"pelangi-assistant/pkg/telegram"
)

// TelegramSender posts reports to staff chats.
type TelegramSender struct {
	bot     telegram.Sender
	chatIDs []int64
}

// NewTelegramSender creates a TelegramSender.
func NewTelegramSender(bot telegram.Sender, chatIDs []int64) *TelegramSender {
	return &TelegramSender{bot: bot, chatIDs: chatIDs}
}

func (s *TelegramSender) Name() string { return "telegram" }

func (s *TelegramSender) Send(_ context.Context, text string) error {
	if len(s.chatIDs) == 0 {
		return fmt.Errorf("telegram: no chat ids configured")
	}
	for _, id := range s.chatIDs {
		if err := s.bot.SendMessage(id, text); err != nil {
			return err
		}
	}
	return nil
}

// WebhookSender posts {"message": text} to a messaging gateway.
type WebhookSender struct {
	url    string
	client *http.Client
}

// NewWebhookSender creates a WebhookSender. A nil client uses a 30s timeout.
func NewWebhookSender(url string, client *http.Client) *WebhookSender {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &WebhookSender{url: url, client: client}
}

func (s *WebhookSender) Name() string { return "webhook" }

func (s *WebhookSender) Send(ctx context.Context, text string) error {
	body, err := json.Marshal(map[string]string{"message": text})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: post: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook: status %d: %s", resp.StatusCode, raw)
	}
	return nil
}

// FileArchive keeps a copy of every report on disk.
type FileArchive struct {
	dir string
}

// NewFileArchive creates a FileArchive rooted at dir.
func NewFileArchive(dir string) *FileArchive {
	return &FileArchive{dir: dir}
}

// Save writes rep to pelangi_report_<date>_<stamp>.txt and returns the path.
func (a *FileArchive) Save(rep Report) (string, error) {
	if err := os.MkdirAll(a.dir, dirPerm); err != nil {
		return "", fmt.Errorf("archive: %w", err)
	}
	name := fmt.Sprintf("pelangi_report_%s_%s.txt", rep.Date, rep.GeneratedAt.Format(fileNameStamp))
	path := filepath.Join(a.dir, name)
	if err := os.WriteFile(path, []byte(rep.Text), filePerm); err != nil {
		return "", fmt.Errorf("archive: %w", err)
	}
	return path, nil
}
