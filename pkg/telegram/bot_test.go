package telegram_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"pelangi-assistant/pkg/telegram"
)

func newServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var (
		mu   sync.Mutex
		sent []string
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			if !strings.Contains(r.URL.Path, "/botgood-token/") {
				w.Write([]byte(`{"ok":false,"error_code":401,"description":"Unauthorized"}`))
				return
			}
			w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Pelangi","username":"pelangi_bot"}}`))
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			if err := r.ParseForm(); err != nil {
				t.Errorf("parse form: %v", err)
			}
			text := r.PostForm.Get("text")
			if text == "cause_error" {
				w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
				return
			}
			mu.Lock()
			sent = append(sent, text)
			mu.Unlock()
			w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":12345,"type":"private"}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(ts.Close)
	return ts, &sent
}

func TestBot(t *testing.T) {
	ts, sent := newServer(t)

	t.Run("Unauthorized token", func(t *testing.T) {
		if _, err := telegram.NewBot(telegram.Config{BotToken: "bad", APIURL: ts.URL}); err == nil {
			t.Fatal("expected authorization error")
		}
	})

	t.Run("Missing token", func(t *testing.T) {
		if _, err := telegram.NewBot(telegram.Config{APIURL: ts.URL}); err == nil {
			t.Fatal("expected error for empty token")
		}
	})

	bot, err := telegram.NewBot(telegram.Config{BotToken: "good-token", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("NewBot: %v", err)
	}
	if bot.Username() != "pelangi_bot" {
		t.Errorf("Username = %q", bot.Username())
	}

	t.Run("SendMessage Success", func(t *testing.T) {
		if err := bot.SendMessage(12345, "Daily report"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := (*sent)[len(*sent)-1]; got != "Daily report" {
			t.Errorf("sent %q", got)
		}
	})

	t.Run("SendMessage API Failed", func(t *testing.T) {
		err := bot.SendMessage(12345, "cause_error")
		if err == nil || !strings.Contains(err.Error(), "chat not found") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("Long message is chunked", func(t *testing.T) {
		before := len(*sent)
		long := strings.Repeat("line of report text\n", 400)
		if err := bot.SendMessage(12345, long); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := len(*sent) - before; got < 2 {
			t.Errorf("chunks sent = %d, want at least 2", got)
		}
	})
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want []string
	}{
		{"empty", "", 10, nil},
		{"short", "hello", 10, []string{"hello"}},
		{"newline boundary", "aaaa\nbbbb\ncc", 10, []string{"aaaa\nbbbb", "cc"}},
		{"hard cut", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"multibyte", "价格价格价格", 4, []string{"价格价格", "价格"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := telegram.Split(tt.text, tt.max)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("Split = %q, want %q", got, tt.want)
			}
		})
	}
}
