package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"pelangi-assistant/config"
	"pelangi-assistant/pkg/log"
)

var (
	settingsDirFlag string
	jsonFlag        bool
	renderFlag      bool
)

var rootCmd = &cobra.Command{
	Use:           "assistantctl",
	Short:         "assistantctl - operate the Pelangi guest assistant",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsDirFlag, "settings-dir", "", "Override assistant.settings_dir")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Print JSON instead of text")
	rootCmd.PersistentFlags().BoolVar(&renderFlag, "render", false, "Render memory markdown for the terminal")
	rootCmd.AddCommand(classifyCmd, noteCmd, dayCmd, durableCmd, reportCmd, validateCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads config.yaml and applies the persistent flag overrides.
func loadConfig() (*config.Config, log.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if settingsDirFlag != "" {
		cfg.Assistant.SettingsDir = settingsDirFlag
	}
	// CLI output goes to stdout, so the logger only reports problems.
	l := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     cfg.Logger.Mode,
		Encoding: "console",
	})
	return cfg, l, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeMarkdown prints a memory document, styled for the terminal when
// --render is set.
func writeMarkdown(w io.Writer, content string) error {
	if !renderFlag {
		_, err := io.WriteString(w, content)
		return err
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
