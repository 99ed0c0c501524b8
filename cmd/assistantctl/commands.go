package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pelangi-assistant/config"
	"pelangi-assistant/internal/app"
	"pelangi-assistant/internal/assistant"
	"pelangi-assistant/internal/memory"
	memoryRepo "pelangi-assistant/internal/memory/repository/file"
	memoryUC "pelangi-assistant/internal/memory/usecase"
	"pelangi-assistant/internal/report"
	"pelangi-assistant/internal/settings"
	"pelangi-assistant/pkg/datemath"
	"pelangi-assistant/pkg/log"
)

var (
	noteSectionFlag string
	dateFlag        string
)

var classifyCmd = &cobra.Command{
	Use:   "classify <message>",
	Short: "Classify a message and show every stage's scores",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app.App, _ log.Logger) error {
			return runClassify(cmd.Context(), a.Assistant, strings.Join(args, " "), cmd.OutOrStdout())
		})
	},
}

var noteCmd = &cobra.Command{
	Use:   "note <text>",
	Short: "Append a note to a day's memory",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mem, loc, err := openMemory()
		if err != nil {
			return err
		}
		date, err := resolveDay(dateFlag, loc)
		if err != nil {
			return err
		}
		return runNote(cmd.Context(), mem, memory.AppendInput{
			Date:    date,
			Section: noteSectionFlag,
			Text:    strings.Join(args, " "),
		}, cmd.OutOrStdout())
	},
}

var dayCmd = &cobra.Command{
	Use:   "day [YYYY-MM-DD]",
	Short: "Print a day's memory, or list the stored days with --list",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mem, loc, err := openMemory()
		if err != nil {
			return err
		}
		list, _ := cmd.Flags().GetBool("list")
		if list {
			return runListDays(cmd.Context(), mem, cmd.OutOrStdout())
		}
		date := ""
		if len(args) == 1 {
			if date, err = resolveDay(args[0], loc); err != nil {
				return err
			}
		}
		return runDay(cmd.Context(), mem, date, cmd.OutOrStdout())
	},
}

var durableCmd = &cobra.Command{
	Use:   "durable",
	Short: "Print the durable memory document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mem, _, err := openMemory()
		if err != nil {
			return err
		}
		content, err := mem.ReadDurable(cmd.Context())
		if err != nil {
			return fmt.Errorf("read durable memory: %w", err)
		}
		return writeMarkdown(cmd.OutOrStdout(), content)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate, save and send the daily report (yesterday by default)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app.App, l log.Logger) error {
			date, err := resolveDay(dateFlag, a.ReportLocation(cmd.Context(), l))
			if err != nil {
				return err
			}
			return runReport(cmd.Context(), a.Report, date, cmd.OutOrStdout())
		})
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate a settings directory without starting anything",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := settingsDirFlag
		if len(args) == 1 {
			dir = args[0]
		}
		if dir == "" {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			dir = cfg.Assistant.SettingsDir
		}
		return runValidate(cmd.Context(), dir, cmd.OutOrStdout())
	},
}

func init() {
	noteCmd.Flags().StringVarP(&noteSectionFlag, "section", "s", memory.SectionStaffNotes, "Day section to append to")
	noteCmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Day (YYYY-MM-DD, yesterday, 2 days ago), defaults to today")
	dayCmd.Flags().Bool("list", false, "List stored days")
	reportCmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Day to report on (YYYY-MM-DD or relative), defaults to yesterday")
}

// withApp wires the full application for commands that need the classifier
// or the report channels.
func withApp(ctx context.Context, fn func(a *app.App, l log.Logger) error) error {
	cfg, l, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := app.New(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			l.Warnf(ctx, "Close: %v", err)
		}
	}()
	return fn(a, l)
}

// openMemory opens only the memory store, so day and note commands work
// without settings or providers.
func openMemory() (memory.UseCase, *time.Location, error) {
	cfg, l, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	return newMemory(cfg.Memory, l)
}

func newMemory(cfg config.MemoryConfig, l log.Logger) (memory.UseCase, *time.Location, error) {
	repo, err := memoryRepo.New(cfg.Dir, l)
	if err != nil {
		return nil, nil, fmt.Errorf("open memory: %w", err)
	}
	loc := app.LoadLocation(context.Background(), l, cfg.Timezone)
	return memoryUC.New(repo, l, memoryUC.Config{Location: loc, MaxWriteRetries: cfg.MaxWriteRetries}), loc, nil
}

// resolveDay accepts a day key or a relative day such as "yesterday".
func resolveDay(input string, loc *time.Location) (string, error) {
	return datemath.NewResolver(loc).Day(input, time.Now())
}

func runClassify(ctx context.Context, uc assistant.UseCase, message string, w io.Writer) error {
	out, err := uc.Explain(ctx, assistant.ExplainInput{MessageText: message})
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}
	if jsonFlag {
		return printJSON(w, out)
	}

	r := out.Explanation.Result
	fmt.Fprintf(w, "category:   %s\n", r.Category)
	fmt.Fprintf(w, "source:     %s\n", r.Source)
	fmt.Fprintf(w, "confidence: %.2f\n", r.Confidence)
	fmt.Fprintf(w, "language:   %s\n", r.DetectedLanguage)
	if r.MatchedKeyword != "" {
		fmt.Fprintf(w, "keyword:    %s\n", r.MatchedKeyword)
	}
	if r.MatchedExample != "" {
		fmt.Fprintf(w, "example:    %s\n", r.MatchedExample)
	}
	fmt.Fprintf(w, "action:     %s\n", out.Route.Action)
	if out.Route.WorkflowID != "" {
		fmt.Fprintf(w, "workflow:   %s\n", out.Route.WorkflowID)
	}
	return nil
}

func runNote(ctx context.Context, mem memory.UseCase, in memory.AppendInput, w io.Writer) error {
	if in.Date == "" {
		in.Date = mem.Today()
	}
	if err := mem.AppendToDay(ctx, in); err != nil {
		return fmt.Errorf("append note: %w", err)
	}
	fmt.Fprintf(w, "Added to %s / %s\n", in.Date, in.Section)
	return nil
}

func runDay(ctx context.Context, mem memory.UseCase, date string, w io.Writer) error {
	if date == "" {
		date = mem.Today()
	}
	content, err := mem.ReadDay(ctx, date)
	if errors.Is(err, memory.ErrDayNotFound) {
		return fmt.Errorf("no memory for %s", date)
	}
	if err != nil {
		return fmt.Errorf("read day: %w", err)
	}
	return writeMarkdown(w, content)
}

func runListDays(ctx context.Context, mem memory.UseCase, w io.Writer) error {
	days, err := mem.ListDays(ctx)
	if err != nil {
		return fmt.Errorf("list days: %w", err)
	}
	sort.Strings(days)
	if jsonFlag {
		return printJSON(w, days)
	}
	for _, d := range days {
		fmt.Fprintln(w, d)
	}
	return nil
}

func runReport(ctx context.Context, runner report.Runner, date string, w io.Writer) error {
	res, err := runner.Run(ctx, date)
	if err != nil {
		for name, cause := range res.Failed {
			fmt.Fprintf(w, "failed %s: %s\n", name, cause)
		}
		return fmt.Errorf("report: %w", err)
	}
	if jsonFlag {
		return printJSON(w, res)
	}
	fmt.Fprint(w, res.Report.Text)
	if !strings.HasSuffix(res.Report.Text, "\n") {
		fmt.Fprintln(w)
	}
	if res.SavedTo != "" {
		fmt.Fprintf(w, "\nsaved to %s\n", res.SavedTo)
	}
	for _, name := range res.Delivered {
		fmt.Fprintf(w, "sent via %s\n", name)
	}
	for name, cause := range res.Failed {
		fmt.Fprintf(w, "failed %s: %s\n", name, cause)
	}
	return nil
}

func runValidate(ctx context.Context, dir string, w io.Writer) error {
	snap, err := settings.LoadSnapshot(ctx, dir)
	if err != nil {
		var cfgErr *settings.ConfigurationError
		if errors.As(err, &cfgErr) {
			for _, p := range cfgErr.Problems {
				fmt.Fprintf(w, "  - %s\n", p)
			}
			return fmt.Errorf("%s: %d problem(s)", dir, len(cfgErr.Problems))
		}
		return err
	}
	fmt.Fprintf(w, "%s: ok (%d intents, %d routes, %d workflows, %d knowledge files)\n",
		dir, len(snap.Intents), len(snap.Routes), len(snap.Workflows), len(snap.Knowledge.Files()))
	return nil
}
