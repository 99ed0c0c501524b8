package report

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"pelangi-assistant/internal/conversation"
	"pelangi-assistant/internal/memory"
	pkgLog "pelangi-assistant/pkg/log"
)

// Generator builds daily reports from memory and the conversation log.
type Generator struct {
	memory MemoryReader
	stats  StatsSource
	loc    *time.Location
	l      pkgLog.Logger
	now    func() time.Time
}

// NewGenerator creates a Generator. A nil loc means UTC.
func NewGenerator(mem MemoryReader, stats StatsSource, loc *time.Location, l pkgLog.Logger) *Generator {
	if loc == nil {
		loc = time.UTC
	}
	return &Generator{memory: mem, stats: stats, loc: loc, l: l, now: time.Now}
}

// Yesterday returns the date a scheduled run reports on.
func (g *Generator) Yesterday() string {
	return g.now().In(g.loc).AddDate(0, 0, -1).Format(memory.DateLayout)
}

// Generate builds the report for date (YYYY-MM-DD). A day without a memory
// document is reported with empty sections.
func (g *Generator) Generate(ctx context.Context, date string) (Report, error) {
	if err := memory.ValidateDate(date); err != nil {
		return Report{}, fmt.Errorf("%s: %w", LogPrefixGenerate, err)
	}
	from, _ := time.ParseInLocation(memory.DateLayout, date, g.loc)
	to := from.AddDate(0, 0, 1)

	var (
		day   *memory.Day
		stats conversation.Stats
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		content, err := g.memory.ReadDay(egCtx, date)
		switch {
		case errors.Is(err, memory.ErrDayNotFound):
			day = memory.NewDay(date)
		case err != nil:
			return fmt.Errorf("read memory day: %w", err)
		default:
			day = memory.ParseDay(date, content)
		}
		return nil
	})
	eg.Go(func() error {
		s, err := g.stats.Stats(egCtx, from, to)
		if err != nil {
			return fmt.Errorf("conversation stats: %w", err)
		}
		stats = s
		return nil
	})
	if err := eg.Wait(); err != nil {
		g.l.Errorf(ctx, "%s: %v", LogPrefixGenerate, err)
		return Report{}, fmt.Errorf("%s: %w", LogPrefixGenerate, err)
	}

	at := g.now().In(g.loc)
	return Report{
		Date:        date,
		Text:        render(date, day, stats, at),
		Stats:       stats,
		GeneratedAt: at,
	}, nil
}

func render(date string, day *memory.Day, st conversation.Stats, at time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n%s\n\n", reportTitle, date, ruleLine)

	b.WriteString("CONVERSATIONS\n")
	fmt.Fprintf(&b, "Guest messages: %d\n", st.GuestMessages)
	fmt.Fprintf(&b, "Distinct guests: %d\n", st.Guests)
	fmt.Fprintf(&b, "Replies: %d\n", st.Replies)
	fmt.Fprintf(&b, "Degraded replies: %d\n", st.Degraded)
	if len(st.BySource) > 0 {
		fmt.Fprintf(&b, "By stage: %s\n", tally(st.BySource))
	}
	if len(st.ByCategory) > 0 {
		fmt.Fprintf(&b, "By intent: %s\n", tally(st.ByCategory))
	}

	for _, name := range memory.Sections {
		fmt.Fprintf(&b, "\n%s\n", strings.ToUpper(name))
		entries := day.Entries(name)
		if len(entries) == 0 {
			b.WriteString(emptySection + "\n")
			continue
		}
		for _, e := range entries {
			if e.Time == "" {
				fmt.Fprintf(&b, "  %s\n", e.Text)
				continue
			}
			fmt.Fprintf(&b, "  %s %s\n", e.Time, e.Text)
		}
	}

	fmt.Fprintf(&b, "\n%s\nGenerated: %s\n", ruleLine, at.Format("2006-01-02 15:04:05 MST"))
	return b.String()
}

// tally renders counts as "a=3, b=1", largest first.
func tally(m map[string]int) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, m[k])
	}
	return strings.Join(parts, ", ")
}
