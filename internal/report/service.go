package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	pkgLog "pelangi-assistant/pkg/log"
)

// Service generates a report, archives it and fans it out to every channel.
type Service struct {
	gen     *Generator
	archive *FileArchive
	senders []Sender
	alerts  []Sender
	l       pkgLog.Logger
}

// NewService creates a Service. alerts receive a notice when generation fails.
func NewService(gen *Generator, archive *FileArchive, senders, alerts []Sender, l pkgLog.Logger) *Service {
	return &Service{gen: gen, archive: archive, senders: senders, alerts: alerts, l: l}
}

// Run reports on date, or on yesterday when date is empty. The file copy is
// written before delivery. Run fails only when generation fails or when every
// configured channel rejects the report.
func (s *Service) Run(ctx context.Context, date string) (Result, error) {
	if date == "" {
		date = s.gen.Yesterday()
	}

	rep, err := s.gen.Generate(ctx, date)
	if err != nil {
		s.alert(ctx, date, err)
		return Result{}, err
	}

	res := Result{Report: rep, Failed: make(map[string]string)}
	if s.archive != nil {
		path, err := s.archive.Save(rep)
		if err != nil {
			s.l.Errorf(ctx, "%s: %v", LogPrefixRun, err)
		}
		res.SavedTo = path
	}

	var mu sync.Mutex
	var eg errgroup.Group
	for _, snd := range s.senders {
		eg.Go(func() error {
			err := snd.Send(ctx, rep.Text)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.l.Warnf(ctx, "%s: %s delivery failed: %v", LogPrefixRun, snd.Name(), err)
				res.Failed[snd.Name()] = err.Error()
				return nil
			}
			res.Delivered = append(res.Delivered, snd.Name())
			return nil
		})
	}
	_ = eg.Wait()

	if len(s.senders) == 0 {
		s.l.Infof(ctx, "%s: no delivery channels configured, report for %s archived only", LogPrefixRun, date)
	} else if len(res.Delivered) == 0 {
		return res, fmt.Errorf("%s: %s: %w", LogPrefixRun, date, ErrDeliveryFailed)
	}

	s.l.Infof(ctx, "%s: report for %s delivered to %v", LogPrefixRun, date, res.Delivered)
	return res, nil
}

func (s *Service) alert(ctx context.Context, date string, cause error) {
	text := fmt.Sprintf(alertTemplate, date, cause, time.Now().In(s.gen.loc).Format("2006-01-02 15:04:05"))
	for _, a := range s.alerts {
		if err := a.Send(ctx, text); err != nil {
			s.l.Errorf(ctx, "%s: %s alert failed: %v", LogPrefixRun, a.Name(), err)
		}
	}
}
