package discord

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"fightnight/internal/ports/input"
)

// Scheduler triggers the periodic notification pass. Passes never overlap:
// a tick that fires while the previous pass is still running is skipped.
type Scheduler struct {
	cron     *cron.Cron
	notifier input.NotifierUseCase
	now      func() time.Time
}

func NewScheduler(spec string, notifier input.NotifierUseCase) (*Scheduler, error) {
	logger := cron.VerbosePrintfLogger(log.New(os.Stderr, "cron: ", log.LstdFlags))
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	sch := &Scheduler{cron: c, notifier: notifier, now: time.Now}
	if _, err := c.AddFunc(spec, func() { sch.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("planification %q invalide: %w", spec, err)
	}
	return sch, nil
}

// RunOnce evaluates every guild once. Each pass gets an ID so its log
// lines can be told apart.
func (s *Scheduler) RunOnce(ctx context.Context) input.RunSummary {
	runID := uuid.NewString()
	started := s.now()
	log.Printf("🕒 Passage %s démarré", runID)
	summary := s.notifier.RunAll(ctx, started)
	log.Printf("🕒 Passage %s terminé en %s: %d serveur(s), %d notification(s), %d échec(s)",
		runID, time.Since(started).Round(time.Millisecond), summary.Evaluated, summary.Sent, summary.Failed)
	return summary
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for a running pass to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
