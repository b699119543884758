// Package scheduler runs the periodic region refresh.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultRefreshSpec fires daily at 06:00:30 KST, just after the trade cache rolls over.
const DefaultRefreshSpec = "30 0 6 * * *"

const jobTimeout = 10 * time.Minute

// Config holds the refresh schedule.
type Config struct {
	Spec      string
	LawdCodes []string
}

// LoadConfig reads REGION_REFRESH_CRON and REGION_WARM_LAWD_CODES (comma separated).
func LoadConfig() Config {
	spec := strings.TrimSpace(os.Getenv("REGION_REFRESH_CRON"))
	if spec == "" {
		spec = DefaultRefreshSpec
	}
	var codes []string
	for _, c := range strings.Split(os.Getenv("REGION_WARM_LAWD_CODES"), ",") {
		if c = strings.TrimSpace(c); c != "" {
			codes = append(codes, c)
		}
	}
	return Config{Spec: spec, LawdCodes: codes}
}

// Refresher re-populates the lookup tables of one district.
type Refresher interface {
	Refresh(ctx context.Context, lawdCd string) ([]string, error)
}

// Scheduler manages the cron entries.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	cfg       Config
	baseCtx   context.Context
}

// NewScheduler creates a Scheduler evaluating specs in Asia/Seoul.
func NewScheduler(ctx context.Context, refresher Refresher, cfg Config) *Scheduler {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		loc = time.FixedZone("KST", 9*60*60)
	}
	return &Scheduler{
		cron:      cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		refresher: refresher,
		cfg:       cfg,
		baseCtx:   ctx,
	}
}

// Register adds the refresh job. Nothing is scheduled when no codes are configured.
func (s *Scheduler) Register() error {
	if len(s.cfg.LawdCodes) == 0 {
		slog.Info("no REGION_WARM_LAWD_CODES configured, region refresh disabled")
		return nil
	}
	if _, err := s.cron.AddFunc(s.cfg.Spec, func() { s.RefreshAll(s.baseCtx) }); err != nil {
		return fmt.Errorf("register region refresh: %w", err)
	}
	return nil
}

// RefreshAll refreshes every configured district in order. Failures are
// logged and do not stop the run. It returns the number of successes.
func (s *Scheduler) RefreshAll(ctx context.Context) int {
	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	ok := 0
	for _, code := range s.cfg.LawdCodes {
		if ctx.Err() != nil {
			break
		}
		dongs, err := s.refresher.Refresh(ctx, code)
		if err != nil {
			slog.Warn("region refresh failed", "lawdCd", code, "error", err)
			continue
		}
		ok++
		slog.Info("region refreshed", "lawdCd", code, "dongs", len(dongs))
	}
	return ok
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("scheduler started", "spec", s.cfg.Spec, "districts", len(s.cfg.LawdCodes))
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("scheduler stopped")
}
