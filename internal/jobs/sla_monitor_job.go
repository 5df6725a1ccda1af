package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tripflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSLAMonitorInterval is used when no interval is configured.
const DefaultSLAMonitorInterval = 5 * time.Second

// SLASweeper runs one SLA monitor sweep. *commands.MonitorSLACommandHandler
// implements it.
type SLASweeper interface {
	Handle(ctx context.Context, cmd commands.MonitorSLACommand) (commands.MonitorSLAResult, error)
}

// SLAMonitorJob runs the SLA monitor sweep on a fixed interval.
// A tick that fires while the previous sweep is still running is skipped.
type SLAMonitorJob struct {
	sweeper  SLASweeper
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSLAMonitorJob creates the job. cron rounds intervals below one second up
// to one second.
func NewSLAMonitorJob(sweeper SLASweeper, interval time.Duration, logger *slog.Logger) *SLAMonitorJob {
	if interval <= 0 {
		interval = DefaultSLAMonitorInterval
	}
	logger = logger.With("component", "sla_monitor_job")
	return &SLAMonitorJob{
		sweeper:  sweeper,
		interval: interval,
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLogger{logger}),
			cron.SkipIfStillRunning(cronLogger{logger}),
		)),
		logger: logger,
	}
}

// Start schedules the sweep.
func (j *SLAMonitorJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "SLA monitor job started", "interval", j.interval.String())
	return nil
}

// RunOnce performs a single sweep and logs its outcome.
func (j *SLAMonitorJob) RunOnce(ctx context.Context) {
	result, err := j.sweeper.Handle(ctx, commands.NewMonitorSLACommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "SLA monitor sweep failed", "error", err)
		return
	}

	if result.Advanced > 0 || result.Breached > 0 || result.Failed > 0 {
		j.logger.DebugContext(ctx, "SLA monitor sweep finished",
			"evaluated", result.Evaluated,
			"advanced", result.Advanced,
			"completed", result.Completed,
			"breached", result.Breached,
			"failed", result.Failed,
		)
	}
}

// Stop unschedules the job and waits for a running sweep to finish.
func (j *SLAMonitorJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "SLA monitor job stopped")
}

// cronLogger adapts slog to the cron.Logger interface.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
