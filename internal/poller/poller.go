package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"baseball-stats-service/internal/analysis"
	"baseball-stats-service/internal/domain"
	"baseball-stats-service/internal/logging"
	"baseball-stats-service/internal/metrics"
	"baseball-stats-service/internal/providers"
)

const defaultInterval = 15 * time.Minute

// ReportSink receives freshly computed reports.
type ReportSink interface {
	ReplaceReport(report *domain.Report, at time.Time)
}

// SnapshotWriter persists report snapshots to disk.
type SnapshotWriter interface {
	WriteReportSnapshot(date string, report *domain.Report) error
}

// Poller re-ingests the dataset on an interval, recomputes the report,
// swaps it into the sink, and writes the day's snapshot to disk.
type Poller struct {
	provider providers.DatasetProvider
	sink     ReportSink
	writer   SnapshotWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the loop has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(provider providers.DatasetProvider, sink ReportSink, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		sink:     sink,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins the refresh loop until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", logging.FieldDurationMS, p.interval.Milliseconds())
		// Initial refresh to warm data on boot.
		p.Refresh(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.Refresh(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// Refresh runs one ingest-analyze-swap cycle. It is also invoked by the
// admin refresh endpoint and the dataset file watcher.
func (p *Poller) Refresh(ctx context.Context) error {
	start := time.Now()
	p.recordAttempt(start)

	report, err := p.refreshOnce(ctx)
	if p.metrics != nil {
		p.metrics.RecordRefreshCycle(time.Since(start), err)
	}
	if err != nil {
		p.logError("refresh failed", err, logging.FieldDurationMS, time.Since(start).Milliseconds())
		p.recordFailure(err, start)
		return err
	}

	p.recordSuccess(start)
	p.logInfo("report refreshed",
		logging.FieldDate, report.Date,
		logging.FieldRows, report.Summary.RecordCount,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Poller) refreshOnce(ctx context.Context) (*domain.Report, error) {
	ds, err := p.provider.FetchDataset(ctx)
	if err != nil {
		return nil, err
	}

	report, err := analysis.Run(ds, p.now)
	if err != nil {
		return nil, err
	}

	if p.sink != nil {
		p.sink.ReplaceReport(&report, p.now().UTC())
	}
	if p.writer != nil {
		if writeErr := p.writer.WriteReportSnapshot(report.Date, &report); writeErr != nil {
			p.logError("snapshot write failed", writeErr, logging.FieldDate, report.Date)
		}
	}
	return &report, nil
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the loop's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
