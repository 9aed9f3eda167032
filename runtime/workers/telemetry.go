package workers

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/process"

	"elective-hub/contract"
)

// TelemetryWorker periodically logs process health (CPU, RSS, goroutine
// count) together with the live-connection gauge. Logs are its only
// sink; there is no external metrics surface.
type TelemetryWorker struct {
	log      *slog.Logger
	conns    contract.IConnectionSource
	interval time.Duration
}

func NewTelemetryWorker(log *slog.Logger, conns contract.IConnectionSource,
	interval time.Duration) *TelemetryWorker {
	return &TelemetryWorker{log: log, conns: conns, interval: interval}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			w.log.Info("Telemetry",
				"cpu_percent", cpu,
				"rss_mb", rss/1024/1024,
				"goroutines", runtime.NumGoroutine(),
				"connections", w.conns.Count(),
			)
		}
	}
}

func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
