// Package report builds a human-oriented host report that complements the
// machine-parseable line produced by pkg/osversion.
package report

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// HostReport aggregates best-effort host facts. Zero values mean the
// corresponding probe failed; the report as a whole is never an error.
type HostReport struct {
	OS              string    `json:"os"`
	Platform        string    `json:"platform"`
	PlatformVersion string    `json:"platform_version"`
	KernelVersion   string    `json:"kernel_version"`
	KernelArch      string    `json:"kernel_arch"`
	UptimeSeconds   uint64    `json:"uptime_seconds"`
	LogicalCPUs     int       `json:"logical_cpus"`
	TotalMemory     uint64    `json:"total_memory_bytes"`
	CollectedAt     time.Time `json:"collected_at"`
}

// Collector gathers the host report.
type Collector struct {
	logger zerolog.Logger
}

// NewCollector creates a new host report collector.
func NewCollector(logger zerolog.Logger) *Collector {
	return &Collector{
		logger: logger.With().Str("component", "host_report").Logger(),
	}
}

// Collect gathers all probes. Each probe fails soft: a failure leaves its
// fields zero and logs a warning, and never aborts the rest of the report.
func (c *Collector) Collect(ctx context.Context) *HostReport {
	r := &HostReport{CollectedAt: time.Now()}

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Failed to read host information")
	} else {
		r.OS = info.OS
		r.Platform = info.Platform
		r.PlatformVersion = info.PlatformVersion
		r.KernelVersion = info.KernelVersion
		r.KernelArch = info.KernelArch
		r.UptimeSeconds = info.Uptime
	}

	counts, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Failed to count CPUs")
	} else {
		r.LogicalCPUs = counts
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Failed to read memory information")
	} else {
		r.TotalMemory = vm.Total
	}

	c.logger.Debug().
		Str("os", r.OS).
		Str("platform", r.Platform).
		Str("kernel", r.KernelVersion).
		Int("cpus", r.LogicalCPUs).
		Msg("Host report collected")

	return r
}
