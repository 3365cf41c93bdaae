package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/taskcall/taskcall/task"
)

// MonitorSystem samples CPU, memory, and root-disk usage and logs a snapshot.
func MonitorSystem(logger *slog.Logger) task.Descriptor {
	return task.Descriptor{
		Name:        "monitorSystem",
		Description: "logs a CPU, memory, and disk usage snapshot",
		Handler: func(ctx context.Context, args []any) error {
			// Interval 0 samples since boot and returns without blocking.
			cpuPcts, err := cpu.PercentWithContext(ctx, 0, false)
			if err != nil {
				return fmt.Errorf("sample cpu: %w", err)
			}
			var cpuPct float64
			if len(cpuPcts) > 0 {
				cpuPct = cpuPcts[0]
			}

			vm, err := mem.VirtualMemoryWithContext(ctx)
			if err != nil {
				return fmt.Errorf("sample memory: %w", err)
			}

			du, err := disk.UsageWithContext(ctx, "/")
			if err != nil {
				return fmt.Errorf("sample disk: %w", err)
			}

			logger.Info("system snapshot",
				slog.Float64("cpu_percent", cpuPct),
				slog.Float64("mem_percent", vm.UsedPercent),
				slog.Uint64("mem_total_bytes", vm.Total),
				slog.Uint64("mem_used_bytes", vm.Used),
				slog.Float64("disk_percent", du.UsedPercent),
				slog.Uint64("disk_total_bytes", du.Total),
				slog.Uint64("disk_used_bytes", du.Used))
			return nil
		},
	}
}
