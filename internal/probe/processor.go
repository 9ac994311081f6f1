package probe

import (
	"context"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/sensors"

	"github.com/rileyhilliard/sysview/internal/errors"
	"github.com/rileyhilliard/sysview/internal/snapshot"
)

// cpuSensorKeys mark sensor names that report the CPU package or its cores.
var cpuSensorKeys = []string{"package", "tctl", "tdie", "cpu", "core"}

// Processor reads core counts, brand, clock, usage and temperature.
// Individual readings that fail leave their field at zero; only a host with
// no CPU information at all is an error.
func (h *Host) Processor(ctx context.Context) (snapshot.ProcessorInfo, error) {
	info := snapshot.ProcessorInfo{Arch: kernelArch(ctx)}

	logical, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return info, errors.Wrap(err, "Cannot count logical CPUs")
	}
	info.LogicalCores = logical

	if physical, err := cpu.CountsWithContext(ctx, false); err == nil {
		info.PhysicalCores = physical
	} else {
		h.log.Debug("physical core count unavailable: %v", err)
	}

	if stats, err := cpu.InfoWithContext(ctx); err == nil && len(stats) > 0 {
		info.Brand = strings.TrimSpace(stats[0].ModelName)
		if stats[0].Mhz > 0 {
			info.SpeedMHz = uint64(stats[0].Mhz)
		}
	} else if err != nil {
		h.log.Debug("cpu info unavailable: %v", err)
	}

	if pct, err := cpu.PercentWithContext(ctx, h.cpuSample, false); err == nil && len(pct) > 0 {
		info.UsagePercent = pct[0]
	} else if err != nil {
		h.log.Debug("cpu usage unavailable: %v", err)
	}

	temps, err := sensors.TemperaturesWithContext(ctx)
	if err != nil && len(temps) == 0 {
		h.log.Debug("cpu temperature unavailable: %v", err)
	}
	info.TemperatureC = cpuTemperature(temps)

	return info, nil
}

// cpuTemperature returns the hottest reading among CPU-looking sensors, or 0.
func cpuTemperature(temps []sensors.TemperatureStat) float64 {
	var hottest float64
	for _, t := range temps {
		key := strings.ToLower(t.SensorKey)
		for _, k := range cpuSensorKeys {
			if strings.Contains(key, k) {
				if t.Temperature > hottest {
					hottest = t.Temperature
				}
				break
			}
		}
	}
	return hottest
}

// kernelArch prefers the kernel's machine name (x86_64, aarch64) and falls
// back to the Go architecture the binary was built for.
func kernelArch(ctx context.Context) string {
	if info, err := host.InfoWithContext(ctx); err == nil && info.KernelArch != "" {
		return info.KernelArch
	}
	return runtime.GOARCH
}
