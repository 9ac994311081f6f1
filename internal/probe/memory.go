package probe

import (
	"context"

	"github.com/shirou/gopsutil/v4/mem"

	"github.com/rileyhilliard/sysview/internal/errors"
	"github.com/rileyhilliard/sysview/internal/snapshot"
)

// Memory reads RAM and swap counters.
func (h *Host) Memory(ctx context.Context) (snapshot.MemoryInfo, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return snapshot.MemoryInfo{}, errors.Wrap(err, "Cannot read virtual memory")
	}

	info := snapshot.MemoryInfo{
		TotalMemory:     vm.Total,
		UsedMemory:      vm.Used,
		AvailableMemory: vm.Available,
	}

	// Hosts without swap still have a valid memory record.
	if sw, err := mem.SwapMemoryWithContext(ctx); err == nil {
		info.TotalSwap = sw.Total
		info.FreeSwap = sw.Free
		info.UsedSwap = sw.Used
	} else {
		h.log.Debug("swap unavailable: %v", err)
	}

	return info, nil
}
