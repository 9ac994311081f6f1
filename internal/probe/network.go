package probe

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v4/net"

	"github.com/rileyhilliard/sysview/internal/errors"
	"github.com/rileyhilliard/sysview/internal/snapshot"
)

// Network lists interfaces with their addresses and cumulative counters.
func (h *Host) Network(ctx context.Context) (snapshot.NetworkInfo, error) {
	ifaces, err := net.InterfacesWithContext(ctx)
	if err != nil {
		return snapshot.NetworkInfo{}, errors.Wrap(err, "Cannot list network interfaces")
	}

	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		// Addresses are still worth showing without counters.
		h.log.Debug("interface counters unavailable: %v", err)
	}

	return snapshot.NetworkInfo{Interfaces: mergeInterfaces(ifaces, counters)}, nil
}

// mergeInterfaces joins interface metadata with per-NIC counters by name,
// keeping the order the OS reported the interfaces in.
func mergeInterfaces(ifaces []net.InterfaceStat, counters []net.IOCountersStat) []snapshot.Interface {
	byName := make(map[string]net.IOCountersStat, len(counters))
	for _, c := range counters {
		byName[c.Name] = c
	}

	out := make([]snapshot.Interface, 0, len(ifaces))
	for _, iface := range ifaces {
		addrs := make([]string, 0, len(iface.Addrs))
		for _, a := range iface.Addrs {
			addrs = append(addrs, a.Addr)
		}

		entry := snapshot.Interface{
			Name:       iface.Name,
			IPNetworks: strings.Join(addrs, ", "),
			MACAddress: iface.HardwareAddr,
		}
		if iface.MTU > 0 {
			entry.MTU = uint64(iface.MTU)
		}
		if c, ok := byName[iface.Name]; ok {
			entry.RxErrors = c.Errin
			entry.TxErrors = c.Errout
			entry.RxPackets = c.PacketsRecv
			entry.TxPackets = c.PacketsSent
		}
		out = append(out, entry)
	}
	return out
}
