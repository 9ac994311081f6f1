package probe

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/rileyhilliard/sysview/internal/errors"
	"github.com/rileyhilliard/sysview/internal/snapshot"
)

// OS reads operating system identity.
func (h *Host) OS(ctx context.Context) (snapshot.OSInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return snapshot.OSInfo{}, errors.Wrap(err, "Cannot read host information")
	}
	return osInfo(info), nil
}

func osInfo(info *host.InfoStat) snapshot.OSInfo {
	out := snapshot.OSInfo{
		Kind:           info.OS,
		Name:           info.Platform,
		KernelVersion:  info.KernelVersion,
		OSVersion:      info.PlatformVersion,
		DistributionID: info.PlatformFamily,
		HostName:       info.Hostname,
		Arch:           info.KernelArch,
	}
	if out.Kind == "" {
		out.Kind = runtime.GOOS
	}
	if out.Arch == "" {
		out.Arch = runtime.GOARCH
	}
	return out
}
