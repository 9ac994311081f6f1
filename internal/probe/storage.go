package probe

import (
	"context"
	"path/filepath"
	"slices"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v4/disk"

	"github.com/rileyhilliard/sysview/internal/errors"
	"github.com/rileyhilliard/sysview/internal/logger"
	"github.com/rileyhilliard/sysview/internal/snapshot"
)

// diskClass is what the block inventory knows about a device.
type diskClass struct {
	kind      string
	removable bool
}

// Storage lists mounted volumes keyed by device name. Volumes reporting zero
// capacity are skipped.
func (h *Host) Storage(ctx context.Context) (snapshot.StorageInfo, error) {
	parts, err := disk.PartitionsWithContext(ctx, h.includePseudoFS)
	if err != nil {
		return snapshot.StorageInfo{}, errors.Wrap(err, "Cannot list disk partitions")
	}

	usage := func(path string) (*disk.UsageStat, error) {
		return disk.UsageWithContext(ctx, path)
	}

	return snapshot.StorageInfo{
		Volumes: buildVolumes(parts, usage, blockClasses(h.log), h.log),
	}, nil
}

func buildVolumes(
	parts []disk.PartitionStat,
	usage func(string) (*disk.UsageStat, error),
	classes map[string]diskClass,
	log logger.Logger,
) map[string]snapshot.Volume {
	volumes := make(map[string]snapshot.Volume, len(parts))

	for _, p := range parts {
		// Bind mounts repeat a device; the first mount wins.
		if _, seen := volumes[p.Device]; seen {
			continue
		}

		u, err := usage(p.Mountpoint)
		if err != nil {
			log.Debug("skipping %s: %v", p.Mountpoint, err)
			continue
		}
		if u.Total == 0 {
			continue
		}

		class, ok := classes[filepath.Base(p.Device)]
		if !ok {
			class = diskClass{kind: "Unknown"}
		}

		fs := p.Fstype
		if fs == "" {
			fs = u.Fstype
		}

		volumes[p.Device] = snapshot.Volume{
			AvailableBytes: u.Free,
			TotalBytes:     u.Total,
			Kind:           class.kind,
			FileSystem:     fs,
			Removable:      class.removable,
			ReadOnly:       slices.Contains(p.Opts, "ro"),
		}
	}

	return volumes
}

// blockClasses maps disk and partition names (sda, nvme0n1p2) to drive type.
// An unreadable inventory yields an empty map; volumes then report Unknown.
func blockClasses(log logger.Logger) map[string]diskClass {
	classes := make(map[string]diskClass)

	info, err := ghw.Block(ghw.WithDisableWarnings())
	if err != nil {
		log.Debug("block inventory unavailable: %v", err)
		return classes
	}

	for _, d := range info.Disks {
		class := diskClass{kind: d.DriveType.String(), removable: d.IsRemovable}
		classes[d.Name] = class
		for _, p := range d.Partitions {
			classes[p.Name] = class
		}
	}
	return classes
}
