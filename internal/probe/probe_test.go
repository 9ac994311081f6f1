package probe

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/jaypipes/ghw/pkg/gpu"
	"github.com/jaypipes/ghw/pkg/pci"
	"github.com/jaypipes/pcidb"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/sensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/sysview/internal/errors"
	"github.com/rileyhilliard/sysview/internal/logger"
	"github.com/rileyhilliard/sysview/internal/probe/parsers"
	"github.com/rileyhilliard/sysview/internal/snapshot"
)

func TestCPUTemperature(t *testing.T) {
	temps := []sensors.TemperatureStat{
		{SensorKey: "nvme_composite", Temperature: 70},
		{SensorKey: "coretemp_package_id_0", Temperature: 55},
		{SensorKey: "coretemp_core_1", Temperature: 61},
		{SensorKey: "acpitz", Temperature: 90},
	}

	assert.Equal(t, 61.0, cpuTemperature(temps))
	assert.Equal(t, 48.5, cpuTemperature([]sensors.TemperatureStat{{SensorKey: "k10temp_tctl", Temperature: 48.5}}))
	assert.Zero(t, cpuTemperature(nil))
}

func TestBuildVolumes(t *testing.T) {
	parts := []disk.PartitionStat{
		{Device: "/dev/nvme0n1p2", Mountpoint: "/", Fstype: "ext4", Opts: []string{"rw", "relatime"}},
		{Device: "/dev/nvme0n1p2", Mountpoint: "/var/lib/docker", Fstype: "ext4", Opts: []string{"rw"}},
		{Device: "/dev/sdb1", Mountpoint: "/media/usb", Fstype: "vfat", Opts: []string{"ro", "nosuid"}},
		{Device: "/dev/loop3", Mountpoint: "/snap/core/1", Fstype: "squashfs", Opts: []string{"ro"}},
		{Device: "/dev/sdc1", Mountpoint: "/broken", Fstype: "xfs"},
	}
	usage := map[string]*disk.UsageStat{
		"/":               {Total: 1000, Free: 500},
		"/var/lib/docker": {Total: 1000, Free: 1},
		"/media/usb":      {Total: 64, Free: 32},
		"/snap/core/1":    {Total: 0, Free: 0},
	}
	usageFn := func(path string) (*disk.UsageStat, error) {
		if u, ok := usage[path]; ok {
			return u, nil
		}
		return nil, stderrors.New("permission denied")
	}
	classes := map[string]diskClass{
		"nvme0n1p2": {kind: "SSD"},
		"sdb1":      {kind: "HDD", removable: true},
	}
	log := logger.NewBufferLogger()

	volumes := buildVolumes(parts, usageFn, classes, log)

	require.Len(t, volumes, 2)
	assert.Equal(t, snapshot.Volume{
		AvailableBytes: 500, TotalBytes: 1000, Kind: "SSD", FileSystem: "ext4",
	}, volumes["/dev/nvme0n1p2"], "first mount of a device wins")
	assert.Equal(t, snapshot.Volume{
		AvailableBytes: 32, TotalBytes: 64, Kind: "HDD", FileSystem: "vfat", Removable: true, ReadOnly: true,
	}, volumes["/dev/sdb1"])
	assert.NotContains(t, volumes, "/dev/loop3", "zero-capacity volumes are skipped")
	assert.True(t, log.HasLevel("debug"))
}

func TestBuildVolumes_UnknownKind(t *testing.T) {
	parts := []disk.PartitionStat{{Device: "server:/export", Mountpoint: "/mnt/nfs", Fstype: ""}}
	usageFn := func(string) (*disk.UsageStat, error) {
		return &disk.UsageStat{Total: 10, Free: 5, Fstype: "nfs4"}, nil
	}

	volumes := buildVolumes(parts, usageFn, map[string]diskClass{}, logger.Noop())

	assert.Equal(t, "Unknown", volumes["server:/export"].Kind)
	assert.Equal(t, "nfs4", volumes["server:/export"].FileSystem)
}

func TestMergeInterfaces(t *testing.T) {
	ifaces := []net.InterfaceStat{
		{Name: "lo", MTU: 65536, Addrs: net.InterfaceAddrList{{Addr: "127.0.0.1/8"}, {Addr: "::1/128"}}},
		{Name: "eth0", MTU: 1500, HardwareAddr: "aa:bb:cc:dd:ee:ff", Addrs: net.InterfaceAddrList{{Addr: "10.0.0.2/24"}}},
		{Name: "wg0"},
	}
	counters := []net.IOCountersStat{
		{Name: "eth0", PacketsRecv: 300, PacketsSent: 400, Errin: 1, Errout: 2},
		{Name: "lo", PacketsRecv: 10, PacketsSent: 10},
	}

	got := mergeInterfaces(ifaces, counters)

	require.Len(t, got, 3)
	assert.Equal(t, "lo", got[0].Name, "OS order is kept")
	assert.Equal(t, "127.0.0.1/8, ::1/128", got[0].IPNetworks)
	assert.Equal(t, snapshot.Interface{
		Name: "eth0", IPNetworks: "10.0.0.2/24", MACAddress: "aa:bb:cc:dd:ee:ff",
		RxErrors: 1, TxErrors: 2, RxPackets: 300, TxPackets: 400, MTU: 1500,
	}, got[1])
	assert.Equal(t, snapshot.Interface{Name: "wg0"}, got[2], "missing counters stay zero")
}

func TestMergeInterfaces_NoCounters(t *testing.T) {
	got := mergeInterfaces([]net.InterfaceStat{{Name: "eth0", MTU: 9000}}, nil)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(9000), got[0].MTU)
	assert.Zero(t, got[0].RxPackets)
}

func TestOSInfo(t *testing.T) {
	got := osInfo(&host.InfoStat{
		Hostname:        "build-01",
		OS:              "linux",
		Platform:        "ubuntu",
		PlatformFamily:  "debian",
		PlatformVersion: "24.04",
		KernelVersion:   "6.8.0-45-generic",
		KernelArch:      "x86_64",
	})

	assert.Equal(t, snapshot.OSInfo{
		Kind: "linux", Name: "ubuntu", KernelVersion: "6.8.0-45-generic", OSVersion: "24.04",
		DistributionID: "debian", HostName: "build-01", Arch: "x86_64",
	}, got)

	bare := osInfo(&host.InfoStat{})
	assert.NotEmpty(t, bare.Kind)
	assert.NotEmpty(t, bare.Arch)
}

func TestComponents(t *testing.T) {
	got := components([]sensors.TemperatureStat{
		{SensorKey: "k10temp_tctl", Temperature: 48.5, High: 70, Critical: 95},
	})

	assert.Equal(t, []snapshot.Component{
		{Label: "k10temp_tctl", TemperatureC: 48.5, MaxC: 70, CriticalC: 95},
	}, got)
	assert.NotNil(t, components(nil))
}

type fakeBackend struct {
	name     string
	adapters []string
	err      error
	calls    int
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) Adapters(context.Context) ([]string, error) {
	f.calls++
	return f.adapters, f.err
}

func TestGraphicsChain_FirstNonEmptyWins(t *testing.T) {
	failing := &fakeBackend{name: "a", err: stderrors.New("boom")}
	empty := &fakeBackend{name: "b"}
	found := &fakeBackend{name: "c", adapters: []string{"NVIDIA GeForce RTX 3080"}}
	never := &fakeBackend{name: "d", adapters: []string{"unused"}}

	info, err := NewGraphicsChain(nil, failing, empty, found, never).Graphics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"NVIDIA GeForce RTX 3080"}, info.Adapters)
	assert.Zero(t, never.calls)
}

func TestGraphicsChain_NoHardware(t *testing.T) {
	chain := NewGraphicsChain(nil, &fakeBackend{name: "a"}, &fakeBackend{name: "b", err: stderrors.New("missing")})

	info, err := chain.Graphics(context.Background())

	require.NoError(t, err)
	assert.Empty(t, info.Adapters)
	assert.NotNil(t, info.Adapters)
}

func TestGraphicsChain_AllFail(t *testing.T) {
	log := logger.NewBufferLogger()
	chain := NewGraphicsChain(log,
		&fakeBackend{name: "a", err: stderrors.New("one")},
		&fakeBackend{name: "b", err: stderrors.New("two")},
	)

	_, err := chain.Graphics(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrProbe))
	assert.Equal(t, 2, log.Count("debug"))
}

func TestGraphicsChain_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := &fakeBackend{name: "a", adapters: []string{"x"}}

	_, err := NewGraphicsChain(nil, b).Graphics(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, b.calls)
}

func TestCommandBackend(t *testing.T) {
	var gotName string
	var gotArgs []string
	run := RunnerFunc(func(_ context.Context, name string, args ...string) (string, error) {
		gotName, gotArgs = name, args
		return "NVIDIA A100\nNVIDIA A100\n", nil
	})

	b, err := newBackend(BackendNvidiaSMI, run)
	require.NoError(t, err)

	adapters, err := b.Adapters(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "nvidia-smi", gotName)
	assert.Equal(t, []string{"--query-gpu=name", "--format=csv,noheader"}, gotArgs)
	assert.Equal(t, []string{"NVIDIA A100", "NVIDIA A100"}, adapters)
	assert.Equal(t, BackendNvidiaSMI, b.Name())
}

func TestCommandBackend_RunnerError(t *testing.T) {
	b := &CommandBackend{
		BackendName: BackendLspci,
		Command:     "lspci",
		Parse:       parsers.ParseLspciDisplay,
		Runner: RunnerFunc(func(context.Context, string, ...string) (string, error) {
			return "", stderrors.New("not installed")
		}),
	}

	_, err := b.Adapters(context.Background())
	assert.Error(t, err)
}

func TestBackendsByName(t *testing.T) {
	backends, err := BackendsByName(DefaultGraphicsBackends)
	require.NoError(t, err)
	require.Len(t, backends, len(DefaultGraphicsBackends))
	for i, b := range backends {
		assert.Equal(t, DefaultGraphicsBackends[i], b.Name())
	}

	_, err = BackendsByName([]string{"ghw", "cuda"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "cuda")
}

func TestNewHost(t *testing.T) {
	h, err := NewHost(Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultCPUSample, h.cpuSample)

	probes := h.Probes()
	assert.NotNil(t, probes.Processor)
	assert.NotNil(t, probes.Graphics)
	assert.NotNil(t, probes.Sensors)

	_, err = NewHost(Options{GraphicsBackends: []string{"opencl"}})
	assert.Error(t, err)
}

func TestCardName(t *testing.T) {
	tests := []struct {
		name string
		card *gpu.GraphicsCard
		want string
	}{
		{"nil card", nil, ""},
		{"no device info", &gpu.GraphicsCard{Address: "0000:01:00.0"}, "0000:01:00.0"},
		{
			"vendor and product",
			&gpu.GraphicsCard{DeviceInfo: &pci.Device{
				Vendor:  &pcidb.Vendor{Name: "NVIDIA Corporation"},
				Product: &pcidb.Product{Name: "GA102 [GeForce RTX 3080]"},
			}},
			"NVIDIA Corporation GA102 [GeForce RTX 3080]",
		},
		{
			"product already names vendor",
			&gpu.GraphicsCard{DeviceInfo: &pci.Device{
				Vendor:  &pcidb.Vendor{Name: "Intel"},
				Product: &pcidb.Product{Name: "Intel UHD Graphics 630"},
			}},
			"Intel UHD Graphics 630",
		},
		{
			"vendor only",
			&gpu.GraphicsCard{DeviceInfo: &pci.Device{Vendor: &pcidb.Vendor{Name: "AMD"}}},
			"AMD",
		},
		{
			"empty database entry",
			&gpu.GraphicsCard{Address: "0000:03:00.0", DeviceInfo: &pci.Device{}},
			"0000:03:00.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cardName(tt.card))
		})
	}
}

func TestBackendsByName_SuggestsTypo(t *testing.T) {
	_, err := BackendsByName([]string{"nvidia_smi"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Did you mean 'nvidia-smi'?")
}
