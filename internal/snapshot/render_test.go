package snapshot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolume_String(t *testing.T) {
	v := Volume{AvailableBytes: 500, TotalBytes: 1000, Kind: "SSD", FileSystem: "ext4"}

	out := v.String()

	parts := []string{"available_space: 500", "disk type: SSD", "dfile system: ext4", "total space: 1000"}
	last := -1
	for _, p := range parts {
		idx := strings.Index(out, p)
		require.GreaterOrEqual(t, idx, 0, "missing %q in %q", p, out)
		assert.Greater(t, idx, last, "%q out of order", p)
		last = idx
	}
}

func TestStorageInfo_String(t *testing.T) {
	s := StorageInfo{Volumes: map[string]Volume{
		"sdb1":  {AvailableBytes: 1, TotalBytes: 2, Kind: "HDD", FileSystem: "vfat"},
		"nvme0": {AvailableBytes: 500, TotalBytes: 1000, Kind: "SSD", FileSystem: "ext4"},
	}}

	out := s.String()

	assert.True(t, strings.HasPrefix(out, "name - nvme0\navailable_space: 500"))
	assert.Contains(t, out, volumeSeparator+"name - sdb1\n")
	assert.Equal(t, []string{"nvme0", "sdb1"}, s.Names())
}

func TestInterface_String(t *testing.T) {
	i := Interface{
		Name:       "eth0",
		IPNetworks: "10.0.0.2/24, fe80::1/64",
		MACAddress: "aa:bb:cc:dd:ee:ff",
		RxErrors:   1,
		TxErrors:   2,
		RxPackets:  300,
		TxPackets:  400,
		MTU:        1500,
	}

	lines := strings.Split(i.String(), "\n")

	require.Len(t, lines, 8)
	assert.Equal(t, "interface name:              eth0", lines[0])
	assert.Equal(t, "network ip networks:         10.0.0.2/24, fe80::1/64", lines[1])
	assert.Equal(t, "total errors on received:    1", lines[3])
	assert.Equal(t, "total packets transmitted:   400", lines[6])
	assert.Equal(t, "mtu:                         1500", lines[7])
}

func TestComponent_String(t *testing.T) {
	c := Component{Label: "coretemp Package id 0", TemperatureC: 51.9, MaxC: 80, CriticalC: 100}
	assert.Equal(t,
		"label:               coretemp Package id 0\ntemperature:         51\nmax_temp:            80\ntcritical_temp:      100\n",
		c.String())

	assert.Equal(t, " ", Component{TemperatureC: 40}.String())
}

func TestSnapshot_Fields(t *testing.T) {
	s := Neutral()
	s.Processor = ProcessorInfo{PhysicalCores: 4, LogicalCores: 8, Brand: "Intel", Arch: "x86_64", UsagePercent: 37.8, SpeedMHz: 2400, TemperatureC: 55}
	s.Memory = MemoryInfo{TotalMemory: 16 * bytesPerMB, UsedMemory: 2 * bytesPerMB}
	s.Graphics = GraphicsInfo{Adapters: []string{"a", "b"}}

	cpu := s.Fields(Processor)
	require.Len(t, cpu, 7)
	assert.Equal(t, Field{"count cpu_usage", "37"}, cpu[4])
	assert.Equal(t, Field{"cpu frequency", "2400Mhz"}, cpu[5])
	assert.Equal(t, Field{"cpu temperature", "55°C"}, cpu[6])

	mem := s.Fields(Memory)
	assert.Equal(t, Field{"total memory", "16Mb"}, mem[0])
	assert.Equal(t, Field{"used memory", "2Mb"}, mem[1])

	assert.Equal(t, []Field{{"gpu informations", "a,b"}}, s.Fields(Graphics))
	assert.Nil(t, s.Fields(Empty))
}

func TestSnapshot_FieldsOSUnknowns(t *testing.T) {
	s := Neutral()
	s.OS = OSInfo{Kind: "linux", Arch: "arm64", HostName: "pi"}

	fields := s.Fields(OSIdentity)

	assert.Equal(t, Field{"os type", "linux"}, fields[0])
	assert.Equal(t, Field{"name os", Unknown}, fields[1])
	assert.Equal(t, Field{"host name", "pi"}, fields[5])
	assert.Equal(t, Field{"cpu arch", "arm64"}, fields[6])
}

func TestSnapshot_Text(t *testing.T) {
	s := Neutral()
	s.Storage.Volumes["disk"] = Volume{AvailableBytes: 500, TotalBytes: 1000, Kind: "SSD", FileSystem: "ext4"}

	assert.Equal(t, "name - disk\n"+s.Storage.Volumes["disk"].String(), s.Text(Storage))
	assert.Contains(t, s.Text(Processor), "cpu brand: unknown")
	assert.Equal(t, "", s.Text(Empty))
	assert.Equal(t, "", s.Text(Network))
}

func TestRenderUnits(t *testing.T) {
	assert.Equal(t, "0Mb", mb(1023999))
	assert.Equal(t, "1Mb", mb(1024000))
	assert.Equal(t, "1Mb", mb(2047999))

	assert.Equal(t, "51", formatInt(51.9))
	assert.Equal(t, "-3", formatInt(-3.7))
	assert.Equal(t, "0", formatInt(0.4))
}
