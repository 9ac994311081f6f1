package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNvidiaSMINames(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []string
	}{
		{
			name:   "single gpu",
			output: "NVIDIA GeForce RTX 3080\n",
			want:   []string{"NVIDIA GeForce RTX 3080"},
		},
		{
			name:   "multiple gpus",
			output: "NVIDIA A100-SXM4-40GB\nNVIDIA A100-SXM4-40GB\n",
			want:   []string{"NVIDIA A100-SXM4-40GB", "NVIDIA A100-SXM4-40GB"},
		},
		{
			name:   "extra columns are ignored",
			output: "NVIDIA A100, 98, 32768",
			want:   []string{"NVIDIA A100"},
		},
		{
			name:   "blank lines and N/A skipped",
			output: "\n[N/A]\nTesla T4\n\n",
			want:   []string{"Tesla T4"},
		},
		{
			name:   "empty output",
			output: "   ",
			want:   nil,
		},
		{
			name:   "driver failure",
			output: "NVIDIA-SMI has failed because it couldn't communicate with the NVIDIA driver.",
			want:   nil,
		},
		{
			name:   "no devices",
			output: "No devices were found",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNvidiaSMINames(tt.output))
		})
	}
}

func TestParseLspciDisplay(t *testing.T) {
	output := `00:00.0 Host bridge: Intel Corporation 12th Gen Core Processor Host Bridge/DRAM Registers (rev 02)
00:02.0 VGA compatible controller: Intel Corporation Alder Lake-P Integrated Graphics Controller (rev 0c)
00:14.0 USB controller: Intel Corporation Alder Lake PCH USB 3.2 xHCI Host Controller (rev 01)
01:00.0 3D controller: NVIDIA Corporation GA107M [GeForce RTX 3050 Mobile] (rev a1)
02:00.0 Display controller: Advanced Micro Devices, Inc. [AMD/ATI] Device 1234
`

	got := ParseLspciDisplay(output)

	assert.Equal(t, []string{
		"Intel Corporation Alder Lake-P Integrated Graphics Controller",
		"NVIDIA Corporation GA107M [GeForce RTX 3050 Mobile]",
		"Advanced Micro Devices, Inc. [AMD/ATI] Device 1234",
	}, got)
}

func TestParseLspciDisplay_NoGraphics(t *testing.T) {
	assert.Nil(t, ParseLspciDisplay("00:1f.3 Audio device: Intel Corporation Device (rev 01)\n"))
	assert.Nil(t, ParseLspciDisplay(""))
	assert.Nil(t, ParseLspciDisplay("garbage"))
}

func TestParseSystemProfilerDisplays(t *testing.T) {
	output := `Graphics/Displays:

    Apple M2 Pro:

      Chipset Model: Apple M2 Pro
      Type: GPU
      Bus: Built-In
      Total Number of Cores: 19

    Radeon Pro 5500M:

      Chipset Model: AMD Radeon Pro 5500M
      Type: GPU
`

	assert.Equal(t, []string{"Apple M2 Pro", "AMD Radeon Pro 5500M"}, ParseSystemProfilerDisplays(output))
	assert.Nil(t, ParseSystemProfilerDisplays("Graphics/Displays:\n"))
}
