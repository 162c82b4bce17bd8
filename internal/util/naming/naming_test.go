package naming

import "testing"

func TestNamingFunctions(t *testing.T) {
	suffix := "ab12cd"

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "ResourceGroup",
			got:      ResourceGroup(suffix),
			expected: "azvmlab-rg-ab12cd",
		},
		{
			name:     "VirtualNetwork",
			got:      VirtualNetwork(suffix),
			expected: "azvmlab-vnet-ab12cd",
		},
		{
			name:     "Subnet",
			got:      Subnet(1),
			expected: "subnet1",
		},
		{
			name:     "Interface",
			got:      Interface(suffix, 2),
			expected: "azvmlab-nic2-ab12cd",
		},
		{
			name:     "Disk",
			got:      Disk(suffix, 3),
			expected: "azvmlab-disk3-ab12cd",
		},
		{
			name:     "WindowsVM",
			got:      WindowsVM(suffix),
			expected: "wvm-ab12cd",
		},
		{
			name:     "LinuxVM",
			got:      LinuxVM(suffix),
			expected: "lvm-ab12cd",
		},
		{
			name:     "OSDisk",
			got:      OSDisk("wvm-ab12cd"),
			expected: "wvm-ab12cd-osdisk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, expected %q", tt.got, tt.expected)
			}
		})
	}
}

func TestSuffix(t *testing.T) {
	a := Suffix()
	b := Suffix()

	if len(a) != 6 {
		t.Errorf("suffix length = %d, expected 6", len(a))
	}
	if a == b {
		t.Errorf("two suffixes should differ, both were %q", a)
	}
}
