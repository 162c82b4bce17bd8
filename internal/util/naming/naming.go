package naming

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Suffix returns a random 6-character suffix used to scope one run's
// resource names.
func Suffix() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:6]
}

func ResourceGroup(suffix string) string {
	return fmt.Sprintf("azvmlab-rg-%s", suffix)
}

func VirtualNetwork(suffix string) string {
	return fmt.Sprintf("azvmlab-vnet-%s", suffix)
}

func Subnet(index int) string {
	return fmt.Sprintf("subnet%d", index)
}

func Interface(suffix string, index int) string {
	return fmt.Sprintf("azvmlab-nic%d-%s", index, suffix)
}

func Disk(suffix string, index int) string {
	return fmt.Sprintf("azvmlab-disk%d-%s", index, suffix)
}

func WindowsVM(suffix string) string {
	return fmt.Sprintf("wvm-%s", suffix)
}

func LinuxVM(suffix string) string {
	return fmt.Sprintf("lvm-%s", suffix)
}

func OSDisk(vmName string) string {
	return fmt.Sprintf("%s-osdisk", vmName)
}
