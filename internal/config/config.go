package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// VMConfig describes one virtual machine's size and platform image.
type VMConfig struct {
	Size           string `yaml:"size"`
	ImagePublisher string `yaml:"imagePublisher"`
	ImageOffer     string `yaml:"imageOffer"`
	ImageSKU       string `yaml:"imageSKU"`
	ImageVersion   string `yaml:"imageVersion"`
}

// NetworkConfig describes the virtual network layout for a run.
type NetworkConfig struct {
	AddressSpace   string   `yaml:"addressSpace"`
	SubnetPrefixes []string `yaml:"subnetPrefixes"`
}

// Config holds all parameters of a workflow run.
type Config struct {
	SubscriptionID string `yaml:"subscriptionID"`
	Location       string `yaml:"location"`
	AdminUsername  string `yaml:"adminUsername"`
	AdminPassword  string `yaml:"adminPassword"`

	Network   NetworkConfig `yaml:"network"`
	WindowsVM VMConfig      `yaml:"windowsVM"`
	LinuxVM   VMConfig      `yaml:"linuxVM"`

	// DataDiskSizesGB are the sizes of the disks attached to the Windows
	// machine at creation time. ExtraDiskSizeGB is the disk appended to it
	// later in the run.
	DataDiskSizesGB []int32 `yaml:"dataDiskSizesGB"`
	ExtraDiskSizeGB int32   `yaml:"extraDiskSizeGB"`
}

// Load reads the configuration from an optional YAML file, applies
// defaults, then applies environment overrides. An empty path loads
// defaults and environment only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		// #nosec G304
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Location == "" {
		c.Location = "eastus2"
	}
	if c.AdminUsername == "" {
		c.AdminUsername = "azlabuser"
	}
	if c.Network.AddressSpace == "" {
		c.Network.AddressSpace = "172.18.0.0/16"
	}
	if len(c.Network.SubnetPrefixes) == 0 {
		c.Network.SubnetPrefixes = []string{"172.18.0.0/24", "172.18.1.0/24"}
	}
	if c.WindowsVM.Size == "" {
		c.WindowsVM.Size = "Standard_D2s_v3"
	}
	if c.WindowsVM.ImagePublisher == "" {
		c.WindowsVM.ImagePublisher = "MicrosoftWindowsServer"
		c.WindowsVM.ImageOffer = "WindowsServer"
		c.WindowsVM.ImageSKU = "2022-datacenter-g2"
		c.WindowsVM.ImageVersion = "latest"
	}
	if c.LinuxVM.Size == "" {
		c.LinuxVM.Size = "Standard_D2s_v3"
	}
	if c.LinuxVM.ImagePublisher == "" {
		c.LinuxVM.ImagePublisher = "Canonical"
		c.LinuxVM.ImageOffer = "0001-com-ubuntu-server-jammy"
		c.LinuxVM.ImageSKU = "22_04-lts-gen2"
		c.LinuxVM.ImageVersion = "latest"
	}
	if len(c.DataDiskSizesGB) == 0 {
		c.DataDiskSizesGB = []int32{100, 50}
	}
	if c.ExtraDiskSizeGB == 0 {
		c.ExtraDiskSizeGB = 50
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("AZURE_SUBSCRIPTION_ID"); v != "" {
		c.SubscriptionID = v
	}
	if v := os.Getenv("AZVMLAB_LOCATION"); v != "" {
		c.Location = v
	}
	if v := os.Getenv("AZVMLAB_ADMIN_USERNAME"); v != "" {
		c.AdminUsername = v
	}
	if v := os.Getenv("AZVMLAB_ADMIN_PASSWORD"); v != "" {
		c.AdminPassword = v
	}
	if c.AdminPassword == "" {
		c.AdminPassword = generatePassword()
	}
}

// Validate checks that the configuration is complete enough to run.
func (c *Config) Validate() error {
	if c.SubscriptionID == "" {
		return fmt.Errorf("subscription ID is required (set AZURE_SUBSCRIPTION_ID or subscriptionID in the config file)")
	}
	if len(c.Network.SubnetPrefixes) != 2 {
		return fmt.Errorf("exactly two subnet prefixes are required, got %d", len(c.Network.SubnetPrefixes))
	}
	if len(c.DataDiskSizesGB) != 2 {
		return fmt.Errorf("exactly two initial data disk sizes are required, got %d", len(c.DataDiskSizesGB))
	}
	return nil
}

// generatePassword produces a throwaway admin password that satisfies
// Azure's complexity rules. The machines only live for the duration of
// one run.
func generatePassword() string {
	return "Azl1!" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
}
