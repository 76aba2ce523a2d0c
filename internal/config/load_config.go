package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParsePackageInfo decodes the bundled package.yaml metadata.
// Name and version are both required.
func ParsePackageInfo(raw []byte) (PackageInfo, error) {
	var info PackageInfo
	if err := yaml.Unmarshal(raw, &info); err != nil {
		return PackageInfo{}, fmt.Errorf("failed to unmarshal package metadata: %w", err)
	}
	if info.Name == "" || info.Version == "" {
		return PackageInfo{}, errors.New("package metadata is missing name or version")
	}
	return info, nil
}

// LoadPackageInfo is ParsePackageInfo with a fallback: any error yields
// DefaultPackageInfo. Call it once at startup and pass the result down.
func LoadPackageInfo(raw []byte) PackageInfo {
	info, err := ParsePackageInfo(raw)
	if err != nil {
		return DefaultPackageInfo
	}
	return info
}
