// Package version provides version information for latticectl
package version

import (
	"runtime"
	"runtime/debug"
)

// These variables are set via ldflags during build time
var (
	// Version is the semantic version of latticectl
	Version = "dev"

	// GitCommit is the git commit SHA
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built
	BuildDate = "unknown"
)

// Info contains all version information
type Info struct {
	Version    string `json:"version" yaml:"version"`
	GitCommit  string `json:"gitCommit" yaml:"gitCommit"`
	BuildDate  string `json:"buildDate" yaml:"buildDate"`
	GoVersion  string `json:"goVersion" yaml:"goVersion"`
	SDKVersion string `json:"sdkVersion,omitempty" yaml:"sdkVersion,omitempty"`
}

// GetVersion returns the version string
func GetVersion() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

// GetInfo returns all version information. The VPC Lattice SDK version is
// read from the embedded build info when available.
func GetInfo() Info {
	info := Info{
		Version:   GetVersion(),
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range bi.Deps {
			if dep.Path == "github.com/aws/aws-sdk-go-v2/service/vpclattice" {
				info.SDKVersion = dep.Version
			}
		}
	}
	return info
}
