package version

import (
	"fmt"
	"runtime"
)

var (
	// Build information, set via ldflags
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown"
	BuiltBy   = "unknown"
	GoVersion = runtime.Version()
)

// Name is the program name used in version output
const Name = "lineedit"

// Info holds version information
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	BuiltBy   string `json:"built_by"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns version information
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		BuiltBy:   BuiltBy,
		GoVersion: GoVersion,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns the multi-line form printed by --version
func (i Info) String() string {
	return fmt.Sprintf("%s version %s\ncommit: %s\nbuilt: %s\nby: %s\ngo: %s\nplatform: %s",
		Name, i.Version, i.Commit, i.Date, i.BuiltBy, i.GoVersion, i.Platform)
}

// ShortString returns the one-line form
func (i Info) ShortString() string {
	return fmt.Sprintf("%s version %s", Name, i.Version)
}
