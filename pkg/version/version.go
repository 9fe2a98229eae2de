package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// These variables are set at build time using ldflags
	Version   = "dev"
	GitCommit = "unknown"
	GitTag    = "unknown"
	BuildDate = "unknown"
)

// Info holds version information
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	GitTag    string `json:"gitTag"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Compiler  string `json:"compiler"`
	Platform  string `json:"platform"`
}

// Get returns version information. A dev build reports the module version
// recorded by the go tool when there is one.
func Get() Info {
	v := Version
	if info, ok := debug.ReadBuildInfo(); ok && v == "dev" {
		if mv := info.Main.Version; mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	return Info{
		Version:   v,
		GitCommit: GitCommit,
		GitTag:    GitTag,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Compiler:  runtime.Compiler,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a human-readable version string
func (i Info) String() string {
	return fmt.Sprintf("wiseimport version %s\nGit commit: %s\nGit tag: %s\nBuild date: %s\nGo version: %s\nCompiler: %s\nPlatform: %s",
		i.Version, i.GitCommit, i.GitTag, i.BuildDate, i.GoVersion, i.Compiler, i.Platform)
}
