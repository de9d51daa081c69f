// Package buildinfo holds version information stamped in at link time.
//
// Set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/framelink/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/framelink/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/framelink/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/framelink
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the release tag, e.g. "v0.3.0".
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", resolved(), Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", resolved(), Commit, Date)
}

// resolved falls back to the module version recorded by `go install` when
// no tag was stamped in.
func resolved() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}
