// Package version carries build metadata injected with
//
//	-ldflags "-X github.com/awsl-project/localnotes/internal/version.Version=1.2.0 ..."
package version

import "fmt"

// Name is the product name shown in the window title and tray.
const Name = "本地笔记"

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Info returns "<version> (<short commit>)".
func Info() string {
	return fmt.Sprintf("%s (%s)", Version, shortCommit())
}

// Full returns version, short commit and build time.
func Full() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, shortCommit(), BuildTime)
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
