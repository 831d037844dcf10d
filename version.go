package scriber

import (
	"runtime/debug"
	"strings"
)

const versionFallback = "0.1.0"

// sdkVersion reports the version string sent with every batch, in the
// "scribergo-<version>" form the API expects.
func sdkVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			if dep.Path == "github.com/scriberio/scriber-go" {
				return "scribergo-" + strings.TrimPrefix(dep.Version, "v")
			}
		}
	}
	return "scribergo-" + versionFallback
}
