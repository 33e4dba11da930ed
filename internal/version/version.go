package version

import "runtime"

// service identifies this binary in the /version payload.
const service = "mergington-activities"

// Build metadata, injected via -ldflags at release time.
var (
	// Version is the git tag or semantic version
	Version = "dev"
	// Commit is the git commit SHA
	Commit = "unknown"
)

// Info is the payload served by the /version endpoint.
type Info struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
}

// Get returns the current build information.
func Get() Info {
	return Info{
		Service:   service,
		Version:   Version,
		Commit:    Commit,
		GoVersion: runtime.Version(),
	}
}
