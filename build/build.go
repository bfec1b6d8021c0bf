// Package build describes the running binary: its module version, the
// commit it was built from and the versions of its dependencies.
package build

import (
	"encoding/json"
	"runtime/debug"
)

// Info is the build metadata of a binary.
type Info struct {
	Module       string            `json:"module"       yaml:"module"`
	Version      string            `json:"version"      yaml:"version"`
	GoVersion    string            `json:"goVersion"    yaml:"goVersion"`
	GitCommit    string            `json:"gitCommit"    yaml:"gitCommit,omitempty"`
	GitDate      string            `json:"gitDate"      yaml:"gitDate,omitempty"`
	Dependencies map[string]string `json:"dependencies" yaml:"dependencies,omitempty"`
}

// Injected may be set with -ldflags "-X" to a JSON encoded Info. Fields it
// sets take precedence over what the Go toolchain recorded.
var Injected string //nolint:gochecknoglobals

// Parse decodes a JSON encoded Info. It returns false for empty input, "{}",
// or malformed JSON.
func Parse(js string) (*Info, bool) {
	if js == "" || js == "{}" {
		return nil, false
	}

	var info Info
	if err := json.Unmarshal([]byte(js), &info); err != nil {
		return nil, false
	}

	return &info, true
}

// Current returns the metadata recorded in the running binary, overlaid
// with Injected.
func Current() Info {
	info := Info{}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info = FromBuildInfo(bi)
	}

	if injected, ok := Parse(Injected); ok {
		info = merge(info, *injected)
	}

	return info
}

// FromBuildInfo converts the toolchain's build information.
func FromBuildInfo(bi *debug.BuildInfo) Info {
	info := Info{
		Module:       bi.Main.Path,
		Version:      bi.Main.Version,
		GoVersion:    bi.GoVersion,
		Dependencies: make(map[string]string, len(bi.Deps)),
	}

	for _, dep := range bi.Deps {
		info.Dependencies[dep.Path] = dep.Version
	}

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.GitCommit = setting.Value
		case "vcs.time":
			info.GitDate = setting.Value
		}
	}

	return info
}

func merge(base, overlay Info) Info {
	for _, pair := range []struct{ dst, src *string }{
		{&base.Module, &overlay.Module},
		{&base.Version, &overlay.Version},
		{&base.GoVersion, &overlay.GoVersion},
		{&base.GitCommit, &overlay.GitCommit},
		{&base.GitDate, &overlay.GitDate},
	} {
		if *pair.src != "" {
			*pair.dst = *pair.src
		}
	}

	if len(overlay.Dependencies) > 0 {
		base.Dependencies = overlay.Dependencies
	}

	return base
}
