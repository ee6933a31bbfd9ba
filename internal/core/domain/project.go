package domain

import "go.trai.ch/zerr"

// Project is the loaded target registry plus the per-pipeline settings
// resolved from the configuration file. Immutable once loaded.
type Project struct {
	// Root is the directory containing the configuration file. All
	// build, toolchain and status paths live underneath it.
	Root string

	// Buildroot and GDB hold the per-pipeline settings from the
	// configuration file, before flag and environment overrides.
	Buildroot Settings
	GDB       Settings

	// Targets lists every known target in declaration order.
	Targets []Target
}

// SettingsFor returns the settings block for the given pipeline.
func (p *Project) SettingsFor(pl Pipeline) Settings {
	if pl == PipelineGDB {
		return p.GDB
	}
	return p.Buildroot
}

// Target looks up one target by name.
func (p *Project) Target(name string) (Target, bool) {
	for _, t := range p.Targets {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}

// Resolve maps requested target names to targets. An empty request selects
// every known target in declaration order. An unknown name fails the whole
// invocation with ErrUnknownTarget; it indicates a configuration mistake,
// not a build failure, so it is never subject to the keep-going policy.
func (p *Project) Resolve(names []string) ([]Target, error) {
	if len(names) == 0 {
		out := make([]Target, len(p.Targets))
		copy(out, p.Targets)
		return out, nil
	}

	out := make([]Target, 0, len(names))
	for _, name := range names {
		t, ok := p.Target(name)
		if !ok {
			return nil, zerr.With(ErrUnknownTarget, "target", name)
		}
		out = append(out, t)
	}
	return out, nil
}
