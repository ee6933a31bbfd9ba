package config

// File represents the structure of the buildroots.yaml configuration file.
type File struct {
	Buildroot BuildrootDTO `yaml:"buildroot"`
	GDB       GDBDTO       `yaml:"gdb"`
	Targets   []TargetDTO  `yaml:"targets"`
}

// BuildrootDTO holds the Buildroot pipeline settings.
type BuildrootDTO struct {
	Src      string `yaml:"src"`
	Fragment string `yaml:"fragment"`
}

// GDBDTO holds the GDB pipeline settings.
type GDBDTO struct {
	Src           string `yaml:"src"`
	ConfigureOpts string `yaml:"configure_opts"`
}

// TargetDTO represents a target definition in the configuration.
type TargetDTO struct {
	Name      string   `yaml:"name"`
	Defconfig string   `yaml:"defconfig"`
	Options   []string `yaml:"options"`
	External  string   `yaml:"external"`
	CFlags    []string `yaml:"cflags"`
	LDFlags   []string `yaml:"ldflags"`
}
