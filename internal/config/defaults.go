package config

const (
	defaultLibraryDir   = "~/Pictures"
	defaultLogDir       = "~/.local/share/picflow/logs"
	defaultManifestPath = "~/.local/share/picflow/manifest.db"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir: defaultLibraryDir,
			LogDir:     defaultLogDir,
		},
		Import: Import{
			VideoExtensions: []string{".mp4", ".mov", ".avi", ".mkv"},
		},
		Manifest: Manifest{
			Enabled: true,
			Path:    defaultManifestPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
