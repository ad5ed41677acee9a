package infra

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "binance-bot"

// WorkspaceDir returns the root directory for runtime data such as the
// order journal. A local "data" directory takes priority (portable/dev
// mode); otherwise the OS-standard data directory is used.
func WorkspaceDir() string {
	if info, err := os.Stat("data"); err == nil && info.IsDir() {
		return "data"
	}

	var baseDir string
	switch runtime.GOOS {
	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			baseDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, _ := os.UserHomeDir()
		baseDir = filepath.Join(home, "Library", "Application Support")
	default:
		if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
			baseDir = dataHome
		} else {
			home, _ := os.UserHomeDir()
			baseDir = filepath.Join(home, ".local", "share")
		}
	}
	return filepath.Join(baseDir, appDirName)
}

// EnsureDir creates a directory (and parents) if it does not exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// ResolveConfigPath returns the config file location: an explicit path
// if given, else ./config.yaml.
func ResolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return "config.yaml"
}

// JournalPath resolves the journal location, defaulting into the
// workspace directory when the config leaves it empty.
func JournalPath(cfg *Config) string {
	if cfg.Data.Journal != "" {
		return cfg.Data.Journal
	}
	return filepath.Join(WorkspaceDir(), "orders.db")
}
