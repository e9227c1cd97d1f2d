package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user and system configuration directories.
const AppName = "kafka-shell"

var configNames = []string{"config.yml", "config.yaml"}

// FindConfigPath returns the first existing config file among the working
// directory and the standard per-user and system locations, or "" when
// there is none.
func FindConfigPath() string {
	for _, p := range configCandidates() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

func configCandidates() []string {
	var dirs []string
	dirs = append(dirs, ".")

	home, _ := os.UserHomeDir()
	if runtime.GOOS == "windows" {
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			dirs = append(dirs, filepath.Join(appdata, AppName))
		}
		if pd := os.Getenv("PROGRAMDATA"); pd != "" {
			dirs = append(dirs, filepath.Join(pd, AppName))
		}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, AppName))
		}
	} else {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			dirs = append(dirs, filepath.Join(xdg, AppName))
		}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".config", AppName))
			dirs = append(dirs, filepath.Join(home, "."+AppName))
		}
		dirs = append(dirs, filepath.Join("/etc", AppName))
	}

	candidates := make([]string, 0, len(dirs)*len(configNames))
	for _, d := range dirs {
		for _, n := range configNames {
			candidates = append(candidates, filepath.Join(d, n))
		}
	}
	return candidates
}
