package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ardnew/lambda/pkg"
)

// baseConfig is the base name, without extension, of the configuration files.
const baseConfig = "config"

const dirMode os.FileMode = 0o700

// appName is the directory name used under the user configuration and cache
// directories: the executable name without extension or leading dots. Debug
// builds named by dlv (__debug_bin1234) use [pkg.Name].
var appName = sync.OnceValue(func() string {
	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}

	name := filepath.Base(exe)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.TrimLeft(name, ".")

	if name == "" || strings.HasPrefix(name, "__debug_bin") {
		return pkg.Name
	}

	return name
})

// userDir returns the per-application directory under the directory
// reported by base, falling back to fallback under the home directory and
// then to the working directory.
func userDir(base func() (string, error), fallback string) string {
	dir, err := base()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			dir = filepath.Join(home, fallback)
		} else {
			dir = "."
		}
	}

	return filepath.Join(dir, appName())
}

var configDir = sync.OnceValue(func() string {
	return userDir(os.UserConfigDir, ".config")
})

// cacheDir holds the line editor history and the default profile directory.
var cacheDir = sync.OnceValue(func() string {
	return userDir(os.UserCacheDir, ".cache")
})

// configPath joins elem onto the configuration directory.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}

func mkdirAllRequired() error {
	return errors.Join(
		os.MkdirAll(configDir(), dirMode),
		os.MkdirAll(cacheDir(), dirMode),
	)
}
