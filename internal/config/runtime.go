package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const defaultRuntimeDir = ".auralis"

// GetRuntimePath resolves AURALIS_RUNTIME_PATH, relative paths being taken
// from the user's home directory.
func GetRuntimePath() string {
	path := os.Getenv("AURALIS_RUNTIME_PATH")
	if path == "" {
		path = defaultRuntimeDir
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}

func GetEnvPath(runtimePath string) string {
	return filepath.Join(runtimePath, ".env")
}

func GetLogPath(runtimePath string) string {
	return filepath.Join(runtimePath, "auralis.log")
}

// LoadEnvFile loads <runtime>/.env without overriding variables already set
// in the process environment. A missing file is not an error.
func LoadEnvFile(runtimePath string) (bool, error) {
	envFile := GetEnvPath(runtimePath)
	if _, err := os.Stat(envFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	if err := godotenv.Load(envFile); err != nil {
		return false, err
	}
	return true, nil
}

func IsDebug() bool {
	return os.Getenv("AURALIS_DEBUG") == "1"
}
