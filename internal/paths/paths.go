package paths

import (
	"os"
	"path/filepath"
)

const (
	AppDirName      = "myayai"
	ConfigFileName  = "myayai-assets.json"
	CatalogFileName = "assets.db"

	// Default output trees, relative to the repository root. Slash-separated;
	// callers convert with filepath.FromSlash.
	IconsDirName      = "myayai-extension/assets/icons"
	StoreDirName      = "store-assets"
	ScreenshotsSubdir = "screenshots"

	DirPerm  = 0755
	FilePerm = 0644
)

// Resolve joins a slash-separated relative directory onto root using the
// platform separator.
func Resolve(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// DataDir returns the platform-specific data directory for myayai:
//   - Windows: %APPDATA%\myayai
//   - Unix:    ~/.config/myayai
//
// Falls back to os.TempDir()/myayai if neither is available.
func DataDir() string {
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppDirName)
	}
	return filepath.Join(home, ".config", AppDirName)
}
