package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/Sparajuli7/myayai/internal/paths"
)

// Defaults for the shipped MyAyAI store listing. Tagline and footer carry a
// U+2011 non-breaking hyphen, matching the published listing copy.
const (
	DefaultProduct  = "MyAyAI"
	DefaultSubtitle = "AI Prompt Optimizer"
	DefaultMonogram = "A"
	DefaultTagline  = "One‑click prompt optimization"
	DefaultFooter   = "Placeholder screenshot (auto‑generated)"
	DefaultAccent   = "#0091FF"
)

// Config holds brand overrides for the generated assets. Every field is
// optional; values absent from the file keep the shipped defaults.
type Config struct {
	Product   string   `json:"product,omitempty"`    // promo title
	Subtitle  string   `json:"subtitle,omitempty"`   // promo subtitle
	Monogram  string   `json:"monogram,omitempty"`   // letter drawn on the icon
	Tagline   string   `json:"tagline,omitempty"`    // promo pill text
	Footer    string   `json:"footer,omitempty"`     // screenshot footer line
	Accent    string   `json:"accent,omitempty"`     // #RRGGBB fill for circle and pill
	FontPaths []string `json:"font_paths,omitempty"` // tried before the system fonts
	IconsDir  string   `json:"icons_dir,omitempty"`  // icon tree, relative to the root
	StoreDir  string   `json:"store_dir,omitempty"`  // store tree, relative to the root
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	var c Config
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	c.Product = DefaultProduct
	c.Subtitle = DefaultSubtitle
	c.Monogram = DefaultMonogram
	c.Tagline = DefaultTagline
	c.Footer = DefaultFooter
	c.Accent = DefaultAccent
	c.IconsDir = paths.IconsDirName
	c.StoreDir = paths.StoreDirName
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	c.applyDefaults()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Validate checks fields that would otherwise fail silently at render time.
func (c Config) Validate() error {
	if _, _, _, err := parseHex(c.Accent); err != nil {
		return fmt.Errorf("accent: %w", err)
	}
	if c.Monogram == "" {
		return fmt.Errorf("monogram must not be empty")
	}
	if c.IconsDir == "" || c.StoreDir == "" {
		return fmt.Errorf("icons_dir and store_dir must not be empty")
	}
	return nil
}

// AccentRGB returns the accent color as 8-bit channels. Malformed values
// fall back to the default accent.
func (c Config) AccentRGB() (r, g, b int) {
	r, g, b, err := parseHex(c.Accent)
	if err != nil {
		r, g, b, _ = parseHex(DefaultAccent)
	}
	return r, g, b
}

func parseHex(s string) (r, g, b int, err error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return 0, 0, 0, fmt.Errorf("want #RRGGBB, got %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("want #RRGGBB, got %q", s)
	}
	return int(v >> 16), int(v >> 8 & 0xFF), int(v & 0xFF), nil
}

// Load reads and parses a config file. It tries, in order:
//  1. explicitPath (if non-empty)
//  2. myayai-assets.json next to the running binary
//  3. ~/.config/myayai/myayai-assets.json
//
// When none exists the shipped defaults are returned: the generator needs no
// configuration to produce the standard listing assets.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}

	// Next to binary
	exe, err := os.Executable()
	if err == nil {
		p := filepath.Join(filepath.Dir(exe), paths.ConfigFileName)
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	// User config directory
	home, err := os.UserHomeDir()
	if err == nil {
		var p string
		if runtime.GOOS == "windows" {
			p = filepath.Join(home, "AppData", "Roaming", paths.AppDirName, paths.ConfigFileName)
		} else {
			p = filepath.Join(home, ".config", paths.AppDirName, paths.ConfigFileName)
		}
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	return Default(), nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
