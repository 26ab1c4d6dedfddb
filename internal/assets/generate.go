package assets

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image/png"
	"os"
	"path"

	"github.com/Sparajuli7/myayai/internal/config"
	"github.com/Sparajuli7/myayai/internal/paths"
)

// Result describes one written asset file.
type Result struct {
	Asset  Asset
	Path   string // root-joined, platform separators
	Rel    string // slash-separated path relative to the root
	Bytes  int
	SHA256 string
}

// Check is the verification outcome for one expected asset.
type Check struct {
	Asset  Asset
	Rel    string
	OK     bool
	Detail string // empty when OK
}

// relDir returns the slash-separated output directory for kind k.
func relDir(cfg config.Config, k Kind) string {
	switch k {
	case KindIcons:
		return cfg.IconsDir
	case KindScreenshots:
		return path.Join(cfg.StoreDir, paths.ScreenshotsSubdir)
	default:
		return cfg.StoreDir
	}
}

// OutputDirs returns the directories Generate writes into.
func OutputDirs(root string, cfg config.Config) []string {
	return []string{
		paths.Resolve(root, cfg.IconsDir),
		paths.Resolve(root, path.Join(cfg.StoreDir, paths.ScreenshotsSubdir)),
	}
}

// Generate renders and writes every manifest asset under root. A non-empty
// only filter restricts rendering to the selected kinds; the output trees
// are created regardless. Files are written atomically.
func Generate(root string, cfg config.Config, only map[Kind]bool) ([]Result, error) {
	for _, dir := range OutputDirs(root, cfg) {
		if err := os.MkdirAll(dir, paths.DirPerm); err != nil {
			return nil, fmt.Errorf("creating output dirs: %w", err)
		}
	}

	var results []Result
	for _, a := range Manifest(cfg) {
		if only != nil && !only[a.Kind] {
			continue
		}
		rel := path.Join(relDir(cfg, a.Kind), a.Name)
		dst := paths.Resolve(root, rel)

		var buf bytes.Buffer
		if err := png.Encode(&buf, Render(a, cfg)); err != nil {
			return results, fmt.Errorf("encoding %s: %w", rel, err)
		}
		if err := paths.AtomicWrite(dst, buf.Bytes()); err != nil {
			return results, fmt.Errorf("writing %s: %w", rel, err)
		}
		sum := sha256.Sum256(buf.Bytes())
		results = append(results, Result{
			Asset:  a,
			Path:   dst,
			Rel:    rel,
			Bytes:  buf.Len(),
			SHA256: hex.EncodeToString(sum[:]),
		})
	}
	return results, nil
}

// Verify confirms every expected output exists under root with the right
// pixel dimensions. Problems are reported per asset, not as an error.
func Verify(root string, cfg config.Config, only map[Kind]bool) []Check {
	var checks []Check
	for _, a := range Manifest(cfg) {
		if only != nil && !only[a.Kind] {
			continue
		}
		rel := path.Join(relDir(cfg, a.Kind), a.Name)
		c := Check{Asset: a, Rel: rel}

		f, err := os.Open(paths.Resolve(root, rel))
		if err != nil {
			if os.IsNotExist(err) {
				c.Detail = "missing"
			} else {
				c.Detail = err.Error()
			}
			checks = append(checks, c)
			continue
		}
		ic, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			c.Detail = "not a valid PNG"
			checks = append(checks, c)
			continue
		}
		if ic.Width != a.Width || ic.Height != a.Height {
			c.Detail = fmt.Sprintf("%dx%d, want %dx%d", ic.Width, ic.Height, a.Width, a.Height)
			checks = append(checks, c)
			continue
		}
		c.OK = true
		checks = append(checks, c)
	}
	return checks
}
