package assets

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Sparajuli7/myayai/internal/config"
)

var wantRelPaths = []string{
	"myayai-extension/assets/icons/icon16.png",
	"myayai-extension/assets/icons/icon32.png",
	"myayai-extension/assets/icons/icon48.png",
	"myayai-extension/assets/icons/icon128.png",
	"store-assets/screenshots/screenshot-1.png",
	"store-assets/screenshots/screenshot-2.png",
	"store-assets/screenshots/screenshot-3.png",
	"store-assets/screenshots/screenshot-4.png",
	"store-assets/screenshots/screenshot-5.png",
	"store-assets/promo-440x280.png",
}

func TestGenerateWritesAllAssets(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()

	results, err := Generate(root, cfg, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(results) != len(wantRelPaths) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(wantRelPaths))
	}

	for i, want := range wantRelPaths {
		r := results[i]
		if r.Rel != want {
			t.Errorf("results[%d].Rel = %q, want %q", i, r.Rel, want)
		}
		if len(r.SHA256) != 64 {
			t.Errorf("results[%d].SHA256 length = %d, want 64", i, len(r.SHA256))
		}

		info, err := os.Stat(r.Path)
		if err != nil {
			t.Errorf("missing output %s: %v", r.Rel, err)
			continue
		}
		if int(info.Size()) != r.Bytes {
			t.Errorf("%s size on disk = %d, Result.Bytes = %d", r.Rel, info.Size(), r.Bytes)
		}

		f, err := os.Open(r.Path)
		if err != nil {
			t.Fatal(err)
		}
		ic, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Errorf("decoding %s: %v", r.Rel, err)
			continue
		}
		if ic.Width != r.Asset.Width || ic.Height != r.Asset.Height {
			t.Errorf("%s = %dx%d, want %dx%d", r.Rel, ic.Width, ic.Height, r.Asset.Width, r.Asset.Height)
		}
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()

	first, err := Generate(root, cfg, nil)
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	second, err := Generate(root, cfg, nil)
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("result counts differ: %d vs %d", len(first), len(second))
	}
	// Rendering is deterministic, so reruns produce identical bytes.
	for i := range first {
		if first[i].SHA256 != second[i].SHA256 {
			t.Errorf("%s digest changed across runs", first[i].Rel)
		}
	}
}

func TestGenerateOnlyIcons(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()

	only := map[Kind]bool{KindIcons: true}
	results, err := Generate(root, cfg, only)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("len(results) = %d, want 4", len(results))
	}
	for _, r := range results {
		if r.Asset.Kind != KindIcons {
			t.Errorf("unexpected kind %q in filtered run", r.Asset.Kind)
		}
	}

	// The store tree is created but left empty.
	if _, err := os.Stat(filepath.Join(root, "store-assets", "screenshots")); err != nil {
		t.Errorf("screenshots dir not created: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "store-assets", "promo-440x280.png")); !os.IsNotExist(err) {
		t.Errorf("promo written despite icons-only filter (stat err = %v)", err)
	}
}

func TestVerifyAfterGenerate(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()

	if _, err := Generate(root, cfg, nil); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	checks := Verify(root, cfg, nil)
	if len(checks) != len(wantRelPaths) {
		t.Fatalf("len(checks) = %d, want %d", len(checks), len(wantRelPaths))
	}
	for _, c := range checks {
		if !c.OK {
			t.Errorf("check %s failed: %s", c.Rel, c.Detail)
		}
	}
}

func TestVerifyReportsMissing(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()

	if _, err := Generate(root, cfg, nil); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	victim := filepath.Join(root, "myayai-extension", "assets", "icons", "icon32.png")
	if err := os.Remove(victim); err != nil {
		t.Fatal(err)
	}

	var failed []Check
	for _, c := range Verify(root, cfg, nil) {
		if !c.OK {
			failed = append(failed, c)
		}
	}
	if len(failed) != 1 {
		t.Fatalf("failed checks = %d, want 1", len(failed))
	}
	if failed[0].Asset.Name != "icon32.png" || failed[0].Detail != "missing" {
		t.Errorf("failed check = %+v, want icon32.png missing", failed[0])
	}
}

func TestVerifyReportsWrongDimensions(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()

	if _, err := Generate(root, cfg, nil); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Overwrite an icon with a PNG of the wrong size.
	small := image.NewRGBA(image.Rect(0, 0, 10, 10))
	victim := filepath.Join(root, "myayai-extension", "assets", "icons", "icon48.png")
	f, err := os.Create(victim)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, small); err != nil {
		t.Fatal(err)
	}
	f.Close()

	for _, c := range Verify(root, cfg, nil) {
		if c.Asset.Name == "icon48.png" {
			if c.OK {
				t.Fatal("check passed for wrong-sized icon48.png")
			}
			if c.Detail != "10x10, want 48x48" {
				t.Errorf("Detail = %q, want %q", c.Detail, "10x10, want 48x48")
			}
			return
		}
	}
	t.Fatal("icon48.png not present in checks")
}

func TestVerifyReportsCorruptPNG(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()

	if _, err := Generate(root, cfg, nil); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	victim := filepath.Join(root, "store-assets", "promo-440x280.png")
	if err := os.WriteFile(victim, []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, c := range Verify(root, cfg, nil) {
		if c.Asset.Kind == KindPromo {
			if c.OK {
				t.Fatal("check passed for corrupt promo")
			}
			if c.Detail != "not a valid PNG" {
				t.Errorf("Detail = %q, want %q", c.Detail, "not a valid PNG")
			}
			return
		}
	}
	t.Fatal("promo not present in checks")
}

func TestVerifyEmptyRoot(t *testing.T) {
	checks := Verify(t.TempDir(), config.Default(), nil)
	for _, c := range checks {
		if c.OK {
			t.Errorf("check %s passed on empty root", c.Rel)
		}
		if c.Detail != "missing" {
			t.Errorf("check %s Detail = %q, want %q", c.Rel, c.Detail, "missing")
		}
	}
}

func TestGenerateHonorsDirOverrides(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.IconsDir = "ext/icons"
	cfg.StoreDir = "listing"

	results, err := Generate(root, cfg, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if results[0].Rel != "ext/icons/icon16.png" {
		t.Errorf("results[0].Rel = %q, want %q", results[0].Rel, "ext/icons/icon16.png")
	}
	if _, err := os.Stat(filepath.Join(root, "listing", "screenshots", "screenshot-1.png")); err != nil {
		t.Errorf("screenshot not under overridden store dir: %v", err)
	}
}
