package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/Sparajuli7/myayai/internal/assets"
	"github.com/Sparajuli7/myayai/internal/catalog"
	"github.com/Sparajuli7/myayai/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	args := os.Args[1:]
	root := "."
	configPath := ""
	onlyArg := ""
	quiet := false
	noCatalog := false

	// Parse flags
	filtered := args[:0]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--root", "-r":
			if i+1 < len(args) {
				root = args[i+1]
				i++
			} else {
				fmt.Fprintf(os.Stderr, "Error: --root requires a directory path\n")
				os.Exit(1)
			}
		case "--config", "-c":
			if i+1 < len(args) {
				configPath = args[i+1]
				i++
			} else {
				fmt.Fprintf(os.Stderr, "Error: --config requires a file path\n")
				os.Exit(1)
			}
		case "--only":
			if i+1 < len(args) {
				onlyArg = args[i+1]
				i++
			} else {
				fmt.Fprintf(os.Stderr, "Error: --only requires a kind list (icons, screenshots, promo)\n")
				os.Exit(1)
			}
		case "--quiet", "-q":
			quiet = true
		case "--no-catalog":
			noCatalog = true
		default:
			filtered = append(filtered, args[i])
		}
	}

	// No command generates everything: the tool is a one-shot pipeline.
	if len(filtered) == 0 {
		generate(root, configPath, onlyArg, quiet, noCatalog)
		return
	}

	switch filtered[0] {
	case "help", "-h", "--help":
		printUsage()
	case "version", "-V", "--version":
		printVersion()
	case "list", "-l", "--list":
		listAssets(configPath)
	case "verify":
		verifyAssets(root, configPath, onlyArg)
	case "history":
		historyCmd(filtered[1:])
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", filtered[0])
		fmt.Fprintf(os.Stderr, "Run 'genassets help' for usage.\n")
		os.Exit(1)
	}
}

func generate(root, configPath, onlyArg string, quiet, noCatalog bool) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	only, err := assets.ParseKinds(onlyArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	results, err := assets.Generate(root, cfg, only)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	if !quiet {
		for _, r := range results {
			fmt.Printf("  %s  %s %s\n",
				padR(r.Rel, 45),
				padL(fmt.Sprintf("%dx%d", r.Asset.Width, r.Asset.Height), 9),
				dim(fmtNum(r.Bytes)+" bytes"))
		}
	}

	if !noCatalog {
		recordRun(start, root, onlyArg, elapsed, results)
	}

	fmt.Println("Generated icons, screenshots, and promo placeholders.")
}

// recordRun stores the run in the catalog. Best-effort: failures warn on
// stderr but never fail a generation that already wrote its files.
func recordRun(ts time.Time, root, filter string, d time.Duration, results []assets.Result) {
	store, err := catalog.Open(catalog.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog: %v\n", err)
		return
	}
	defer store.Close()

	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	rows := make([]catalog.AssetRow, len(results))
	for i, r := range results {
		rows[i] = catalog.AssetRow{
			Kind:   string(r.Asset.Kind),
			Name:   r.Asset.Name,
			Rel:    r.Rel,
			Width:  r.Asset.Width,
			Height: r.Asset.Height,
			Bytes:  r.Bytes,
			SHA256: r.SHA256,
		}
	}
	if _, err := store.RecordRun(ts, root, filter, d, rows); err != nil {
		fmt.Fprintf(os.Stderr, "catalog: %v\n", err)
	}
}

func verifyAssets(root, configPath, onlyArg string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	only, err := assets.ParseKinds(onlyArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	checks := assets.Verify(root, cfg, only)
	failed := 0
	for _, c := range checks {
		if c.OK {
			fmt.Printf("  %s  %s\n", green("ok"), c.Rel)
		} else {
			fmt.Printf("  %s %s (%s)\n", yellow("BAD"), c.Rel, c.Detail)
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d of %d assets failed verification\n", failed, len(checks))
		os.Exit(1)
	}
	fmt.Printf("All %d assets verified.\n", len(checks))
}

func listAssets(configPath string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(bold(padR("KIND", 13) + "  " + padR("NAME", 20) + "  " + padL("SIZE", 9) + "  CAPTION"))
	for _, a := range assets.Manifest(cfg) {
		caption := a.Title
		if caption == "" {
			caption = dim("-")
		}
		fmt.Println(
			padR(string(a.Kind), 13) + "  " +
				padR(a.Name, 20) + "  " +
				padL(fmt.Sprintf("%dx%d", a.Width, a.Height), 9) + "  " +
				caption)
	}
}

func printVersion() {
	fmt.Printf("genassets %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("genassets %s - Generate MyAyAI store listing placeholder assets\n", version)
	fmt.Println(`
Usage:
  genassets [options]              Generate icons, screenshots, and the promo tile
  genassets [options] <command>

Options:
  --root, -r <dir>       Repository root to write into (default: .)
  --config, -c <path>    Path to myayai-assets.json
  --only <kinds>         Comma-separated subset: icons, screenshots, promo
  --quiet, -q            Suppress per-file output
  --no-catalog           Skip recording the run in the catalog

Commands:
  list, -l, --list       List the assets a run would produce
  verify                 Check generated files exist with correct dimensions
  history [n]            Show the last n recorded runs (default: 10)
  history show <id>      Show the files written by one run
  history clean [days]   Drop runs older than <days>; no argument drops all
  history clear          Drop all recorded runs
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Config resolution:
  1. --config <path>                        (explicit)
  2. myayai-assets.json next to binary      (portable)
  3. ~/.config/myayai/myayai-assets.json    (user default)
  Without a config file the shipped MyAyAI branding is used.

Examples:
  genassets                         Generate everything into the current repo
  genassets -r ~/src/myayai         Generate into another checkout
  genassets --only icons,promo      Regenerate icons and the promo tile
  genassets verify                  Validate a previous run's output

https://github.com/Sparajuli7/myayai`)
}
