package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/Sparajuli7/myayai/internal/catalog"
)

func historyCmd(args []string) {
	if len(args) > 0 {
		switch args[0] {
		case "show":
			historyShow(args[1:])
			return
		case "clear":
			historyClear()
			return
		case "clean":
			historyClean(args[1:])
			return
		}
	}

	count := 10
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "Error: count must be a positive integer\n")
			os.Exit(1)
		}
		count = n
	}

	store := openCatalog()
	defer store.Close()

	runs, err := store.Runs(count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	renderRunTable(os.Stdout, runs)
}

func historyShow(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Error: usage: genassets history show <run-id>\n")
		os.Exit(1)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(os.Stderr, "Error: run id must be a positive integer\n")
		os.Exit(1)
	}

	store := openCatalog()
	defer store.Close()

	rows, err := store.RunAssets(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(rows) == 0 {
		fmt.Printf("No assets recorded for run %d.\n", id)
		return
	}

	renderAssetTable(os.Stdout, rows)
}

func historyClear() {
	store := openCatalog()
	defer store.Close()

	if err := store.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("History cleared.")
}

func historyClean(args []string) {
	if len(args) == 0 {
		// No days argument — clear everything.
		historyClear()
		return
	}

	days, err := strconv.Atoi(args[0])
	if err != nil || days <= 0 {
		fmt.Fprintf(os.Stderr, "Error: days must be a positive integer\n")
		os.Exit(1)
	}

	store := openCatalog()
	defer store.Close()

	removed, err := store.Clean(days)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Removed %d runs older than %d days.\n", removed, days)
}

func openCatalog() *catalog.Store {
	store, err := catalog.Open(catalog.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return store
}

// --- Table layout constants ---

const (
	colID     = 4
	colTime   = 16 // "2026-08-21 14:02"
	colRoot   = 30
	colFilter = 12
	colCount  = 6
	colDur    = 8

	colKind = 13
	colName = 20
	colDims = 9
	colSize = 12
)

func renderRunTable(w io.Writer, runs []catalog.Run) {
	fmt.Fprintln(w, bold(padR("ID", colID)+"  "+padR("TIME", colTime)+"  "+padR("ROOT", colRoot)+"  "+
		padR("FILTER", colFilter)+"  "+padL("ASSETS", colCount)+"  "+padL("TOOK", colDur)))
	for _, r := range runs {
		filter := r.Filter
		if filter == "" {
			filter = "all"
		}
		fmt.Fprintln(w,
			padR(strconv.FormatInt(r.ID, 10), colID)+"  "+
				padR(r.Time.Format("2006-01-02 15:04"), colTime)+"  "+
				padR(truncate(r.Root, colRoot), colRoot)+"  "+
				padR(filter, colFilter)+"  "+
				padL(fmtNum(r.Assets), colCount)+"  "+
				padL(fmtDuration(r.Duration), colDur))
	}
}

func renderAssetTable(w io.Writer, rows []catalog.AssetRow) {
	fmt.Fprintln(w, bold(padR("KIND", colKind)+"  "+padR("NAME", colName)+"  "+
		padL("SIZE", colDims)+"  "+padL("BYTES", colSize)+"  SHA256"))
	for _, a := range rows {
		fmt.Fprintln(w,
			padR(a.Kind, colKind)+"  "+
				padR(a.Name, colName)+"  "+
				padL(fmt.Sprintf("%dx%d", a.Width, a.Height), colDims)+"  "+
				padL(fmtNum(a.Bytes), colSize)+"  "+
				dim(shortDigest(a.SHA256)))
	}
}

// --- ANSI color helpers (disabled when NO_COLOR is set or stdout is piped) ---

var noColor = os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd()))

func ansi(code, s string) string {
	if noColor {
		return s
	}
	return code + s + "\033[0m"
}

func bold(s string) string   { return ansi("\033[1m", s) }
func dim(s string) string    { return ansi("\033[2m", s) }
func green(s string) string  { return ansi("\033[32m", s) }
func yellow(s string) string { return ansi("\033[33m", s) }

// fmtNum formats an integer with dot as thousands separator (e.g. 1234 → "1.234").
func fmtNum(n int) string {
	neg := ""
	if n < 0 {
		neg = "-"
		n = -n
	}
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return neg + s
	}
	var buf strings.Builder
	r := len(s) % 3
	if r > 0 {
		buf.WriteString(s[:r])
	}
	for i := r; i < len(s); i += 3 {
		if buf.Len() > 0 {
			buf.WriteByte('.')
		}
		buf.WriteString(s[i : i+3])
	}
	return neg + buf.String()
}

// fmtDuration returns a compact duration string (e.g. "245ms", "1.2s").
func fmtDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(100 * time.Millisecond).String()
}

// padL pads s to width with spaces on the left.
func padL(s string, width int) string {
	if pad := width - len(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}

// padR pads s to width with spaces on the right.
func padR(s string, width int) string {
	if pad := width - len(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// truncate shortens s to width with a trailing ellipsis.
func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}

func shortDigest(s string) string {
	if len(s) > 12 {
		return s[:12]
	}
	return s
}
