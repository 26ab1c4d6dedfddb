// mkicon renders the MyAyAI app icon at an arbitrary size, for one-off needs
// outside the fixed store manifest (favicons, README art).
// Usage: go run ./cmd/mkicon <size> <output.png>
package main

import (
	"fmt"
	"image/png"
	"os"
	"strconv"

	"github.com/Sparajuli7/myayai/internal/assets"
	"github.com/Sparajuli7/myayai/internal/config"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: mkicon <size> <output.png>")
		os.Exit(1)
	}
	size, err := strconv.Atoi(os.Args[1])
	if err != nil || size < 8 || size > 4096 {
		fmt.Fprintln(os.Stderr, "size must be an integer between 8 and 4096")
		os.Exit(1)
	}

	img := assets.Icon(size, config.Default())
	f, err := os.Create(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
