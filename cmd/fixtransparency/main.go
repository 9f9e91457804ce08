package main

import (
	"fmt"
	"io"
	"os"

	bgremove "github.com/gcslaoli/bgremove-go"
)

// Run from the directory holding assets/.
const (
	inputPath  = "assets/mepriga_logo.png"
	outputPath = "assets/mepriga_logo_fixed.png"
)

func main() {
	if err := fixTransparency(inputPath, outputPath, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "fix transparency: %v\n", err)
		os.Exit(1)
	}
}

// fixTransparency replaces the checkered gray backdrop of input with real
// transparency and writes the result to output.
func fixTransparency(input, output string, stdout io.Writer) error {
	stats, err := bgremove.NewCheckeredRemover().RemoveFile(input, output)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Saved: %s\n", output)
	fmt.Fprintf(stdout, "Made %s pixels transparent (%.1f%% of image)\n", bgremove.FormatCount(stats.Changed), stats.Percent())
	return nil
}
