package main

import (
	"fmt"
	"io"
	"os"

	bgremove "github.com/gcslaoli/bgremove-go"
)

// go run ./cmd/removewhitebg logo.png
// go run ./cmd/removewhitebg logo.png logo_transparent.png

const usage = "Usage: removewhitebg <image_path> [output_path]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run exits 1 only on a missing argument; processing failures are reported
// and still exit 0. Arguments are positional only, so paths starting with a
// dash are taken as paths.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, usage)
		return 1
	}

	input := args[0]
	output := input
	if len(args) > 1 {
		output = args[1]
	}

	removeWhiteBackground(input, output, bgremove.DefaultWhiteTolerance, stdout, stderr)
	return 0
}

// removeWhiteBackground writes the cleaned image to output (input when empty)
// and reports whether it succeeded.
func removeWhiteBackground(input, output string, tolerance int, stdout, stderr io.Writer) bool {
	if output == "" {
		output = input
	}

	stats, err := bgremove.NewWhiteRemover(tolerance).RemoveFile(input, output)
	if err != nil {
		fmt.Fprintf(stderr, "Error processing %s: %v\n", input, err)
		return false
	}

	fmt.Fprintf(stdout, "Processed: %s\n", input)
	fmt.Fprintf(stdout, "  - Output: %s\n", output)
	fmt.Fprintf(stdout, "  - Pixels removed: %s (%.1f%%)\n", bgremove.FormatCount(stats.Changed), stats.Percent())
	return true
}
