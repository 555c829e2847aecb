package main

import (
	"flag"
	"fmt"
	"os"

	"folio.dev/internal/scaffold"
)

func main() {
	force := flag.Bool("force", false, "overwrite existing files")
	flag.Usage = func() {
		fmt.Println("Usage: generate [-force] <output-dir>")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	outputDir := flag.Arg(0)

	fmt.Printf("Generating starter site in %s...\n", outputDir)

	written, err := scaffold.Write(outputDir, *force)
	for _, name := range written {
		fmt.Printf("  Created %s\n", name)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
		os.Exit(1)
	}

	if len(written) == 0 {
		fmt.Println("Nothing to do, all files exist (use -force to overwrite).")
		return
	}
	fmt.Println("Done!")
}
