//go:build ignore

// Package main generates a synthetic directory tree for exercising
// codecat by hand: text files, binary files, and nested ignore files.
// Usage: go run scripts/generate-test-corpus.go -files 500 -output testdata/corpus
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
)

var (
	numFiles  = flag.Int("files", 500, "Number of files to generate")
	outputDir = flag.String("output", "testdata/corpus", "Output directory")
	seed      = flag.Int64("seed", 42, "Random seed for reproducibility")
)

var textTemplate = `package pkg%d

// Handler%d processes incoming items.
func Handler%d(input string) string {
	return "processed: " + input
}
`

var ignoreTemplates = []string{
	"*.log\n",
	"*.tmp\n!keep.tmp\n",
	"build/\n",
	"/generated\n**/cache\n",
}

func main() {
	flag.Parse()
	rng := rand.New(rand.NewSource(*seed))

	if err := generate(rng); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("generated %d files under %s\n", *numFiles, *outputDir)
}

func generate(rng *rand.Rand) error {
	for i := 0; i < *numFiles; i++ {
		depth := rng.Intn(4)
		dir := *outputDir
		for d := 0; d < depth; d++ {
			dir = filepath.Join(dir, fmt.Sprintf("pkg%d", rng.Intn(8)))
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		// Roughly one file in ten is binary, one in twenty an ignore file.
		switch rng.Intn(20) {
		case 0:
			rules := ignoreTemplates[rng.Intn(len(ignoreTemplates))]
			if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(rules), 0o644); err != nil {
				return err
			}
		case 1, 2:
			blob := make([]byte, 256+rng.Intn(4096))
			rng.Read(blob)
			if err := os.WriteFile(filepath.Join(dir, fmt.Sprintf("data%d.bin", i)), blob, 0o644); err != nil {
				return err
			}
		default:
			body := fmt.Sprintf(textTemplate, rng.Intn(8), i, i)
			if err := os.WriteFile(filepath.Join(dir, fmt.Sprintf("file%d.go", i)), []byte(body), 0o644); err != nil {
				return err
			}
		}
	}
	return nil
}
