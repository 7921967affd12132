// Package feature shapes raw toolkit output into the tab separated tables
// the rest of the platform consumes, and decides where those tables live.
package feature

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultOutputRoot is where feature tables land unless configured otherwise.
const DefaultOutputRoot = "feature_extraction_output"

// OutputPath derives the final table location: a directory named after the
// input folder and a file named after the fasta file and the descriptor.
func OutputPath(root, inputFolder, fastaName, desc string) string {
	return filepath.Join(root, filepath.Base(inputFolder), fastaName+"_"+desc+".txt")
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}
