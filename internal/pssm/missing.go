// Package pssm manages the directory of per-protein PSSM matrices. It
// resolves which proteins lack one and acquires the gap, first from the
// remote archive of precomputed matrices and then with a local psiblast run.
package pssm

import (
	"fmt"
	"os"
	"strings"
)

// Missing returns the ids without a matrix file under dir, preserving the
// order of ids. A file covers an id when its name before the first '.'
// equals the id, whatever the extension.
func Missing(ids []string, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read matrix dir: %w", err)
	}
	present := make(map[string]bool, len(entries))
	for _, e := range entries {
		name, _, _ := strings.Cut(e.Name(), ".")
		present[name] = true
	}
	var missing []string
	for _, id := range ids {
		if !present[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
