package descriptor

import (
	"context"
	"time"
)

// POSSUM invokes the POSSUM standalone toolkit for one descriptor over a
// fasta file, using the per-protein matrices under a PSSM directory.
type POSSUM struct {
	Python  string
	Script  string
	Timeout time.Duration
}

// POSSUMDefault assumes the toolkit checkout next to the working directory.
var POSSUMDefault = POSSUM{
	Python:  "python",
	Script:  "POSSUM_Standalone_Toolkit/src/possum.py",
	Timeout: 10 * time.Minute,
}

func (p POSSUM) args(fastaPath, outPath, desc, matrixDir string) []string {
	return []string{p.Script, "-i", fastaPath, "-o", outPath, "-t", desc, "-p", matrixDir}
}

// Run computes desc for every protein in fastaPath and writes the raw
// toolkit output to outPath.
func (p POSSUM) Run(ctx context.Context, fastaPath, outPath, desc, matrixDir string) error {
	return runTool(ctx, p.Timeout, "possum", desc, p.Python, p.args(fastaPath, outPath, desc, matrixDir))
}
