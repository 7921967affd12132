package descriptor

import (
	"context"
	"time"
)

// IFeature invokes the iFeature toolkit for one sequence-based descriptor
// over a fasta file.
type IFeature struct {
	Python  string
	Script  string
	Timeout time.Duration
}

// IFeatureDefault assumes the toolkit checkout next to the working directory.
var IFeatureDefault = IFeature{
	Python:  "python",
	Script:  "iFeature/iFeature.py",
	Timeout: 10 * time.Minute,
}

func (f IFeature) args(fastaPath, desc, outPath string) []string {
	return []string{f.Script, "--file", fastaPath, "--type", desc, "--out", outPath}
}

// Run computes desc for every protein in fastaPath and writes the raw
// toolkit output to outPath.
func (f IFeature) Run(ctx context.Context, fastaPath, desc, outPath string) error {
	return runTool(ctx, f.Timeout, "ifeature", desc, f.Python, f.args(fastaPath, desc, outPath))
}
