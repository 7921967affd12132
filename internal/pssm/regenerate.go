package pssm

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sametle06/ProFAB/internal/fasta"
)

// Regenerate writes a single-record FASTA per id under scratch and runs
// psiblast on each to produce {matrixDir}/{id}.pssm. Per-id failures are
// collected rather than fatal; the single-fasta directory is removed
// best-effort once every id has been attempted.
//
// This function does not log; callers report the failures it returns.
func Regenerate(ctx context.Context, pb PsiBlast, idx *fasta.Index, ids []string, matrixDir, scratch string) ([]Failure, error) {
	singles := filepath.Join(scratch, "single_fastas")
	if err := os.MkdirAll(singles, 0o755); err != nil {
		return nil, fmt.Errorf("create single fasta dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(singles) }()

	var failed []Failure
	for _, id := range ids {
		seq, ok := idx.Sequence(id)
		if !ok {
			failed = append(failed, Failure{ID: id, Err: fmt.Errorf("no sequence for %s", id)})
			continue
		}
		query := filepath.Join(singles, id+".fasta")
		if err := writeSingleFile(query, id, seq); err != nil {
			failed = append(failed, Failure{ID: id, Err: err})
			continue
		}
		pssmOut := filepath.Join(matrixDir, id+".pssm")
		alnOut := filepath.Join(scratch, "outfile")
		if err := pb.Run(ctx, query, pssmOut, alnOut); err != nil {
			failed = append(failed, Failure{ID: id, Err: err})
		}
	}
	return failed, nil
}

func writeSingleFile(path, id, seq string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fasta.WriteSingle(f, id, seq); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
