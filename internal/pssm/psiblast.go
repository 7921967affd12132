package pssm

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// PsiBlast holds the invocation settings for the local search used to
// regenerate matrices the remote archive does not carry.
type PsiBlast struct {
	Exec           string
	DB             string
	EValue         string
	Iterations     int
	CompBasedStats string
	Timeout        time.Duration
}

// PsiBlastDefault mirrors the parameter set the Swiss-Prot archive matrices
// were generated with, against a UniRef50 database.
var PsiBlastDefault = PsiBlast{
	Exec:           DefaultPsiBlastExec(),
	DB:             "ncbi-blast/uniref50_db/uniref50.blastdb",
	EValue:         "0.001",
	Iterations:     3,
	CompBasedStats: "1",
	Timeout:        30 * time.Minute,
}

// DefaultPsiBlastExec picks the platform binary; the toolkit ships a
// separate build for Mac.
func DefaultPsiBlastExec() string {
	if runtime.GOOS == "darwin" {
		return "psiblastMAC"
	}
	return "psiblast"
}

func (pb PsiBlast) args(query, pssmOut, alnOut string) []string {
	return []string{
		"-db", pb.DB,
		"-evalue", pb.EValue,
		"-query", query,
		"-out_ascii_pssm", pssmOut,
		"-out", alnOut,
		"-num_iterations", strconv.Itoa(pb.Iterations),
		"-comp_based_stats", pb.CompBasedStats,
	}
}

// Run searches query against the configured database, writing the ASCII
// PSSM to pssmOut and the alignment report to alnOut.
func (pb PsiBlast) Run(ctx context.Context, query, pssmOut, alnOut string) error {
	if pb.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, pb.Timeout)
		defer cancel()
	}
	out, err := exec.CommandContext(ctx, pb.Exec, pb.args(query, pssmOut, alnOut)...).CombinedOutput()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("psiblast %s: %w", query, ctxErr)
		}
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return fmt.Errorf("psiblast exited with code %d: %s", ee.ExitCode(), tail(out))
		}
		return fmt.Errorf("psiblast: %w", err)
	}
	return nil
}

// tail keeps error messages short when a tool dumps a lot of output.
func tail(b []byte) string {
	const max = 400
	s := strings.TrimSpace(string(b))
	if len(s) > max {
		s = "..." + s[len(s)-max:]
	}
	return s
}
