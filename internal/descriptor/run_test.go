package descriptor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestPOSSUMArgs(t *testing.T) {
	p := POSSUM{Python: "python", Script: "toolkit/src/possum.py"}
	got := p.args("in.fasta", "raw.txt", "aac_pssm", "pssm_files")
	want := []string{"toolkit/src/possum.py", "-i", "in.fasta", "-o", "raw.txt", "-t", "aac_pssm", "-p", "pssm_files"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestIFeatureArgs(t *testing.T) {
	f := IFeature{Python: "python", Script: "iFeature/iFeature.py"}
	got := f.args("in.fasta", "AAC", "raw.txt")
	want := []string{"iFeature/iFeature.py", "--file", "in.fasta", "--type", "AAC", "--out", "raw.txt"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRunToolReportsExitCode(t *testing.T) {
	err := runTool(context.Background(), time.Minute, "possum", "eedp", "sh", []string{"-c", "echo boom >&2; exit 7"})
	var te *ToolError
	if !errors.As(err, &te) {
		t.Fatalf("expected ToolError, got %v", err)
	}
	if te.ExitCode != 7 {
		t.Fatalf("expected exit code 7, got %d", te.ExitCode)
	}
	if te.Descriptor != "eedp" || te.Tool != "possum" {
		t.Fatalf("unexpected tool identity: %+v", te)
	}
	if !strings.Contains(te.Output, "boom") {
		t.Fatalf("expected captured output, got %q", te.Output)
	}
}

func TestRunToolTimeout(t *testing.T) {
	err := runTool(context.Background(), 50*time.Millisecond, "possum", "eedp", "sh", []string{"-c", "sleep 2"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestRunToolMissingBinary(t *testing.T) {
	err := runTool(context.Background(), time.Minute, "possum", "eedp", "/nonexistent/python", nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	var te *ToolError
	if errors.As(err, &te) {
		t.Fatalf("a start failure is not a tool exit: %v", err)
	}
}
