package fasta

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
)

func TestParseFastaSimple(t *testing.T) {
	input := ">sp|P00001|ONE\nMKVA\n>sp|P00002|TWO desc\nGGTT\n"
	recs, err := ParseFasta(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Header != "sp|P00001|ONE" || recs[0].Sequence != "MKVA" {
		t.Fatalf("unexpected first record: %+v", recs[0])
	}
	if recs[1].Header != "sp|P00002|TWO desc" || recs[1].Sequence != "GGTT" {
		t.Fatalf("unexpected second record: %+v", recs[1])
	}
}

func TestParseFastaMultilineSequence(t *testing.T) {
	input := ">sp|P00001|ONE\nMKVA\nLLST\nGG\n"
	recs, err := ParseFasta(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Sequence != "MKVALLSTGG" {
		t.Fatalf("expected concatenated sequence, got %q", recs[0].Sequence)
	}
	if strings.ContainsAny(recs[0].Sequence, ">\r\n") {
		t.Fatalf("sequence contains header or terminator characters: %q", recs[0].Sequence)
	}
}

func TestParseFastaLongSequenceLine(t *testing.T) {
	long := strings.Repeat("MKVALLSTGG", 7*1024) // 70KiB on one line
	input := ">sp|P00001|ONE\n" + long + "\n>sp|P00002|TWO\nGGTT\n"
	recs, err := ParseFasta(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Sequence != long {
		t.Fatalf("expected %d residues for first record, got %d", len(long), len(recs[0].Sequence))
	}
	if recs[1].Sequence != "GGTT" {
		t.Fatalf("unexpected second record: %+v", recs[1])
	}

	idx, err := Parse(strings.NewReader(input), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx.Len() != 2 {
		t.Fatalf("expected 2 ids, got %v", idx.IDs())
	}
	if seq, ok := idx.Sequence("P00001"); !ok || len(seq) != len(long) {
		t.Fatalf("expected %d residues for P00001, got %d (ok=%v)", len(long), len(seq), ok)
	}
}

func TestParseFastaReadError(t *testing.T) {
	boom := errors.New("read failed")
	if _, err := ParseFasta(iotest.ErrReader(boom)); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
	if _, err := Parse(iotest.ErrReader(boom), 1); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped read error from Parse, got %v", err)
	}
}

func TestExtractID(t *testing.T) {
	id, err := ExtractID("sp|O27002|DP2L_METTH DNA polymerase", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "O27002" {
		t.Fatalf("expected O27002, got %q", id)
	}
}

func TestExtractIDPlaceZeroStripsMarker(t *testing.T) {
	id, err := ExtractID(">sp|O27002|DP2L_METTH", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "sp" {
		t.Fatalf("expected sp, got %q", id)
	}
	// headers already stripped of '>' resolve the same way
	id, err = ExtractID("sp|O27002|DP2L_METTH", 0)
	if err != nil || id != "sp" {
		t.Fatalf("expected sp, got %q (err %v)", id, err)
	}
}

func TestExtractIDOutOfRange(t *testing.T) {
	if _, err := ExtractID("no-pipes-here", 1); err == nil {
		t.Fatal("expected error for missing field")
	}
}

func TestParseKeepsOrderAndSequences(t *testing.T) {
	input := ">sp|P1|A\nAAA\n>sp|P2|B\nCCC\n>sp|P3|C\nDDD\n"
	idx, err := Parse(strings.NewReader(input), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"P1", "P2", "P3"}
	got := idx.IDs()
	if len(got) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected id %q at %d, got %q", want[i], i, got[i])
		}
	}
	if seq, ok := idx.Sequence("P2"); !ok || seq != "CCC" {
		t.Fatalf("expected CCC for P2, got %q (ok=%v)", seq, ok)
	}
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	input := ">sp|P1|A\nAAA\n>sp|P1|B\nCCC\n"
	_, err := Parse(strings.NewReader(input), 1)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestParseEmptyInput(t *testing.T) {
	if _, err := Parse(strings.NewReader(""), 1); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "absent.fasta"), 1)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestWriteSingle(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSingle(&buf, "O27002", "MKVA"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != ">sp|O27002\nMKVA\n" {
		t.Fatalf("unexpected single fasta: %q", buf.String())
	}
}
