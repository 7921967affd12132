package feature

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Sametle06/ProFAB/internal/fasta"
)

// ErrMisaligned is returned when a raw POSSUM table has fewer rows than the
// run has proteins, so rows cannot be matched back to identifiers.
var ErrMisaligned = errors.New("misaligned toolkit output")

// NormalizePOSSUM rewrites the raw POSSUM table at rawPath into outPath:
// each row gains the protein identifier it belongs to and commas become
// tabs. Rows pair with ids in order, which is the input fasta order. The raw
// file is removed once the table is written; on error it is left behind for
// inspection.
func NormalizePOSSUM(rawPath, outPath string, ids []string) error {
	lines, err := readLines(rawPath)
	if err != nil {
		return err
	}
	if len(lines) < len(ids) {
		return fmt.Errorf("%w: %s has %d rows for %d proteins", ErrMisaligned, rawPath, len(lines), len(ids))
	}
	rows := make([]string, len(ids))
	for i, id := range ids {
		rows[i] = id + "\t" + strings.ReplaceAll(lines[i], ",", "\t")
	}
	if err := writeRows(outPath, rows); err != nil {
		return err
	}
	return os.Remove(rawPath)
}

// NormalizeIFeature rewrites the raw iFeature table at rawPath into outPath:
// comment lines are dropped and fasta headers in the first column are
// reduced to the identifier field at position place. First columns that are
// already bare identifiers pass through unchanged, so re-normalizing a
// normalized table is a no-op. The raw file is removed once the table is
// written.
func NormalizeIFeature(rawPath, outPath string, place int) error {
	lines, err := readLines(rawPath)
	if err != nil {
		return err
	}
	var rows []string
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if strings.Contains(fields[0], "|") {
			id, err := fasta.ExtractID(fields[0], place)
			if err != nil {
				return fmt.Errorf("normalize %s: %w", rawPath, err)
			}
			fields[0] = id
		}
		rows = append(rows, strings.Join(fields, "\t"))
	}
	if err := writeRows(outPath, rows); err != nil {
		return err
	}
	return os.Remove(rawPath)
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open raw output: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024) // descriptor rows can be very wide
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read raw output: %w", err)
	}
	return lines, nil
}

func writeRows(path string, rows []string) error {
	if err := EnsureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create feature table: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, row := range rows {
		fmt.Fprintln(w, row)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write feature table: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write feature table: %w", err)
	}
	return nil
}
