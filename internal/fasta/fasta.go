package fasta

// Package fasta contains minimal helpers to parse FASTA formatted protein
// data used by the pipeline. It intentionally keeps parsing simple and
// conservative.

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record represents a single FASTA record. Header carries the full header
// line without the leading '>'.
type Record struct {
	Header   string
	Sequence string
}

// ParseFasta reads FASTA records from r and returns a slice of Record.
// Lines beginning with '>' denote headers; sequence lines are stripped of
// surrounding whitespace and concatenated.
func ParseFasta(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024) // sequences are often a single very long line
	var records []Record
	var current Record
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ">") {
			if current.Header != "" {
				records = append(records, current)
			}
			current = Record{Header: line[1:], Sequence: ""}
		} else {
			current.Sequence += strings.TrimSpace(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read fasta: %w", err)
	}
	if current.Header != "" {
		records = append(records, current)
	}
	return records, nil
}

// ErrDuplicateID reports a protein identifier appearing more than once in a
// single FASTA file.
var ErrDuplicateID = errors.New("duplicate protein id")

// ExtractID splits header on '|' and returns the field at place. UniProt
// style headers put the accession at place 1: sp|O27002|DP2L_METTH. When
// place is 0 a leading '>' is stripped, so raw header lines and the first
// field of toolkit output rows resolve to the same identifier.
func ExtractID(header string, place int) (string, error) {
	fields := strings.Split(header, "|")
	if place < 0 || place >= len(fields) {
		return "", fmt.Errorf("header %q has no '|'-field at position %d", header, place)
	}
	id := fields[place]
	if place == 0 {
		id = strings.TrimPrefix(id, ">")
	}
	return id, nil
}

// Index is an ordered mapping from protein identifier to sequence. The order
// is the record order of the source file; the descriptor toolkits emit one
// row per record in that same order.
type Index struct {
	ids  []string
	seqs map[string]string
}

// Parse builds an Index from FASTA data, extracting each identifier from the
// '|'-delimited header field at place. Duplicate identifiers are rejected so
// no record can silently shadow another.
func Parse(r io.Reader, place int) (*Index, error) {
	records, err := ParseFasta(r)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("no fasta records found")
	}
	idx := &Index{seqs: make(map[string]string, len(records))}
	for _, rec := range records {
		id, err := ExtractID(rec.Header, place)
		if err != nil {
			return nil, err
		}
		if _, ok := idx.seqs[id]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		idx.ids = append(idx.ids, id)
		idx.seqs[id] = rec.Sequence
	}
	return idx, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string, place int) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fasta: %w", err)
	}
	defer f.Close()
	idx, err := Parse(f, place)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return idx, nil
}

// IDs returns the identifiers in record order. The returned slice is shared;
// callers must not modify it.
func (x *Index) IDs() []string { return x.ids }

// Sequence returns the sequence stored for id.
func (x *Index) Sequence(id string) (string, bool) {
	s, ok := x.seqs[id]
	return s, ok
}

// Len returns the number of records.
func (x *Index) Len() int { return len(x.ids) }

// WriteSingle writes one single-record FASTA in the form psiblast queries
// are generated from.
func WriteSingle(w io.Writer, id, seq string) error {
	_, err := fmt.Fprintf(w, ">sp|%s\n%s\n", id, seq)
	return err
}
