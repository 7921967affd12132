package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/spf13/cobra"

	"github.com/Sametle06/ProFAB/internal/fasta"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the input fasta before an extraction run",
	Long: `check scans the input fasta for residues outside the protein alphabet,
verifies that every header carries an identifier at the configured field
and that no identifier repeats.`,
	RunE: runCheck,
}

func init() {
	addInputFlags(checkCmd.Flags())
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	applySharedFlags()
	path := filepath.Join(cfg.InputFolder, cfg.FastaFileName+".fasta")

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open fasta: %w", err)
	}
	defer f.Close()

	sc := seqio.NewScanner(biofasta.NewReader(f, linear.NewSeq("", nil, alphabet.Protein)))
	records := 0
	badResidues := 0
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		records++
		invalid := 0
		for _, l := range s.Seq {
			if alphabet.Protein.IndexOf(l) < 0 {
				invalid++
			}
		}
		logger.Debug("record", "id", s.ID, "length", s.Len())
		if invalid > 0 {
			badResidues += invalid
			logger.Warn("residues outside the protein alphabet", "id", s.ID, "count", invalid, "length", s.Len())
		}
	}
	if err := sc.Error(); err != nil {
		return fmt.Errorf("scan fasta: %w", err)
	}

	// identifiers come from our own parser so check reflects what extract
	// will actually see
	idx, err := fasta.ParseFile(path, cfg.PlaceProteinID)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d records, %d identifiers\n", path, records, idx.Len())
	if badResidues > 0 {
		return fmt.Errorf("%d residues outside the protein alphabet", badResidues)
	}
	fmt.Println("fasta looks good")
	return nil
}
