package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sametle06/ProFAB/internal/descriptor"
	"github.com/Sametle06/ProFAB/internal/pipeline"
)

var extractOpts struct {
	feature   string
	outputDir string
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Compute feature tables for every protein in the input fasta",
	Long: `extract parses the input fasta, makes sure every POSSUM matrix exists
when a PSSM based descriptor is requested, runs the toolkit for each
descriptor and writes one tab separated table per descriptor under the
output directory.`,
	RunE: runExtract,
}

func init() {
	f := extractCmd.Flags()
	f.StringVarP(&extractOpts.feature, "feature", "t", "", "descriptor to compute, or all_POSSUM / all_iFeature")
	f.StringVar(&extractOpts.outputDir, "output-dir", "", "root directory for feature tables")
	addInputFlags(f)
	addMatrixFlags(f)
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	applySharedFlags()
	if extractOpts.feature != "" {
		cfg.ProteinFeature = extractOpts.feature
	}
	if extractOpts.outputDir != "" {
		cfg.OutputDir = extractOpts.outputDir
	}
	logger.Info("starting extraction", "feature", cfg.ProteinFeature, "input_folder", cfg.InputFolder, "fasta", cfg.FastaFileName)

	p := pipeline.New(cfg, logger)
	p.DryRun = sharedOpts.dryRun
	report, err := p.Run(cmd.Context())
	if err != nil {
		if errors.Is(err, descriptor.ErrUnknown) {
			return fmt.Errorf("%w (run 'profab descriptors' for the vocabulary)", err)
		}
		return err
	}

	printReport(report)
	if len(report.Failures) > 0 {
		return fmt.Errorf("%d of %d descriptors failed", len(report.Failures), len(report.Failures)+len(report.Results))
	}
	return nil
}

func printReport(r *pipeline.Report) {
	fmt.Printf("proteins: %d\n", r.Proteins)
	for _, res := range r.Results {
		fmt.Printf("wrote %s\n", res.OutputPath)
	}
	for _, f := range r.Failures {
		fmt.Printf("failed %s: %v\n", f.Descriptor, f.Err)
	}
	if len(r.FailedFetch) > 0 {
		fmt.Printf("matrices not in the archive: %d\n", len(r.FailedFetch))
	}
	if len(r.FailedRegen) > 0 {
		fmt.Printf("matrices not regenerated: %d\n", len(r.FailedRegen))
	}
}
