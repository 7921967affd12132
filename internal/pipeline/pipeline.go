// Package pipeline orchestrates a feature extraction run. It parses the
// input fasta, makes sure every POSSUM matrix exists before that toolkit
// runs, and normalizes each toolkit's raw output into the final tables.
package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Sametle06/ProFAB/internal/config"
	"github.com/Sametle06/ProFAB/internal/descriptor"
	"github.com/Sametle06/ProFAB/internal/fasta"
	"github.com/Sametle06/ProFAB/internal/feature"
	"github.com/Sametle06/ProFAB/internal/pssm"
)

// Result records one descriptor table written by a run.
type Result struct {
	Descriptor string
	OutputPath string
	Proteins   int
}

// DescriptorFailure records a descriptor whose computation or normalization
// failed. The run keeps going for its siblings.
type DescriptorFailure struct {
	Descriptor string
	Err        error
}

// Report summarizes a run: what was written, which matrices could not be
// acquired and which descriptors failed.
type Report struct {
	FastaPath   string
	Proteins    int
	FailedFetch []pssm.Failure
	FailedRegen []pssm.Failure
	Results     []Result
	Failures    []DescriptorFailure
}

// Pipeline drives one extraction run. The tool fields start from defaults
// adjusted by the config and may be overridden before Run.
type Pipeline struct {
	cfg    *config.Config
	logger *log.Logger

	PsiBlast pssm.PsiBlast
	POSSUM   descriptor.POSSUM
	IFeature descriptor.IFeature
	DryRun   bool
}

// New builds a Pipeline from cfg. Tool timeouts and the blast database come
// from the config; everything else keeps the toolkit defaults.
func New(cfg *config.Config, logger *log.Logger) *Pipeline {
	pb := pssm.PsiBlastDefault
	if cfg.BlastDB != "" {
		pb.DB = cfg.BlastDB
	}
	if d := cfg.PsiblastTimeout(); d > 0 {
		pb.Timeout = d
	}
	po := descriptor.POSSUMDefault
	fe := descriptor.IFeatureDefault
	if d := cfg.ToolTimeout(); d > 0 {
		po.Timeout = d
		fe.Timeout = d
	}
	if d := cfg.FetchTimeout(); d > 0 {
		pssm.SetFetchTimeout(d)
	}
	return &Pipeline{cfg: cfg, logger: logger, PsiBlast: pb, POSSUM: po, IFeature: fe}
}

// FastaPath is the input file the run reads.
func (p *Pipeline) FastaPath() string {
	return filepath.Join(p.cfg.InputFolder, p.cfg.FastaFileName+".fasta")
}

// Run executes the configured extraction and reports the outcome. A nil
// error does not mean every descriptor succeeded; check Report.Failures.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	fam, names, err := descriptor.Resolve(p.cfg.ProteinFeature)
	if err != nil {
		return nil, err
	}
	idx, err := fasta.ParseFile(p.FastaPath(), p.cfg.PlaceProteinID)
	if err != nil {
		return nil, err
	}
	report := &Report{FastaPath: p.FastaPath(), Proteins: idx.Len()}
	p.logger.Info("parsed input fasta", "path", report.FastaPath, "proteins", idx.Len())

	scratch, err := p.makeScratch()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			p.logger.Warn("could not remove scratch dir", "dir", scratch, "err", err)
		}
	}()

	if fam == descriptor.FamilyPOSSUM {
		if err := p.ensureMatrices(ctx, idx, scratch, report); err != nil {
			return nil, err
		}
	}

	for _, name := range names {
		raw := filepath.Join(scratch, p.cfg.FastaFileName+"_"+name+".txt")
		out := feature.OutputPath(p.cfg.OutputDir, p.cfg.InputFolder, p.cfg.FastaFileName, name)
		if p.DryRun {
			p.logger.Info("dry run: would compute", "descriptor", name, "output", out)
			continue
		}
		if err := p.runOne(ctx, fam, name, raw, out, idx); err != nil {
			p.logger.Error("descriptor failed", "descriptor", name, "err", err)
			report.Failures = append(report.Failures, DescriptorFailure{Descriptor: name, Err: err})
			continue
		}
		p.logger.Info("wrote feature table", "descriptor", name, "path", out)
		report.Results = append(report.Results, Result{Descriptor: name, OutputPath: out, Proteins: idx.Len()})
	}
	return report, nil
}

func (p *Pipeline) runOne(ctx context.Context, fam descriptor.Family, name, raw, out string, idx *fasta.Index) error {
	switch fam {
	case descriptor.FamilyPOSSUM:
		if err := p.POSSUM.Run(ctx, p.FastaPath(), raw, name, p.cfg.PssmDir); err != nil {
			return err
		}
		return feature.NormalizePOSSUM(raw, out, idx.IDs())
	default:
		if err := p.IFeature.Run(ctx, p.FastaPath(), name, raw); err != nil {
			return err
		}
		return feature.NormalizeIFeature(raw, out, p.cfg.PlaceProteinID)
	}
}

// EnsureMatrices acquires any missing POSSUM matrices without computing
// descriptors. It backs the standalone matrices command.
func (p *Pipeline) EnsureMatrices(ctx context.Context) (*Report, error) {
	idx, err := fasta.ParseFile(p.FastaPath(), p.cfg.PlaceProteinID)
	if err != nil {
		return nil, err
	}
	report := &Report{FastaPath: p.FastaPath(), Proteins: idx.Len()}

	scratch, err := p.makeScratch()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			p.logger.Warn("could not remove scratch dir", "dir", scratch, "err", err)
		}
	}()

	if err := p.ensureMatrices(ctx, idx, scratch, report); err != nil {
		return nil, err
	}
	return report, nil
}

// ensureMatrices makes the matrix set complete for every parsed protein:
// first the remote archive, then local regeneration for whatever the archive
// does not carry. Per-protein failures are logged and recorded in the
// report; only environment errors abort.
func (p *Pipeline) ensureMatrices(ctx context.Context, idx *fasta.Index, scratch string, report *Report) error {
	missing, err := pssm.Missing(idx.IDs(), p.cfg.PssmDir)
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		p.logger.Debug("all matrices present", "dir", p.cfg.PssmDir)
		return nil
	}
	if p.DryRun {
		p.logger.Info("dry run: would acquire matrices", "missing", len(missing))
		return nil
	}

	p.logger.Info("fetching matrices from archive", "missing", len(missing))
	failed := pssm.Fetch(ctx, p.cfg.PssmEndpoint, missing, p.cfg.PssmDir)
	for _, f := range failed {
		p.logger.Warn("matrix fetch failed", "id", f.ID, "err", f.Err)
	}
	report.FailedFetch = failed

	missing, err = pssm.Missing(idx.IDs(), p.cfg.PssmDir)
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		return nil
	}

	p.logger.Info("regenerating matrices locally", "missing", len(missing))
	regenFailed, err := pssm.Regenerate(ctx, p.PsiBlast, idx, missing, p.cfg.PssmDir, scratch)
	if err != nil {
		return err
	}
	for _, f := range regenFailed {
		p.logger.Warn("matrix regeneration failed", "id", f.ID, "err", f.Err)
	}
	report.FailedRegen = regenFailed
	return nil
}

func (p *Pipeline) makeScratch() (string, error) {
	dir := filepath.Join(p.cfg.ScratchDir, "run-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
