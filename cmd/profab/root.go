package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Sametle06/ProFAB/internal/config"
)

// version is the program version. It can be overridden at build time with
// -ldflags "-X main.version=...".
var version = "1.0.2"

var (
	configFlag  string
	verboseFlag bool
	logFileFlag string

	cfg           *config.Config
	logger        *log.Logger
	logFileHandle *os.File
)

// terminalWriter wraps an io.Writer and exposes an Fd method so libraries
// that inspect the file descriptor for TTY detection can work with wrapped
// writers.
type terminalWriter struct {
	w  io.Writer
	fd uintptr
}

func (tw *terminalWriter) Write(p []byte) (int, error) { return tw.w.Write(p) }

// Fd exposes the underlying file descriptor (e.g., os.Stderr.Fd()).
func (tw *terminalWriter) Fd() uintptr { return tw.fd }

var rootCmd = &cobra.Command{
	Use:   "profab",
	Short: "Protein feature extraction from fasta files",
	Long: `profab computes protein feature tables from a fasta file using the
POSSUM and iFeature toolkits. POSSUM descriptors need a PSSM matrix per
protein; missing matrices are fetched from a remote archive and the
remainder regenerated locally with psiblast.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config.json (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose (debug) logging")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "append logs to this file as well as stderr")
}

// setup loads the config and builds the logger every subcommand uses.
func setup() error {
	var err error
	cfg, err = config.LoadConfig(configFlag)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile := logFileFlag
	if logFile == "" {
		logFile = cfg.LogFile
	}
	var out io.Writer = os.Stderr
	if logFile != "" {
		if f, ferr := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); ferr == nil {
			// write to both stderr and file so running interactively still shows logs
			out = io.MultiWriter(os.Stderr, f)
			logFileHandle = f
		}
	}
	// If stderr is a terminal-like device, force colors for libraries that honor FORCE_COLOR.
	if fi, err := os.Stderr.Stat(); err == nil {
		if fi.Mode()&os.ModeCharDevice != 0 {
			_ = os.Setenv("FORCE_COLOR", "1")
		}
	}
	logger = log.NewWithOptions(&terminalWriter{w: out, fd: os.Stderr.Fd()}, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})

	configureLogger(logger, verboseFlag, cfg.LogLevel, logFile, logFileHandle != nil)
	return nil
}

// configureLogger applies the log level (flags override config) and warns
// when a requested log file could not be opened.
func configureLogger(l *log.Logger, verbose bool, level, logFile string, fileOpen bool) {
	if verbose {
		l.SetLevel(log.DebugLevel)
	} else {
		switch strings.ToLower(level) {
		case "debug":
			l.SetLevel(log.DebugLevel)
		case "info", "":
			l.SetLevel(log.InfoLevel)
		case "warn", "warning":
			l.SetLevel(log.WarnLevel)
		case "error":
			l.SetLevel(log.ErrorLevel)
		default:
			l.SetLevel(log.InfoLevel)
			l.Warn("unknown log_level in config.json, defaulting to info", "provided", level)
		}
	}
	if logFile != "" && !fileOpen {
		l.Warn("log file could not be opened; logging to stderr only", "path", logFile)
	}
}

func closeLogFile() {
	if logFileHandle != nil {
		_ = logFileHandle.Close()
	}
}

// addInputFlags registers the flags shared by the commands that read the
// input fasta. Flag values override config.json when provided.
func addInputFlags(f *pflag.FlagSet) {
	f.StringVar(&sharedOpts.inputFolder, "input-folder", "", "folder holding the input fasta")
	f.StringVar(&sharedOpts.fastaName, "fasta-name", "", "fasta file name without the .fasta extension")
	f.IntVar(&sharedOpts.idField, "id-field", -1, "pipe separated header field holding the protein id")
}

// addMatrixFlags registers the flags shared by the commands that acquire
// PSSM matrices.
func addMatrixFlags(f *pflag.FlagSet) {
	f.StringVar(&sharedOpts.pssmDir, "pssm-dir", "", "directory of per-protein PSSM matrices")
	f.StringVar(&sharedOpts.scratchDir, "scratch-dir", "", "directory for intermediate files")
	f.StringVar(&sharedOpts.blastDB, "blast-db", "", "blast database used to regenerate matrices")
	f.StringVar(&sharedOpts.endpoint, "endpoint", "", "archive endpoint for precomputed matrices")
	f.BoolVar(&sharedOpts.dryRun, "dry-run", false, "report what would run without invoking tools")
}

var sharedOpts struct {
	inputFolder string
	fastaName   string
	idField     int
	pssmDir     string
	scratchDir  string
	blastDB     string
	endpoint    string
	dryRun      bool
}

// applySharedFlags merges provided flag values into the loaded config.
func applySharedFlags() {
	if sharedOpts.inputFolder != "" {
		cfg.InputFolder = sharedOpts.inputFolder
	}
	if sharedOpts.fastaName != "" {
		cfg.FastaFileName = sharedOpts.fastaName
	}
	if sharedOpts.idField >= 0 {
		cfg.PlaceProteinID = sharedOpts.idField
	}
	if sharedOpts.pssmDir != "" {
		cfg.PssmDir = sharedOpts.pssmDir
	}
	if sharedOpts.scratchDir != "" {
		cfg.ScratchDir = sharedOpts.scratchDir
	}
	if sharedOpts.blastDB != "" {
		cfg.BlastDB = sharedOpts.blastDB
	}
	if sharedOpts.endpoint != "" {
		cfg.PssmEndpoint = sharedOpts.endpoint
	}
}
