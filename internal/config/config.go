package config

import (
	"encoding/json"
	"os"
	"time"
)

// Config holds the extraction settings. Values come from config.json with
// every field optional; CLI flags override file values.
type Config struct {
	ProteinFeature string `json:"protein_feature"`
	PlaceProteinID int    `json:"place_protein_id"`
	InputFolder    string `json:"input_folder"`
	FastaFileName  string `json:"fasta_file_name"`
	PssmDir        string `json:"pssm_dir"`
	ScratchDir     string `json:"scratch_dir"`
	OutputDir      string `json:"output_dir"`
	BlastDB        string `json:"blast_db"`
	PssmEndpoint   string `json:"pssm_endpoint"`
	LogFile        string `json:"log_file"`
	LogLevel       string `json:"log_level"`

	FetchTimeoutSecs    int64 `json:"fetch_timeout_seconds"`
	ToolTimeoutSecs     int64 `json:"tool_timeout_seconds"`
	PsiblastTimeoutSecs int64 `json:"psiblast_timeout_seconds"`
}

// Default returns a Config populated with the documented defaults.
func Default() *Config {
	return &Config{
		ProteinFeature:      "aac_pssm",
		PlaceProteinID:      1,
		InputFolder:         "input_folder",
		FastaFileName:       "sample",
		PssmDir:             "pssm_files",
		ScratchDir:          "temp_folder",
		OutputDir:           "feature_extraction_output",
		BlastDB:             "ncbi-blast/uniref50_db/uniref50.blastdb",
		PssmEndpoint:        "https://slpred.kansil.org/swissprot_pssms",
		LogLevel:            "info",
		FetchTimeoutSecs:    30,
		ToolTimeoutSecs:     600,
		PsiblastTimeoutSecs: 1800,
	}
}

// LoadConfig loads a JSON config from the given path. If path is empty, looks
// for ./config.json. A missing file is not an error: defaults are returned.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = "config.json"
	}
	f, err := os.Open(path)
	if err != nil {
		// not fatal: return defaults
		return cfg, nil
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FetchTimeout bounds each remote matrix request.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSecs) * time.Second
}

// ToolTimeout bounds each descriptor toolkit invocation.
func (c *Config) ToolTimeout() time.Duration {
	return time.Duration(c.ToolTimeoutSecs) * time.Second
}

// PsiblastTimeout bounds each matrix regeneration search.
func (c *Config) PsiblastTimeout() time.Duration {
	return time.Duration(c.PsiblastTimeoutSecs) * time.Second
}
