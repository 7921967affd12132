package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleTables() []FeatureTable {
	return []FeatureTable{
		{
			Path:       "feature_extraction_output/proteins/sample_aac_pssm.txt",
			Set:        "proteins",
			Descriptor: "aac_pssm",
			Rows:       3,
			Columns:    21,
			Preview: []string{
				"O27002\t0.1\t0.2",
				"P00001\t0.3\t0.4",
				"P00002\t0.5\t0.6",
			},
		},
	}
}

func TestCycleMode(t *testing.T) {
	m := newModel(sampleTables())
	if m.currentMode != modeTable {
		t.Fatalf("expected initial mode table, got %v", m.currentMode)
	}
	m = m.cycleMode()
	if m.currentMode != modeProteins {
		t.Fatalf("expected proteins, got %v", m.currentMode)
	}
	m = m.cycleMode()
	if m.currentMode != modeSummary {
		t.Fatalf("expected summary, got %v", m.currentMode)
	}
	m = m.cycleMode()
	if m.currentMode != modeTable {
		t.Fatalf("expected table, got %v", m.currentMode)
	}
}

func TestBuildRightLines(t *testing.T) {
	m := newModel(sampleTables())
	m.width = 120
	m.height = 40

	lines := m.buildRightLines(m.tables[0])
	if len(lines) != 3 {
		t.Fatalf("expected 3 preview lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "O27002") {
		t.Fatalf("expected identifier in first line, got %q", lines[0])
	}

	m.currentMode = modeSummary
	lines = m.buildRightLines(m.tables[0])
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "aac_pssm") || !strings.Contains(joined, "POSSUM") {
		t.Fatalf("summary should name the descriptor and family, got %q", joined)
	}
}

func TestDescriptorFromName(t *testing.T) {
	cases := map[string]string{
		"sample_aac_pssm.txt":                 "aac_pssm",
		"sample_k_separated_bigrams_pssm.txt": "k_separated_bigrams_pssm",
		"my_set_AAC.txt":                      "AAC",
		"sample_custom.txt":                   "custom",
	}
	for name, want := range cases {
		if got := descriptorFromName(name); got != want {
			t.Fatalf("%s: expected %q, got %q", name, want, got)
		}
	}
}

func TestLoadTables(t *testing.T) {
	root := t.TempDir()
	setDir := filepath.Join(root, "proteins")
	if err := os.MkdirAll(setDir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "O27002\t0.1\t0.2\nP00001\t0.3\t0.4\n"
	if err := os.WriteFile(filepath.Join(setDir, "sample_aac_pssm.txt"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tables, err := loadTables(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("expected one table, got %d", len(tables))
	}
	tbl := tables[0]
	if tbl.Descriptor != "aac_pssm" || tbl.Set != "proteins" {
		t.Fatalf("unexpected table identity: %+v", tbl)
	}
	if tbl.Rows != 2 || tbl.Columns != 3 {
		t.Fatalf("expected 2 rows and 3 columns, got %d and %d", tbl.Rows, tbl.Columns)
	}
}
