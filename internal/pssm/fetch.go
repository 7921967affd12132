package pssm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultEndpoint serves precomputed PSSMs for Swiss-Prot accessions.
const DefaultEndpoint = "https://slpred.kansil.org/swissprot_pssms"

// httpClient performs requests; tests may replace it with a mock transport.
var httpClient = &http.Client{Timeout: 30 * time.Second}

// SetFetchTimeout adjusts the per-request timeout of the shared client.
func SetFetchTimeout(d time.Duration) {
	if d > 0 {
		httpClient.Timeout = d
	}
}

// Failure records one identifier the acquisition stage could not satisfy
// and why.
type Failure struct {
	ID  string
	Err error
}

// Fetch downloads the matrix for each id from endpoint and persists it as
// {dir}/{id}.pssm. A failed id is skipped and reported, never fatal: one
// attempt per id, no retry. Identifiers are processed one at a time.
func Fetch(ctx context.Context, endpoint string, ids []string, dir string) []Failure {
	var failed []Failure
	for _, id := range ids {
		if err := fetchOne(ctx, endpoint, id, dir); err != nil {
			failed = append(failed, Failure{ID: id, Err: err})
		}
	}
	return failed
}

func fetchOne(ctx context.Context, endpoint, id, dir string) error {
	url := fmt.Sprintf("%s/%s.pssm", strings.TrimRight(endpoint, "/"), id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "profab-feature-extracter/1.0")
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("remote fetch returned status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, id+".pssm"), data, 0o644)
}
