package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SUKH2022/QIP-91-90-days-extension-FV/internal/verify"
)

// Save writes run results to results.json in the output directory.
func Save(results *verify.RunResults, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	resultsPath := filepath.Join(outputDir, "results.json")
	file, err := os.Create(resultsPath)
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	return nil
}

// Load reads run results back from results.json in the given directory.
func Load(resultsDir string) (*verify.RunResults, error) {
	resultsPath := filepath.Join(resultsDir, "results.json")
	file, err := os.Open(resultsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open results file: %w", err)
	}
	defer file.Close()

	var results verify.RunResults
	if err := json.NewDecoder(file).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode results: %w", err)
	}

	return &results, nil
}
