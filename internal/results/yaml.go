package results

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SUKH2022/QIP-91-90-days-extension-FV/internal/verify"
)

// RunConfig is the configuration section of the run YAML.
type RunConfig struct {
	DesignPath string `yaml:"designpath"`
	ReportPath string `yaml:"reportpath"`
	Timestamp  string `yaml:"timestamp"`
}

// CategorySummary is one test category in the run YAML.
type CategorySummary struct {
	Name       string         `yaml:"name"`
	Passed     bool           `yaml:"passed"`
	IssueCount int            `yaml:"issuecount"`
	Issues     []verify.Issue `yaml:"issues,omitempty"`
}

// RunSpec is the complete YAML rendition of a verification run.
type RunSpec struct {
	Config     RunConfig         `yaml:"config"`
	Passed     bool              `yaml:"passed"`
	Categories []CategorySummary `yaml:"categories"`
}

// SaveToYAML writes a timestamped YAML snapshot of the run into the output
// directory and returns the path it wrote.
func SaveToYAML(results *verify.RunResults, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")

	spec := RunSpec{
		Config: RunConfig{
			DesignPath: results.DesignPath,
			ReportPath: results.ReportPath,
			Timestamp:  timestamp,
		},
		Passed:     results.Passed(),
		Categories: make([]CategorySummary, 0, len(results.Categories)),
	}

	for _, c := range results.Categories {
		spec.Categories = append(spec.Categories, CategorySummary{
			Name:       c.Name,
			Passed:     c.Passed,
			IssueCount: len(c.Issues),
			Issues:     c.Issues,
		})
	}

	data, err := yaml.Marshal(&spec)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}

	filename := filepath.Join(outputDir, fmt.Sprintf("run-%s.yaml", timestamp))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write YAML file: %w", err)
	}

	return filename, nil
}
