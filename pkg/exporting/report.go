package exporting

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteReport writes a run report as YAML.
func WriteReport(path string, report interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return encoder.Close()
}
