package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/career-agent/internal/schemas"
	"github.com/jonathan/career-agent/internal/types"
)

// loadResumeFile reads and schema-validates a resume JSON file.
func loadResumeFile(path string) (*types.ResumeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	if err := schemas.ValidateResumeJSON(data); err != nil {
		return nil, fmt.Errorf("resume file %s is invalid: %w", path, err)
	}

	var resume types.ResumeData
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	return &resume, nil
}

// writeJSONFile writes v as indented JSON.
func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
