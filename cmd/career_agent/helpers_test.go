package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-agent/internal/upload"
)

func TestResumeFileRoundTrip(t *testing.T) {
	resume := upload.NewGenerator().FromFile("anita-sharma-resume.pdf")
	path := filepath.Join(t.TempDir(), "resume.json")

	require.NoError(t, writeJSONFile(path, resume))

	loaded, err := loadResumeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Anita Sharma", loaded.PersonalInfo.FullName)
	assert.Equal(t, len(resume.Skills), len(loaded.Skills))
}

func TestLoadResumeFile_Missing(t *testing.T) {
	_, err := loadResumeFile("/nonexistent/resume.json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read resume file")
}

func TestLoadResumeFile_InvalidSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"summary": "no sections"}`), 0644))

	_, err := loadResumeFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "is invalid")
}
