package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-agent/internal/observability"
	"github.com/jonathan/career-agent/internal/upload"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Parse an uploaded resume file into structured JSON",
	Long:  "Validate a resume file against the acceptance rules (PDF/DOC/DOCX, 5 MB ceiling) and produce the structured resume derived from it.",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpload,
}

var uploadOut string

func init() {
	uploadCmd.Flags().StringVarP(&uploadOut, "out", "o", "", "Output path for the resume JSON (required)")

	if err := uploadCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(uploadCmd)
}

func runUpload(_ *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := upload.ValidateFile(upload.FileMeta{
		Name: filepath.Base(path),
		Size: info.Size(),
	}); err != nil {
		return err
	}

	resume := upload.NewGenerator().FromFile(filepath.Base(path))

	if err := writeJSONFile(uploadOut, resume); err != nil {
		return err
	}

	if verbose {
		observability.NewPrinter(os.Stdout).PrintResume(resume)
	}
	fmt.Fprintf(os.Stdout, "Parsed resume for %s\n", resume.PersonalInfo.FullName)
	fmt.Fprintf(os.Stdout, "Resume JSON: %s\n", uploadOut)

	return nil
}
