package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-agent/internal/enhance"
	"github.com/jonathan/career-agent/internal/observability"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance <resume.json>",
	Short: "Run one enhancement pass over a resume",
	Long:  "Analyze a structured resume, generate improvement suggestions, synthesize the enhanced resume, and score both versions for quality and ATS compatibility.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEnhance,
}

var enhanceOut string

func init() {
	enhanceCmd.Flags().StringVarP(&enhanceOut, "out", "o", "", "Output path for the enhancement result JSON")

	rootCmd.AddCommand(enhanceCmd)
}

func runEnhance(_ *cobra.Command, args []string) error {
	resume, err := loadResumeFile(args[0])
	if err != nil {
		return err
	}

	result, err := enhance.NewEngine().Enhance(resume)
	if err != nil {
		return fmt.Errorf("failed to enhance resume: %w", err)
	}

	if enhanceOut != "" {
		if err := writeJSONFile(enhanceOut, result); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Enhancement result: %s\n", enhanceOut)
	}

	observability.NewPrinter(os.Stdout).PrintEnhancement(result)

	return nil
}
