package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-agent/internal/export"
	"github.com/jonathan/career-agent/internal/types"
)

var exportCmd = &cobra.Command{
	Use:   "export <resume.json>",
	Short: "Render a resume as a styled HTML or PDF document",
	Long:  "Render a structured resume into a self-contained HTML document, or print it to PDF through a headless browser with --format pdf.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var (
	exportOut      string
	exportFormat   string
	exportTemplate string
	exportColor    string
	exportFont     string
	exportSize     string
	exportSpacing  string
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output path (required)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "html", "Output format: html or pdf")
	exportCmd.Flags().StringVar(&exportTemplate, "template", "", "Document template (modern, classic, minimal, creative, professional)")
	exportCmd.Flags().StringVar(&exportColor, "color", "", "Color palette (blue, purple, green, red, orange, teal)")
	exportCmd.Flags().StringVar(&exportFont, "font", "", "Font family")
	exportCmd.Flags().StringVar(&exportSize, "size", "", "Font size (small, medium, large)")
	exportCmd.Flags().StringVar(&exportSpacing, "spacing", "", "Section spacing (compact, normal, spacious)")

	if err := exportCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(exportCmd)
}

// exportStyle assembles the document style from flags and config defaults.
func exportStyle(cfg exportDefaults) types.ResumeStyle {
	style := types.DefaultStyle()
	if cfg.Template != "" {
		style.Template = types.ResumeTemplate(cfg.Template)
		style.FontFamily = cfg.Template
	}
	if cfg.Color != "" {
		style.PrimaryColor = cfg.Color
	}
	if exportTemplate != "" {
		style.Template = types.ResumeTemplate(exportTemplate)
		style.FontFamily = exportTemplate
	}
	if exportColor != "" {
		style.PrimaryColor = exportColor
	}
	if exportFont != "" {
		style.FontFamily = exportFont
	}
	if exportSize != "" {
		style.FontSize = exportSize
	}
	if exportSpacing != "" {
		style.Spacing = exportSpacing
	}
	return style
}

// exportDefaults is the slice of config the export command consumes.
type exportDefaults struct {
	Template string
	Color    string
}

func runExport(_ *cobra.Command, args []string) error {
	if exportFormat != "html" && exportFormat != "pdf" {
		return fmt.Errorf("invalid format %q: must be html or pdf", exportFormat)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	resume, err := loadResumeFile(args[0])
	if err != nil {
		return err
	}

	style := exportStyle(exportDefaults{Template: cfg.Template, Color: cfg.Color})
	html, err := export.HTML(resume, style)
	if err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}

	output := []byte(html)
	if exportFormat == "pdf" {
		output, err = export.PDF(context.Background(), html, export.DefaultPDFTimeout)
		if err != nil {
			return fmt.Errorf("failed to print resume to PDF: %w", err)
		}
	}

	if err := os.WriteFile(exportOut, output, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOut, err)
	}

	fmt.Fprintf(os.Stdout, "Exported %s resume: %s\n", exportFormat, exportOut)

	return nil
}
