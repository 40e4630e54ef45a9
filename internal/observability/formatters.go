// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintResume(r *types.ResumeData) {
	if r == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:    %s\n", r.PersonalInfo.FullName))
	sb.WriteString(fmt.Sprintf("Email:   %s\n", r.PersonalInfo.Email))
	if r.PersonalInfo.Location != "" {
		sb.WriteString(fmt.Sprintf("From:    %s\n", r.PersonalInfo.Location))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(r.Experience)))
	for i, exp := range r.Experience {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(r.Experience)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  %s at %s\n", exp.Title, exp.Company))
	}
	sb.WriteString("\n")

	names := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		names = append(names, s.Name)
		if len(names) == maxItemsToShow {
			break
		}
	}
	sb.WriteString(fmt.Sprintf("Skills (%d): %s", len(r.Skills), strings.Join(names, ", ")))

	p.printBox("PARSED RESUME", sb.String())
}

// PrintEnhancement outputs the before/after scores and the suggestion list
// of an enhancement result.
func (p *Printer) PrintEnhancement(result *types.EnhancementResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Quality score:  %d -> %d\n", result.Score.Original, result.Score.Enhanced))
	sb.WriteString(fmt.Sprintf("ATS score:      %d -> %d\n", result.ATSCompatibility.Original, result.ATSCompatibility.Enhanced))
	sb.WriteString(fmt.Sprintf("Keywords added: %d\n", len(result.KeywordsAdded)))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Suggestions (%d):\n", len(result.Suggestions)))
	for i, s := range result.Suggestions {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Suggestions)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  [%s] %s: %s\n", s.Priority, s.Section, s.Reason))
	}

	p.printBox("ENHANCEMENT RESULT", sb.String())
}

// PrintJobs outputs a job listing. Salary and posted-date display strings
// are passed pre-rendered, parallel to the postings.
func (p *Printer) PrintJobs(postings []types.Job, salaries, posted []string) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Matches: %d\n\n", len(postings)))
	for i, job := range postings {
		badge := " "
		if job.IsFeatured {
			badge = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %s - %s (%s)\n", badge, job.Title, job.Company.Name, job.Location.City))
		if i < len(salaries) && i < len(posted) {
			sb.WriteString(fmt.Sprintf("    %s | %s | match %d%%\n", salaries[i], posted[i], job.MatchScore))
		}
	}

	p.printBox("JOB SEARCH RESULTS", sb.String())
}

// PrintLocation outputs the saved location state.
func (p *Printer) PrintLocation(loc *types.UserLocation, perm types.LocationPermission) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Permission: %s\n", perm))
	if loc != nil {
		sb.WriteString(fmt.Sprintf("Coordinate: %.4f, %.4f\n", loc.Latitude, loc.Longitude))
		if loc.City != "" {
			sb.WriteString(fmt.Sprintf("Place:      %s, %s, %s\n", loc.City, loc.State, loc.Country))
		}
	}

	p.printBox("SAVED LOCATION", sb.String())
}
