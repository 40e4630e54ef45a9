package jobs

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jonathan/career-agent/internal/types"
)

const lakhsPerUnit = 100000

// FormatSalary renders a pay range for display. INR yearly figures use the
// lakhs-per-annum convention; anything else falls back to the currency code
// with grouped figures and a period suffix.
func FormatSalary(s types.Salary) string {
	if s.Currency == "INR" {
		return fmt.Sprintf("₹%.1f - ₹%.1f LPA",
			float64(s.Min)/lakhsPerUnit, float64(s.Max)/lakhsPerUnit)
	}
	return fmt.Sprintf("%s %s - %s per %s",
		s.Currency, humanize.Comma(int64(s.Min)), humanize.Comma(int64(s.Max)), s.Period)
}

// FormatPostedDate renders a posting's age in coarse buckets: hours within
// the first day, then days, then weeks, then the plain date.
func FormatPostedDate(postedAt, now time.Time) string {
	age := now.Sub(postedAt)
	switch {
	case age < time.Hour:
		return "Just now"
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	}

	days := int(age.Hours() / 24)
	switch {
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		weeks := days / 7
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	}
	return postedAt.Format("Jan 2, 2006")
}
