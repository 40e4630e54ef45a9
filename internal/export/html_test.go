package export

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-agent/internal/types"
)

func exportResume() *types.ResumeData {
	return &types.ResumeData{
		ID: "1",
		PersonalInfo: types.PersonalInfo{
			FullName: "Asha Patel",
			Email:    "asha.patel@example.com",
			Phone:    "+91 98 1234 5678",
			Location: "Bangalore, Karnataka",
			LinkedIn: "linkedin.com/in/asha-patel",
		},
		Summary: "Senior engineer focused on distributed systems.",
		Experience: []types.WorkExperience{
			{
				ID: "1", Company: "Razorpay", Title: "Senior Software Engineer",
				Location: "Bangalore", StartDate: "2019-06", Current: true,
				Description:  "Payments platform work.",
				Achievements: []string{"Improved checkout latency by 45%", "Led a team of 6 developers"},
			},
			{
				ID: "2", Company: "TCS", Title: "Software Engineer",
				Location: "Pune", StartDate: "2016-01", EndDate: "2019-05",
				Description:  "Enterprise delivery.",
				Achievements: []string{"Shipped features for 10K+ users"},
			},
		},
		Education: []types.Education{
			{
				ID: "1", Institution: "IIT Bombay", Degree: "Bachelor of Technology",
				Field: "Computer Science", Location: "India",
				StartDate: "2012-07", EndDate: "2016-05", GPA: "8.6",
			},
		},
		Skills: []types.Skill{
			{ID: "1", Name: "Go"},
			{ID: "2", Name: "PostgreSQL"},
			{ID: "3", Name: "Docker"},
		},
		Certifications: []types.Certification{
			{ID: "1", Name: "AWS Certified Solutions Architect", Issuer: "Amazon Web Services", Date: "2021-03"},
		},
	}
}

func renderDoc(t *testing.T, resume *types.ResumeData, style types.ResumeStyle) (*goquery.Document, string) {
	t.Helper()
	html, err := HTML(resume, style)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc, html
}

func TestHTMLDocumentStructure(t *testing.T) {
	doc, html := renderDoc(t, exportResume(), types.DefaultStyle())

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Equal(t, "Asha Patel", doc.Find(".name").Text())
	assert.Contains(t, doc.Find(".contact-info").Text(), "asha.patel@example.com")
	assert.Contains(t, doc.Find(".contact-info").Text(), "linkedin.com/in/asha-patel")

	assert.Equal(t, 2, doc.Find(".experience-item").Length())
	assert.Equal(t, 1, doc.Find(".education-item").Length())
	assert.Equal(t, 3, doc.Find(".skill-tag").Length())

	// Current role renders as Present; the finished one shows its end date.
	dates := doc.Find(".experience-item .item-date")
	assert.Contains(t, dates.First().Text(), "Present")
	assert.Contains(t, dates.Last().Text(), "2019-05")
}

func TestHTMLOmitsEmptyCertifications(t *testing.T) {
	r := exportResume()
	r.Certifications = nil

	doc, html := renderDoc(t, r, types.DefaultStyle())
	assert.NotContains(t, html, "Certifications")
	// summary, experience, education, skills
	assert.Equal(t, 4, doc.Find(".section").Length())
}

func TestHTMLOmitsLinkedInWhenAbsent(t *testing.T) {
	r := exportResume()
	r.PersonalInfo.LinkedIn = ""

	doc, _ := renderDoc(t, r, types.DefaultStyle())
	assert.NotContains(t, doc.Find(".contact-info").Text(), "linkedin")
}

func TestHTMLStyleSelection(t *testing.T) {
	style := types.ResumeStyle{
		Template:     types.TemplateClassic,
		PrimaryColor: "green",
		FontFamily:   "classic",
		FontSize:     "large",
		Spacing:      "spacious",
	}

	_, html := renderDoc(t, exportResume(), style)
	assert.Contains(t, html, "#10b981")
	assert.Contains(t, html, "#047857")
	assert.Contains(t, html, "18px")
	assert.Contains(t, html, "1.5rem")
	assert.Contains(t, html, "Georgia")
}

func TestHTMLUnknownStyleFallsBack(t *testing.T) {
	style := types.ResumeStyle{PrimaryColor: "magenta", FontFamily: "comic", FontSize: "huge", Spacing: "airy"}

	_, html := renderDoc(t, exportResume(), style)
	assert.Contains(t, html, "#3b82f6", "unknown color falls back to blue")
	assert.Contains(t, html, "16px", "unknown size falls back to medium")
	assert.Contains(t, html, "1rem", "unknown spacing falls back to normal")
	assert.Contains(t, html, "Inter", "unknown family falls back to modern")
}

func TestHTMLEscapesUserContent(t *testing.T) {
	r := exportResume()
	r.Summary = `<script>alert("x")</script>`

	_, html := renderDoc(t, r, types.DefaultStyle())
	assert.NotContains(t, html, "<script>alert")
}

func TestHTMLNilResume(t *testing.T) {
	_, err := HTML(nil, types.DefaultStyle())
	assert.Error(t, err)
}
