// Package export renders a resume into a styled, self-contained HTML
// document and, optionally, prints it to PDF through a headless browser.
package export

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/career-agent/internal/types"
)

type palette struct {
	Primary   string
	Secondary string
}

var colorPalettes = map[string]palette{
	"blue":   {Primary: "#3b82f6", Secondary: "#1e40af"},
	"purple": {Primary: "#8b5cf6", Secondary: "#5b21b6"},
	"green":  {Primary: "#10b981", Secondary: "#047857"},
	"red":    {Primary: "#ef4444", Secondary: "#b91c1c"},
	"orange": {Primary: "#f97316", Secondary: "#c2410c"},
	"teal":   {Primary: "#14b8a6", Secondary: "#0f766e"},
}

var fontSizes = map[string]string{
	"small":  "14px",
	"medium": "16px",
	"large":  "18px",
}

var spacings = map[string]string{
	"compact":  "0.5rem",
	"normal":   "1rem",
	"spacious": "1.5rem",
}

var fontFamilies = map[string]string{
	"modern":       "'Inter', -apple-system, BlinkMacSystemFont, sans-serif",
	"classic":      "'Georgia', 'Times New Roman', serif",
	"minimal":      "'Helvetica Neue', Arial, sans-serif",
	"creative":     "'Playfair Display', Georgia, serif",
	"professional": "'Segoe UI', Tahoma, Geneva, Verdana, sans-serif",
}

type templateData struct {
	Resume     *types.ResumeData
	Primary    template.CSS
	Secondary  template.CSS
	SkillBg    template.CSS
	FontFamily template.CSS
	FontSize   template.CSS
	Spacing    template.CSS
}

var resumeTemplate = template.Must(template.New("resume").Parse(resumeHTML))

// HTML renders the resume as a complete document with every style rule
// inlined, so the output needs no external assets. Unknown style values
// fall back to the defaults.
func HTML(resume *types.ResumeData, style types.ResumeStyle) (string, error) {
	if resume == nil {
		return "", fmt.Errorf("export: resume is nil")
	}

	colors, ok := colorPalettes[style.PrimaryColor]
	if !ok {
		colors = colorPalettes["blue"]
	}
	fontSize, ok := fontSizes[style.FontSize]
	if !ok {
		fontSize = fontSizes["medium"]
	}
	spacing, ok := spacings[style.Spacing]
	if !ok {
		spacing = spacings["normal"]
	}
	fontFamily, ok := fontFamilies[style.FontFamily]
	if !ok {
		fontFamily = fontFamilies["modern"]
	}

	var out strings.Builder
	err := resumeTemplate.Execute(&out, templateData{
		Resume:     resume,
		Primary:    template.CSS(colors.Primary),
		Secondary:  template.CSS(colors.Secondary),
		SkillBg:    template.CSS(colors.Primary + "15"),
		FontFamily: template.CSS(fontFamily),
		FontSize:   template.CSS(fontSize),
		Spacing:    template.CSS(spacing),
	})
	if err != nil {
		return "", fmt.Errorf("export: failed to render resume: %w", err)
	}
	return out.String(), nil
}

const resumeHTML = `<!DOCTYPE html>
<html>
<head>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: {{.FontFamily}};
    font-size: {{.FontSize}};
    line-height: 1.6;
    color: #333;
    max-width: 800px;
    margin: 0 auto;
    padding: 40px;
  }
  .header {
    text-align: center;
    padding-bottom: {{.Spacing}};
    border-bottom: 2px solid {{.Primary}};
    margin-bottom: {{.Spacing}};
  }
  .name {
    font-size: 2.5em;
    color: {{.Primary}};
    font-weight: bold;
    margin-bottom: 0.5rem;
  }
  .contact-info {
    color: #666;
    font-size: 0.9em;
  }
  .section {
    margin-bottom: {{.Spacing}};
  }
  .section-title {
    color: {{.Primary}};
    font-size: 1.3em;
    font-weight: bold;
    text-transform: uppercase;
    letter-spacing: 1px;
    margin-bottom: 0.5rem;
    padding-bottom: 0.25rem;
    border-bottom: 1px solid {{.Secondary}};
  }
  .experience-item, .education-item {
    margin-bottom: 1rem;
  }
  .item-header {
    display: flex;
    justify-content: space-between;
    align-items: baseline;
    flex-wrap: wrap;
  }
  .item-title {
    font-weight: bold;
    color: {{.Secondary}};
  }
  .item-subtitle {
    color: #666;
    font-style: italic;
  }
  .item-date {
    color: #888;
    font-size: 0.9em;
  }
  .skills-list {
    display: flex;
    flex-wrap: wrap;
    gap: 0.5rem;
  }
  .skill-tag {
    background: {{.SkillBg}};
    color: {{.Primary}};
    padding: 0.25rem 0.75rem;
    border-radius: 15px;
    font-size: 0.85em;
  }
  ul {
    padding-left: 1.5rem;
  }
  li {
    margin-bottom: 0.25rem;
  }
</style>
</head>
<body>
  <div class="header">
    <div class="name">{{.Resume.PersonalInfo.FullName}}</div>
    <div class="contact-info">
      {{.Resume.PersonalInfo.Email}} | {{.Resume.PersonalInfo.Phone}} | {{.Resume.PersonalInfo.Location}}{{if .Resume.PersonalInfo.LinkedIn}} | {{.Resume.PersonalInfo.LinkedIn}}{{end}}
    </div>
  </div>

  <div class="section">
    <div class="section-title">Professional Summary</div>
    <p>{{.Resume.Summary}}</p>
  </div>

  <div class="section">
    <div class="section-title">Experience</div>
    {{range .Resume.Experience}}
    <div class="experience-item">
      <div class="item-header">
        <span class="item-title">{{.Title}}</span>
        <span class="item-date">{{.StartDate}} - {{if .Current}}Present{{else}}{{.EndDate}}{{end}}</span>
      </div>
      <div class="item-subtitle">{{.Company}} | {{.Location}}</div>
      <p>{{.Description}}</p>
      <ul>
        {{range .Achievements}}<li>{{.}}</li>{{end}}
      </ul>
    </div>
    {{end}}
  </div>

  <div class="section">
    <div class="section-title">Education</div>
    {{range .Resume.Education}}
    <div class="education-item">
      <div class="item-header">
        <span class="item-title">{{.Degree}} in {{.Field}}</span>
        <span class="item-date">{{.StartDate}} - {{.EndDate}}</span>
      </div>
      <div class="item-subtitle">{{.Institution}} | {{.Location}}</div>
      {{if .GPA}}<div>GPA: {{.GPA}}</div>{{end}}
    </div>
    {{end}}
  </div>

  <div class="section">
    <div class="section-title">Skills</div>
    <div class="skills-list">
      {{range .Resume.Skills}}<span class="skill-tag">{{.Name}}</span>{{end}}
    </div>
  </div>

  {{if .Resume.Certifications}}
  <div class="section">
    <div class="section-title">Certifications</div>
    <ul>
      {{range .Resume.Certifications}}<li><strong>{{.Name}}</strong> - {{.Issuer}} ({{.Date}})</li>{{end}}
    </ul>
  </div>
  {{end}}
</body>
</html>
`
