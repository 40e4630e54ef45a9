package upload

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/career-agent/internal/types"
)

var (
	extensionPattern = regexp.MustCompile(`\.[^/.]+$`)
	fillerPattern    = regexp.MustCompile(`(?i)\b(resume|cv|curriculum|vitae|updated|final|new|old|2024|2023|2025)\b`)
	digitsPattern    = regexp.MustCompile(`\d+`)
	spacePattern     = regexp.MustCompile(`\s+`)
)

var (
	emailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "rediffmail.com"}

	phonePrefixes = []string{"+91 98", "+91 99", "+91 70", "+91 80", "+91 88"}

	cities = []string{
		"Mumbai, Maharashtra", "Pune, Maharashtra", "Bangalore, Karnataka",
		"Hyderabad, Telangana", "Chennai, Tamil Nadu", "Delhi NCR",
		"Gurgaon, Haryana", "Noida, Uttar Pradesh", "Kolkata, West Bengal",
		"Ahmedabad, Gujarat", "Jaipur, Rajasthan", "Kochi, Kerala",
	}

	universities = []string{
		"IIT Bombay", "IIT Delhi", "IIT Madras", "IIT Kharagpur", "IIT Kanpur",
		"NIT Trichy", "NIT Surathkal", "BITS Pilani", "VIT Vellore",
		"SRM University", "Anna University", "University of Mumbai",
		"Delhi University", "JNU Delhi", "Pune University",
	}

	companies = []string{
		"TCS", "Infosys", "Wipro", "HCL Technologies", "Tech Mahindra",
		"Cognizant", "Capgemini", "Accenture India", "IBM India", "Microsoft India",
		"Google India", "Amazon India", "Flipkart", "Paytm", "Zoho",
		"Freshworks", "Ola", "Swiggy", "BYJU's", "Zerodha",
	}

	seniorTitles = []string{"Senior Software Engineer", "Tech Lead", "Engineering Manager", "Principal Engineer", "Architect"}
	juniorTitles = []string{"Software Engineer", "Full Stack Developer", "Frontend Developer", "Backend Developer", "DevOps Engineer"}
)

// skillDetector maps a filename token to the skill it implies.
type skillDetector struct {
	token string
	skill types.Skill
}

var skillDetectors = []skillDetector{
	{"java", types.Skill{Name: "Java", Category: types.SkillTechnical, Proficiency: types.ProficiencyAdvanced}},
	{"python", types.Skill{Name: "Python", Category: types.SkillTechnical, Proficiency: types.ProficiencyAdvanced}},
	{"react", types.Skill{Name: "React", Category: types.SkillTechnical, Proficiency: types.ProficiencyExpert}},
	{"angular", types.Skill{Name: "Angular", Category: types.SkillTechnical, Proficiency: types.ProficiencyAdvanced}},
	{"node", types.Skill{Name: "Node.js", Category: types.SkillTechnical, Proficiency: types.ProficiencyAdvanced}},
	{"full", types.Skill{Name: "Full Stack Development", Category: types.SkillTechnical, Proficiency: types.ProficiencyExpert}},
	{"stack", types.Skill{Name: "Full Stack Development", Category: types.SkillTechnical, Proficiency: types.ProficiencyExpert}},
	{"devops", types.Skill{Name: "DevOps", Category: types.SkillTechnical, Proficiency: types.ProficiencyAdvanced}},
	{"data", types.Skill{Name: "Data Science", Category: types.SkillTechnical, Proficiency: types.ProficiencyAdvanced}},
	{"cloud", types.Skill{Name: "Cloud Computing", Category: types.SkillTechnical, Proficiency: types.ProficiencyAdvanced}},
}

var defaultSkills = []types.Skill{
	{Name: "JavaScript", Category: types.SkillTechnical, Proficiency: types.ProficiencyExpert},
	{Name: "React", Category: types.SkillTechnical, Proficiency: types.ProficiencyAdvanced},
	{Name: "Node.js", Category: types.SkillTechnical, Proficiency: types.ProficiencyAdvanced},
	{Name: "Python", Category: types.SkillTechnical, Proficiency: types.ProficiencyIntermediate},
}

var commonSkills = []types.Skill{
	{Name: "HTML/CSS", Category: types.SkillTechnical, Proficiency: types.ProficiencyExpert},
	{Name: "Git", Category: types.SkillTool, Proficiency: types.ProficiencyAdvanced},
	{Name: "SQL", Category: types.SkillTechnical, Proficiency: types.ProficiencyAdvanced},
	{Name: "AWS", Category: types.SkillTool, Proficiency: types.ProficiencyIntermediate},
	{Name: "Docker", Category: types.SkillTool, Proficiency: types.ProficiencyIntermediate},
	{Name: "Problem Solving", Category: types.SkillSoft, Proficiency: types.ProficiencyAdvanced},
	{Name: "Teamwork", Category: types.SkillSoft, Proficiency: types.ProficiencyAdvanced},
}

// ExtractName derives a candidate name from an upload filename: the
// extension, filler words and digits are stripped, separators become
// spaces, and the remaining words are title-cased. A filename with no
// usable words yields "Candidate".
func ExtractName(fileName string) string {
	clean := extensionPattern.ReplaceAllString(fileName, "")
	clean = fillerPattern.ReplaceAllString(clean, "")
	clean = digitsPattern.ReplaceAllString(clean, "")
	clean = strings.NewReplacer("_", " ", "-", " ").Replace(clean)
	clean = strings.TrimSpace(clean)

	var words []string
	for _, w := range spacePattern.Split(clean, -1) {
		if len(w) > 1 {
			words = append(words, capitalize(w))
		}
	}
	if len(words) == 0 {
		return "Candidate"
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}

// DetectSkills infers skills from filename tokens and appends the common
// complementary set. A filename with no recognizable token gets a default
// web-stack profile. IDs are assigned sequentially from 1.
func DetectSkills(fileName string) []types.Skill {
	lower := strings.ToLower(fileName)

	var detected []types.Skill
	seen := map[string]bool{}
	for _, d := range skillDetectors {
		if strings.Contains(lower, d.token) && !seen[d.skill.Name] {
			seen[d.skill.Name] = true
			detected = append(detected, d.skill)
		}
	}
	if len(detected) == 0 {
		detected = append(detected, defaultSkills...)
	}
	detected = append(detected, commonSkills...)

	for i := range detected {
		detected[i].ID = fmt.Sprintf("%d", i+1)
	}
	return detected
}

// Generator synthesizes a plausible resume record from upload metadata.
// Randomness comes from an injected source so generation is reproducible.
type Generator struct {
	now func() time.Time
	rng *rand.Rand
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithClock overrides the generator's time source.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) { g.now = now }
}

// WithRand overrides the generator's randomness source.
func WithRand(rng *rand.Rand) GeneratorOption {
	return func(g *Generator) { g.rng = rng }
}

// NewGenerator creates a generator. Without options it uses the wall clock
// and a time-seeded randomness source.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

func (g *Generator) email(name string) string {
	local := strings.ReplaceAll(strings.ToLower(name), " ", ".")
	return local + "@" + g.pick(emailDomains)
}

func (g *Generator) phone() string {
	suffix := fmt.Sprintf("%d", g.rng.Intn(90000000)+10000000)
	return fmt.Sprintf("%s %s %s", g.pick(phonePrefixes), suffix[:4], suffix[4:])
}

func (g *Generator) jobTitle(senior bool) string {
	if senior {
		return g.pick(seniorTitles)
	}
	return g.pick(juniorTitles)
}

// FromFile builds a complete resume record for an accepted upload: contact
// details, a two-position work history, education, a certification aligned
// with the detected skills, one project, and languages.
func (g *Generator) FromFile(fileName string) *types.ResumeData {
	fullName := ExtractName(fileName)
	skills := DetectSkills(fileName)
	location := g.pick(cities)
	company1 := g.pick(companies)
	company2 := g.pick(companies)
	university := g.pick(universities)

	currentYear := g.now().Year()
	startYear1 := currentYear - (g.rng.Intn(3) + 1)
	startYear2 := startYear1 - (g.rng.Intn(3) + 2)

	slug := strings.ReplaceAll(strings.ToLower(fullName), " ", "")
	topSkills := skillNames(skills, 4)

	certName, certIssuer := "Microsoft Certified: Azure Developer", "Microsoft"
	if hasSkill(skills, "AWS") {
		certName, certIssuer = "AWS Certified Solutions Architect", "Amazon Web Services"
	}

	return &types.ResumeData{
		ID: "1",
		PersonalInfo: types.PersonalInfo{
			FullName: fullName,
			Email:    g.email(fullName),
			Phone:    g.phone(),
			Location: location,
			LinkedIn: "linkedin.com/in/" + strings.ReplaceAll(strings.ToLower(fullName), " ", "-"),
			GitHub:   "github.com/" + slug,
		},
		Summary: fmt.Sprintf(
			"Results-driven %s with %d+ years of experience in software development. Skilled in %s. Passionate about building scalable applications and delivering high-quality solutions.",
			strings.ToLower(g.jobTitle(true)), currentYear-startYear2, strings.Join(topSkills, ", ")),
		Experience: []types.WorkExperience{
			{
				ID:          "1",
				Company:     company1,
				Title:       g.jobTitle(true),
				Location:    location,
				StartDate:   fmt.Sprintf("%d-01", startYear1),
				Current:     true,
				Description: fmt.Sprintf("Leading development of critical projects at %s. Mentoring junior developers and driving technical decisions.", company1),
				Achievements: []string{
					fmt.Sprintf("Improved application performance by %d%% through code optimization", g.rng.Intn(30)+30),
					fmt.Sprintf("Led a team of %d developers on major product releases", g.rng.Intn(5)+3),
					fmt.Sprintf("Reduced deployment time by %d%% with CI/CD implementation", g.rng.Intn(40)+40),
				},
			},
			{
				ID:          "2",
				Company:     company2,
				Title:       g.jobTitle(false),
				Location:    location,
				StartDate:   fmt.Sprintf("%d-06", startYear2),
				EndDate:     fmt.Sprintf("%d-12", startYear1),
				Current:     false,
				Description: fmt.Sprintf("Developed and maintained web applications using modern technologies at %s.", company2),
				Achievements: []string{
					fmt.Sprintf("Built features used by %dK+ users daily", g.rng.Intn(50)+10),
					"Collaborated with cross-functional teams to deliver projects on time",
				},
			},
		},
		Education: []types.Education{
			{
				ID:          "1",
				Institution: university,
				Degree:      "Bachelor of Technology",
				Field:       "Computer Science",
				Location:    "India",
				StartDate:   fmt.Sprintf("%d-07", startYear2-4),
				EndDate:     fmt.Sprintf("%d-05", startYear2),
				GPA:         fmt.Sprintf("%.1f", g.rng.Float64()*1.5+7.5),
			},
		},
		Skills: skills,
		Certifications: []types.Certification{
			{
				ID:           "1",
				Name:         certName,
				Issuer:       certIssuer,
				Date:         fmt.Sprintf("%d-03", startYear1),
				CredentialID: fmt.Sprintf("CERT-%d", g.rng.Intn(900000)+100000),
			},
		},
		Projects: []types.Project{
			{
				ID:           "1",
				Name:         "Enterprise Web Application",
				Description:  "Developed a scalable web application using " + strings.Join(skillNames(skills, 3), ", "),
				Technologies: topSkills,
				Link:         fmt.Sprintf("https://github.com/%s/project", slug),
			},
		},
		Languages: []types.Language{
			{ID: "1", Name: "English", Proficiency: "fluent"},
			{ID: "2", Name: "Hindi", Proficiency: "native"},
		},
		UploadedAt: g.now(),
		FileName:   fileName,
	}
}

func skillNames(skills []types.Skill, n int) []string {
	if n > len(skills) {
		n = len(skills)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = skills[i].Name
	}
	return out
}

func hasSkill(skills []types.Skill, name string) bool {
	for _, s := range skills {
		if strings.Contains(s.Name, name) {
			return true
		}
	}
	return false
}
