// Package enhance implements the rule-based resume enhancement engine: it
// scores a resume, proposes concrete textual edits, synthesizes an enhanced
// copy, and reports the score improvement. The engine is pure and
// deterministic; it performs no I/O.
package enhance

// technicalKeywords is the fixed vocabulary the ATS scorer and the
// missing-keyword rule match against.
var technicalKeywords = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Go", "Rust", "Ruby", "PHP",
	"React", "Vue", "Angular", "Svelte", "Next.js", "Nuxt.js", "Node.js", "Express", "Django", "Flask",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Jenkins", "GitHub Actions", "CI/CD",
	"MongoDB", "PostgreSQL", "MySQL", "Redis", "Elasticsearch", "DynamoDB",
	"GraphQL", "REST API", "gRPC", "WebSocket", "Microservices", "Serverless",
	"Machine Learning", "AI", "Data Science", "TensorFlow", "PyTorch", "Pandas", "NumPy",
}

// actionVerbs is the fixed vocabulary of recognized resume action verbs.
var actionVerbs = []string{
	"Developed", "Implemented", "Designed", "Architected", "Optimized", "Led", "Managed",
	"Created", "Built", "Delivered", "Achieved", "Improved", "Reduced", "Increased",
	"Spearheaded", "Pioneered", "Transformed", "Streamlined", "Automated", "Deployed",
}

// skillCategory is one bucket of the skills-regrouping suggestion.
type skillCategory struct {
	Name    string
	Members []string
}

// skillCategories is the static lookup table for regrouping skills. Order
// matters: categories render in this order and a skill lands in the first
// category that lists it, falling back to the final "Tools & Others".
var skillCategories = []skillCategory{
	{"Languages", []string{"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Go", "Rust", "Ruby", "PHP"}},
	{"Frontend", []string{"React", "Vue", "Angular", "Svelte", "Next.js", "Nuxt.js", "HTML", "CSS", "Tailwind"}},
	{"Backend", []string{"Node.js", "Express", "Django", "Flask", "Spring", "GraphQL", "REST API"}},
	{"Cloud & DevOps", []string{"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Jenkins"}},
	{"Databases", []string{"MongoDB", "PostgreSQL", "MySQL", "Redis", "DynamoDB"}},
	{"Tools & Others", nil},
}
