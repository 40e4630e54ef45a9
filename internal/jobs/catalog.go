// Package jobs provides the static job-posting catalog, the in-memory
// store, and the filter/match engine that reduces the catalog to postings
// matching a filter specification.
package jobs

import (
	"time"

	"github.com/jonathan/career-agent/internal/types"
)

func coord(lat, lon float64) (*float64, *float64) {
	return &lat, &lon
}

// Catalog returns the fixed posting set, with posting ages anchored to the
// given load time. The catalog is static; postings are never created or
// destroyed at runtime.
func Catalog(now time.Time) []types.Job {
	bangaloreLat, bangaloreLon := coord(12.9716, 77.5946)
	chennaiLat, chennaiLon := coord(13.0827, 80.2707)

	noidaLat, noidaLon := coord(28.5355, 77.3910)
	puneLat, puneLon := coord(18.5204, 73.8567)
	hyderabadLat, hyderabadLon := coord(17.3850, 78.4867)

	return []types.Job{
		{
			ID:    "1",
			Title: "Senior Full Stack Developer",
			Company: types.Company{
				ID: "c1", Name: "Flipkart", Size: types.CompanyLarge, Industry: "E-commerce",
			},
			Location: types.JobLocation{
				City: "Bangalore", State: "Karnataka", Country: "India",
				Latitude: bangaloreLat, Longitude: bangaloreLon, IsRemote: true,
			},
			Description: "We are looking for an experienced Full Stack Developer to join our engineering team at Flipkart. You will be responsible for developing and maintaining scalable web applications serving millions of users.",
			Requirements: []string{
				"5+ years of experience in full-stack development",
				"Strong proficiency in React, Node.js, and TypeScript",
				"Experience with cloud platforms (AWS/GCP)",
				"Bachelor's degree in Computer Science or related field",
			},
			Responsibilities: []string{
				"Develop and maintain high-scale web applications",
				"Collaborate with cross-functional teams",
				"Mentor junior developers",
				"Participate in code reviews and architectural decisions",
			},
			Skills: []string{"React", "Node.js", "TypeScript", "AWS", "MongoDB"},
			Salary: types.Salary{Min: 2500000, Max: 4500000, Currency: "INR", Period: types.PeriodYearly, IsNegotiable: true},
			EmploymentType:  types.EmploymentFullTime,
			ExperienceLevel: types.ExperienceSenior,
			PostedAt:        now.Add(-2 * 24 * time.Hour),
			IsRemote:        true,
			IsFeatured:      true,
			MatchScore:      95,
		},
		{
			ID:    "2",
			Title: "Frontend Engineer",
			Company: types.Company{
				ID: "c2", Name: "Zoho", Size: types.CompanyLarge, Industry: "SaaS",
			},
			Location: types.JobLocation{
				City: "Chennai", State: "Tamil Nadu", Country: "India",
				Latitude: chennaiLat, Longitude: chennaiLon, IsRemote: false,
			},
			Description: "Join our fast-paced team at Zoho as a Frontend Engineer. Work on cutting-edge SaaS products with a talented team.",
			Requirements: []string{
				"3+ years of frontend development experience",
				"Expert in React and modern JavaScript",
				"Experience with state management (Redux/Zustand)",
				"Strong UI/UX sensibilities",
			},
			Responsibilities: []string{
				"Build responsive and performant user interfaces",
				"Optimize application performance",
				"Work closely with designers and product managers",
			},
			Skills: []string{"React", "TypeScript", "Redux", "CSS", "Webpack"},
			Salary: types.Salary{Min: 1200000, Max: 2000000, Currency: "INR", Period: types.PeriodYearly, IsNegotiable: true},
			EmploymentType:  types.EmploymentFullTime,
			ExperienceLevel: types.ExperienceMid,
			PostedAt:        now.Add(-5 * 24 * time.Hour),
			IsRemote:        false,
			IsFeatured:      false,
			MatchScore:      88,
		},
		{
			ID:    "3",
			Title: "Software Engineer - Backend",
			Company: types.Company{
				ID: "c3", Name: "Paytm", Size: types.CompanyLarge, Industry: "Fintech",
			},
			Location: types.JobLocation{
				City: "Noida", State: "Uttar Pradesh", Country: "India",
				Latitude: noidaLat, Longitude: noidaLon, IsRemote: true,
			},
			Description: "Build scalable backend systems that power millions of transactions at Paytm. Join our backend team and make an impact in the fintech space.",
			Requirements: []string{
				"4+ years of backend development experience",
				"Strong in Java, Python, or Go",
				"Experience with distributed systems",
				"Knowledge of microservices architecture",
			},
			Responsibilities: []string{
				"Design and implement scalable APIs",
				"Optimize database performance",
				"Build and maintain microservices",
			},
			Skills: []string{"Java", "Spring Boot", "Kafka", "PostgreSQL", "Redis"},
			Salary: types.Salary{Min: 2000000, Max: 3500000, Currency: "INR", Period: types.PeriodYearly, IsNegotiable: true},
			EmploymentType:  types.EmploymentFullTime,
			ExperienceLevel: types.ExperienceSenior,
			PostedAt:        now.Add(-1 * 24 * time.Hour),
			IsRemote:        true,
			IsFeatured:      true,
			MatchScore:      82,
		},
		{
			ID:    "4",
			Title: "React Developer",
			Company: types.Company{
				ID: "c4", Name: "Freshworks", Size: types.CompanyLarge, Industry: "SaaS",
			},
			Location: types.JobLocation{
				City: "Chennai", State: "Tamil Nadu", Country: "India",
				Latitude: chennaiLat, Longitude: chennaiLon, IsRemote: true,
			},
			Description: "Create stunning web experiences for our global customer base at Freshworks. Work on projects ranging from customer support to sales automation.",
			Requirements: []string{
				"2+ years of React experience",
				"Strong JavaScript/TypeScript skills",
				"Experience with Next.js preferred",
				"Portfolio of previous work",
			},
			Responsibilities: []string{
				"Develop customer-facing web applications",
				"Collaborate with design and product teams",
				"Ensure cross-browser compatibility",
			},
			Skills: []string{"React", "Next.js", "TypeScript", "Tailwind CSS", "GraphQL"},
			Salary: types.Salary{Min: 1000000, Max: 1800000, Currency: "INR", Period: types.PeriodYearly, IsNegotiable: true},
			EmploymentType:  types.EmploymentFullTime,
			ExperienceLevel: types.ExperienceMid,
			PostedAt:        now.Add(-7 * 24 * time.Hour),
			IsRemote:        true,
			IsFeatured:      false,
			MatchScore:      90,
		},
		{
			ID:    "5",
			Title: "DevOps Engineer",
			Company: types.Company{
				ID: "c5", Name: "Infosys", Size: types.CompanyEnterprise, Industry: "IT Services",
			},
			Location: types.JobLocation{
				City: "Pune", State: "Maharashtra", Country: "India",
				Latitude: puneLat, Longitude: puneLon, IsRemote: false,
			},
			Description: "Join our DevOps team at Infosys to build and maintain cloud infrastructure for enterprise clients. Help us scale to meet growing demand.",
			Requirements: []string{
				"3+ years of DevOps experience",
				"Strong AWS/Azure knowledge",
				"Experience with Terraform and Kubernetes",
				"Scripting skills (Python/Bash)",
			},
			Responsibilities: []string{
				"Manage cloud infrastructure for clients",
				"Implement CI/CD pipelines",
				"Monitor system performance",
				"Ensure security compliance",
			},
			Skills: []string{"AWS", "Terraform", "Kubernetes", "Docker", "Jenkins"},
			Salary: types.Salary{Min: 800000, Max: 1500000, Currency: "INR", Period: types.PeriodYearly, IsNegotiable: true},
			EmploymentType:  types.EmploymentFullTime,
			ExperienceLevel: types.ExperienceMid,
			PostedAt:        now.Add(-3 * 24 * time.Hour),
			IsRemote:        false,
			IsFeatured:      true,
			MatchScore:      75,
		},
		{
			ID:    "6",
			Title: "Full Stack Engineer",
			Company: types.Company{
				ID: "c6", Name: "Razorpay", Size: types.CompanyMedium, Industry: "Fintech",
			},
			Location: types.JobLocation{
				City: "Bangalore", State: "Karnataka", Country: "India",
				Latitude: bangaloreLat, Longitude: bangaloreLon, IsRemote: true,
			},
			Description: "Build the future of payments in India at Razorpay. Work on secure, scalable systems that handle millions of transactions daily.",
			Requirements: []string{
				"4+ years of full-stack experience",
				"Strong in Node.js and React",
				"Experience with payment systems preferred",
				"Knowledge of security best practices",
			},
			Responsibilities: []string{
				"Develop payment processing applications",
				"Ensure system security and compliance",
				"Optimize transaction processing",
			},
			Skills: []string{"Node.js", "React", "PostgreSQL", "Redis", "Docker"},
			Salary: types.Salary{Min: 2200000, Max: 4000000, Currency: "INR", Period: types.PeriodYearly, IsNegotiable: true},
			EmploymentType:  types.EmploymentFullTime,
			ExperienceLevel: types.ExperienceSenior,
			PostedAt:        now.Add(-4 * 24 * time.Hour),
			IsRemote:        true,
			IsFeatured:      false,
			MatchScore:      85,
		},
		{
			ID:    "7",
			Title: "Junior Software Developer",
			Company: types.Company{
				ID: "c7", Name: "Wipro", Size: types.CompanyEnterprise, Industry: "IT Services",
			},
			Location: types.JobLocation{
				City: "Hyderabad", State: "Telangana", Country: "India",
				Latitude: hyderabadLat, Longitude: hyderabadLon, IsRemote: false,
			},
			Description: "Start your IT career with Wipro! We are looking for passionate freshers and junior developers eager to learn and grow in a supportive environment.",
			Requirements: []string{
				"0-2 years of software development experience",
				"Knowledge of Java, Python, or JavaScript",
				"Good understanding of data structures and algorithms",
				"Strong problem-solving skills",
			},
			Responsibilities: []string{
				"Develop and maintain software applications",
				"Learn from senior developers and mentors",
				"Contribute to team projects",
				"Participate in code reviews",
			},
			Skills: []string{"Java", "Python", "JavaScript", "SQL", "Git"},
			Salary: types.Salary{Min: 350000, Max: 600000, Currency: "INR", Period: types.PeriodYearly, IsNegotiable: false},
			EmploymentType:  types.EmploymentFullTime,
			ExperienceLevel: types.ExperienceEntry,
			PostedAt:        now.Add(-6 * 24 * time.Hour),
			IsRemote:        false,
			IsFeatured:      false,
			MatchScore:      70,
		},
		{
			ID:    "8",
			Title: "Mobile App Developer",
			Company: types.Company{
				ID: "c8", Name: "Ola", Size: types.CompanyLarge, Industry: "Transportation",
			},
			Location: types.JobLocation{
				City: "Bangalore", State: "Karnataka", Country: "India",
				Latitude: bangaloreLat, Longitude: bangaloreLon, IsRemote: true,
			},
			Description: "Build amazing mobile experiences for millions of Ola users. Work with React Native and native technologies to create world-class ride-hailing apps.",
			Requirements: []string{
				"3+ years of mobile development",
				"Experience with React Native or Flutter",
				"Knowledge of iOS/Android native development",
				"Published apps in Play Store/App Store",
			},
			Responsibilities: []string{
				"Develop and maintain Ola consumer and driver apps",
				"Optimize app performance and user experience",
				"Implement new features and improvements",
			},
			Skills: []string{"React Native", "TypeScript", "iOS", "Android", "Firebase"},
			Salary: types.Salary{Min: 1500000, Max: 2800000, Currency: "INR", Period: types.PeriodYearly, IsNegotiable: true},
			EmploymentType:  types.EmploymentFullTime,
			ExperienceLevel: types.ExperienceMid,
			PostedAt:        now.Add(-8 * 24 * time.Hour),
			IsRemote:        true,
			IsFeatured:      false,
			MatchScore:      65,
		},
	}
}
