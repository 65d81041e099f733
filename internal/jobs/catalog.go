// Package jobs holds the static job catalog and scores listings against
// the candidate's extracted skills.
package jobs

import "github.com/qatth/careerscan/internal/types"

// Catalog returns the fixed set of listings shown on the jobs surface.
func Catalog() []types.Job {
	return []types.Job{
		{
			ID: "fe-01", Title: "Frontend Developer (React + Tailwind)", Company: "QATTH Labs",
			Location: "Hanoi / Hybrid", Salary: "$1200 - $1800",
			Tags:        []string{"React", "TypeScript", "Tailwind", "Vite"},
			Description: "Build modern web interfaces for a recruitment and interview platform.",
			Responsibilities: []string{
				"Build components and layouts from designs and guidelines",
				"Optimize performance, SEO and accessibility (a11y)",
				"Write basic unit tests and take part in code review",
			},
			Requirements: []string{
				"1-3 years of experience with React",
				"Fluent in TypeScript and Tailwind",
				"Understanding of state management and REST/GraphQL",
			},
			Benefits: []string{"Macbook/PC of your choice", "13th month salary", "Full insurance", "Hybrid work"},
		},
		{
			ID: "be-01", Title: "Backend Developer (Node.js)", Company: "QATTH Labs",
			Location: "Ho Chi Minh City / Remote", Salary: "$1300 - $2000",
			Tags:        []string{"Node.js", "Express", "PostgreSQL", "Docker"},
			Description: "Design and build the APIs behind the recruitment management system.",
			Responsibilities: []string{
				"Design the database and optimize queries",
				"Build secure REST/GraphQL APIs",
				"Set up basic CI/CD",
			},
			Requirements: []string{
				"Experience with Node.js/Express/NestJS",
				"Working knowledge of SQL, Docker, Redis",
				"Testing experience is a plus",
			},
			Benefits: []string{"Insurance", "Remote", "Performance bonuses"},
		},
		{
			ID: "fs-01", Title: "Fullstack Developer", Company: "FinTech Next",
			Location: "Da Nang / Hybrid", Salary: "$1500 - $2300",
			Tags:             []string{"React", "Node.js", "AWS"},
			Description:      "Ship payment features end to end.",
			Responsibilities: []string{"Develop frontend and backend", "Write tests and monitor", "Optimize infrastructure cost"},
			Requirements:     []string{"React, Node.js", "Basic AWS", "Good communication skills"},
			Benefits:         []string{"Competitive compensation", "On-site opportunities"},
		},
		{
			ID: "da-01", Title: "Data Analyst", Company: "Retail Insight",
			Location: "Hanoi", Salary: "$900 - $1400",
			Tags:             []string{"Python", "Pandas", "SQL", "Power BI"},
			Description:      "Analyze retail data and build dashboards for the sales team.",
			Responsibilities: []string{"Clean and visualize data", "Produce recurring reports", "Run A/B tests"},
			Requirements:     []string{"Python/Pandas", "SQL", "Power BI/Tableau"},
			Benefits:         []string{"Company laptop", "Internal training"},
		},
		{
			ID: "ai-01", Title: "AI/ML Engineer", Company: "VisionX",
			Location: "Ho Chi Minh City", Salary: "$1800 - $3000",
			Tags:             []string{"Python", "Pytorch", "NLP/CV"},
			Description:      "Build training and deployment pipelines for NLP/CV models.",
			Responsibilities: []string{"Collect data", "Train and evaluate models", "Deploy inference"},
			Requirements:     []string{"Pytorch/Tensorflow", "Basic MLOps", "Hands-on project experience"},
			Benefits:         []string{"Compute budget", "Research support"},
		},
		{
			ID: "qa-01", Title: "QA Automation Engineer", Company: "QATTH Labs",
			Location: "Hybrid", Salary: "$1000 - $1500",
			Tags:             []string{"Selenium", "Cypress", "Jest"},
			Description:      "Set up the automated testing process for the webapp.",
			Responsibilities: []string{"Write E2E tests", "Design test plans", "Report on quality"},
			Requirements:     []string{"Selenium/Cypress", "CI experience", "Attention to detail"},
			Benefits:         []string{"Flexible hours"},
		},
		{
			ID: "devops-01", Title: "DevOps Engineer", Company: "CloudWise",
			Location: "Remote", Salary: "$1800 - $2600",
			Tags:             []string{"AWS", "Docker", "Kubernetes", "Terraform"},
			Description:      "Run the cloud infrastructure, improve CI/CD and observability.",
			Responsibilities: []string{"Set up pipelines", "Automate infrastructure", "Monitor systems"},
			Requirements:     []string{"AWS, Docker, K8s", "Terraform", "Linux/Networking"},
			Benefits:         []string{"100% remote", "Equipment package"},
		},
		{
			ID: "pm-01", Title: "Product Manager", Company: "EduNext",
			Location: "Hanoi", Salary: "$1500 - $2200",
			Tags:             []string{"Agile", "Scrum", "UX"},
			Description:      "Lead a digital education product, working across several teams.",
			Responsibilities: []string{"Define the roadmap", "Analyze user insights", "Write PRDs and user stories"},
			Requirements:     []string{"Product thinking", "Communication skills", "Basic UX knowledge"},
			Benefits:         []string{"PM training", "Structured growth path"},
		},
		{
			ID: "ui-01", Title: "UI/UX Designer", Company: "Studio 7",
			Location: "Ho Chi Minh City", Salary: "$900 - $1500",
			Tags:             []string{"Figma", "Design System"},
			Description:      "Design friendly interfaces and build the design system.",
			Responsibilities: []string{"User research", "Rapid prototyping", "Developer handoff"},
			Requirements:     []string{"Figma", "Presentation skills", "a11y awareness"},
			Benefits:         []string{"Flexible schedule"},
		},
	}
}

// ByID finds a listing by id.
func ByID(id string) (types.Job, bool) {
	for _, job := range Catalog() {
		if job.ID == id {
			return job, true
		}
	}
	return types.Job{}, false
}
