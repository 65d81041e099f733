// Package analysis extracts skill tokens from CV text and ranks role
// profiles by how many of their required skills the text covers.
package analysis

import "github.com/qatth/careerscan/internal/types"

// SkillDictionary returns the ordered set of lowercase skill tokens the
// analyzer matches against CV text. Tokens are matched as substrings,
// case-insensitively, with no word-boundary enforcement.
func SkillDictionary() []string {
	return []string{
		"javascript", "typescript", "react", "vue", "angular", "html", "css", "tailwind", "vite", "webpack",
		"node", "express", "nestjs", "java", "spring", "go", "python", "django", "fastapi", "flask",
		"sql", "mysql", "postgres", "mongodb", "redis", "graphql", "rest", "api", "docker", "kubernetes",
		"aws", "gcp", "azure", "linux", "git", "github", "gitlab", "ci", "cd", "terraform",
		"pandas", "numpy", "matplotlib", "power bi", "tableau", "excel", "spark", "hadoop",
		"machine learning", "deep learning", "pytorch", "tensorflow", "nlp", "computer vision",
		"testing", "selenium", "cypress", "jest", "playwright", "qa", "automation",
		"figma", "ui", "ux", "product", "scrum", "agile", "jira", "communication",
	}
}

// DefaultRoleProfiles returns the fixed set of role archetypes in
// declaration order. Declaration order is the tiebreak for equal scores.
func DefaultRoleProfiles() []types.RoleProfile {
	return []types.RoleProfile{
		{ID: "frontend", Title: "Frontend Developer", RequiredSkills: []string{"javascript", "typescript", "react", "html", "css", "tailwind", "vite"}},
		{ID: "backend", Title: "Backend Developer", RequiredSkills: []string{"node", "express", "sql", "mongodb", "api", "docker"}},
		{ID: "fullstack", Title: "Fullstack Developer", RequiredSkills: []string{"javascript", "react", "node", "express", "sql", "docker"}},
		{ID: "data-analyst", Title: "Data Analyst", RequiredSkills: []string{"python", "pandas", "sql", "excel", "power bi", "tableau"}},
		{ID: "ai-engineer", Title: "AI/ML Engineer", RequiredSkills: []string{"python", "pytorch", "tensorflow", "machine learning", "deep learning", "nlp"}},
		{ID: "qa", Title: "QA Automation", RequiredSkills: []string{"testing", "selenium", "cypress", "jest", "automation"}},
		{ID: "devops", Title: "DevOps Engineer", RequiredSkills: []string{"aws", "docker", "kubernetes", "ci", "cd", "linux", "terraform"}},
		{ID: "product", Title: "Product Designer/Manager", RequiredSkills: []string{"figma", "ui", "ux", "product", "scrum", "agile", "communication"}},
	}
}
