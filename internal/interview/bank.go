// Package interview provides the mock-interview question banks and the
// keyword scoring applied to spoken answers.
package interview

import (
	"github.com/qatth/careerscan/internal/storage"
	"github.com/qatth/careerscan/internal/types"
)

// GenericBank is the fallback bank used when no scanned role maps to a
// dedicated question set.
const GenericBank = "generic"

// Question is one interview prompt with the keywords a good answer is
// expected to touch.
type Question struct {
	Text     string   `json:"text"`
	Keywords []string `json:"keywords"`
}

var banks = map[string][]Question{
	GenericBank: {
		{Text: "Give a short introduction of yourself and your career goals.", Keywords: []string{"goal", "experience", "strength"}},
		{Text: "Tell me about a recent project you are most proud of.", Keywords: []string{"project", "result", "role"}},
		{Text: "Describe a technical problem you hit and how you solved it.", Keywords: []string{"problem", "solution", "lesson"}},
	},
	"frontend": {
		{Text: "What is the difference between state and props in React?", Keywords: []string{"state", "props"}},
		{Text: "How do you optimize React rendering performance?", Keywords: []string{"memo", "usememo", "usecallback"}},
		{Text: "Explain how CSS specificity works.", Keywords: []string{"specificity", "priority"}},
	},
	"backend": {
		{Text: "Compare REST and GraphQL.", Keywords: []string{"rest", "graphql"}},
		{Text: "How do you design foreign keys and indexes in SQL?", Keywords: []string{"index", "foreign key"}},
		{Text: "How would you implement JWT authentication?", Keywords: []string{"jwt", "token"}},
	},
	"data-analyst": {
		{Text: "Walk me through your usual ETL process.", Keywords: []string{"etl", "clean", "transform"}},
		{Text: "Write a SQL query for the top 5 best-selling products.", Keywords: []string{"sql", "group", "order"}},
		{Text: "When would you use the median instead of the mean?", Keywords: []string{"median", "mean", "outlier"}},
	},
}

// BankFor returns the question bank for a role id, falling back to the
// generic bank for roles without a dedicated set (fullstack, devops and
// the rest share the generic questions).
func BankFor(roleID string) (string, []Question) {
	if questions, ok := banks[roleID]; ok {
		return roleID, questions
	}
	return GenericBank, banks[GenericBank]
}

// SelectBank picks the bank for the top cached role match. With no scan
// cached it returns the generic bank.
func SelectBank(backend storage.Store) (string, []Question) {
	var roles []types.RoleMatch
	if _, err := storage.GetJSON(backend, storage.KeyCVRoles, &roles); err != nil || len(roles) == 0 {
		return GenericBank, banks[GenericBank]
	}
	return BankFor(roles[0].ID)
}
