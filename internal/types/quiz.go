package types

// QuizQuestion is one multiple-choice question produced by the remote
// quiz workflow.
type QuizQuestion struct {
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Difficulty string   `json:"difficulty"`
}

// Quiz is the set of questions generated from a CV.
type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
}

// ImprovementArea is one prioritized suggestion from the answer review.
type ImprovementArea struct {
	Area     string `json:"area"`
	Priority string `json:"priority"`
}

// AnswerReview is the structured analysis returned for a CV plus
// submitted quiz answers.
type AnswerReview struct {
	Summary      string            `json:"summary"`
	Strengths    []string          `json:"strengths"`
	Improvements []ImprovementArea `json:"improvements"`
	RoleFits     []string          `json:"role_fits"`
	Confidence   string            `json:"confidence"`
}
