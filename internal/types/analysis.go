package types

// RoleProfile is a named job-role archetype with a fixed list of required skill tokens.
type RoleProfile struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	RequiredSkills []string `json:"skills"`
}

// RoleMatch reports how well a CV's extracted skills cover one role profile.
// Score is Overlap divided by the number of required skills, so it is
// always in [0, 1].
type RoleMatch struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Overlap int     `json:"overlap"`
	Score   float64 `json:"score"`
}

// AnalysisResult is the full output of analyzing one CV text: the skill
// tokens found in the text (in dictionary order) and every role profile
// ranked by score.
type AnalysisResult struct {
	Skills      []string    `json:"skills"`
	RoleMatches []RoleMatch `json:"role_matches"`
}
