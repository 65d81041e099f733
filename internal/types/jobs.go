package types

// Job is one listing in the static job catalog.
type Job struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Salary           string   `json:"salary,omitempty"`
	Tags             []string `json:"tags"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	Benefits         []string `json:"benefits"`
}

// JobMatch pairs a listing with the percentage of its tags covered by the
// candidate's extracted skills.
type JobMatch struct {
	Job        Job `json:"job"`
	MatchScore int `json:"match_score"`
}
