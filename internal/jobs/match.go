package jobs

import (
	"math"
	"strings"

	"github.com/qatth/careerscan/internal/storage"
	"github.com/qatth/careerscan/internal/types"
)

// MatchScore is the percentage of a listing's tags covered by the
// candidate's skills, compared case-insensitively. A listing with no
// tags scores zero rather than dividing by zero.
func MatchScore(tags []string, skills []string) int {
	if len(tags) == 0 {
		return 0
	}

	skillSet := make(map[string]bool, len(skills))
	for _, skill := range skills {
		skillSet[strings.ToLower(skill)] = true
	}

	hits := 0
	for _, tag := range tags {
		if skillSet[strings.ToLower(tag)] {
			hits++
		}
	}
	return int(math.Round(float64(hits) / float64(len(tags)) * 100))
}

// MatchCatalog scores every listing against the cached skills from the
// last scan. Without a cached scan every listing scores zero.
func MatchCatalog(backend storage.Store) []types.JobMatch {
	var skills []string
	_, _ = storage.GetJSON(backend, storage.KeyCVSkills, &skills)

	catalog := Catalog()
	matches := make([]types.JobMatch, 0, len(catalog))
	for _, job := range catalog {
		matches = append(matches, types.JobMatch{
			Job:        job,
			MatchScore: MatchScore(job.Tags, skills),
		})
	}
	return matches
}
