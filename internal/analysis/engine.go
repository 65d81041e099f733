package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/qatth/careerscan/internal/types"
)

// Engine holds a validated skill dictionary and role profile set and
// performs CV text analysis against them. Analyze is pure: the same
// input text always produces the same result.
type Engine struct {
	dictionary []string
	dictSet    map[string]bool
	profiles   []types.RoleProfile
}

// NewEngine builds an Engine from a skill dictionary and role profiles.
// Misconfigured profiles fail here rather than at analysis time: every
// profile must have a non-empty, duplicate-free required-skill list
// drawn from the dictionary, and profile IDs must be unique.
func NewEngine(dictionary []string, profiles []types.RoleProfile) (*Engine, error) {
	if len(dictionary) == 0 {
		return nil, fmt.Errorf("skill dictionary is empty")
	}

	dictSet := make(map[string]bool, len(dictionary))
	for _, token := range dictionary {
		if token == "" {
			return nil, fmt.Errorf("skill dictionary contains an empty token")
		}
		if token != strings.ToLower(token) {
			return nil, fmt.Errorf("skill token %q is not lowercase", token)
		}
		if dictSet[token] {
			return nil, fmt.Errorf("duplicate skill token %q in dictionary", token)
		}
		dictSet[token] = true
	}

	seenIDs := make(map[string]bool, len(profiles))
	for _, profile := range profiles {
		if profile.ID == "" {
			return nil, fmt.Errorf("role profile %q has an empty id", profile.Title)
		}
		if seenIDs[profile.ID] {
			return nil, fmt.Errorf("duplicate role profile id %q", profile.ID)
		}
		seenIDs[profile.ID] = true

		if len(profile.RequiredSkills) == 0 {
			return nil, fmt.Errorf("role profile %q has no required skills", profile.ID)
		}
		seenSkills := make(map[string]bool, len(profile.RequiredSkills))
		for _, skill := range profile.RequiredSkills {
			if !dictSet[skill] {
				return nil, fmt.Errorf("role profile %q requires %q, which is not in the skill dictionary", profile.ID, skill)
			}
			if seenSkills[skill] {
				return nil, fmt.Errorf("role profile %q lists %q twice", profile.ID, skill)
			}
			seenSkills[skill] = true
		}
	}

	return &Engine{
		dictionary: dictionary,
		dictSet:    dictSet,
		profiles:   profiles,
	}, nil
}

// NewDefaultEngine builds an Engine over the built-in dictionary and
// role profiles. The built-in data is validated at startup; an error
// here means the embedded configuration itself is broken.
func NewDefaultEngine() (*Engine, error) {
	return NewEngine(SkillDictionary(), DefaultRoleProfiles())
}

// Analyze extracts the skill tokens present in text and ranks every role
// profile by coverage. Matching is substring containment on the
// lowercased text: no stemming and no word boundaries, so "java" matches
// inside "javascript". That trade of precision for simplicity is
// deliberate and load-bearing for downstream consumers.
func (e *Engine) Analyze(text string) *types.AnalysisResult {
	lower := strings.ToLower(text)

	skills := make([]string, 0)
	found := make(map[string]bool, len(e.dictionary))
	for _, token := range e.dictionary {
		if strings.Contains(lower, token) {
			skills = append(skills, token)
			found[token] = true
		}
	}

	matches := make([]types.RoleMatch, 0, len(e.profiles))
	for _, profile := range e.profiles {
		overlap := 0
		for _, skill := range profile.RequiredSkills {
			if found[skill] {
				overlap++
			}
		}
		matches = append(matches, types.RoleMatch{
			ID:      profile.ID,
			Title:   profile.Title,
			Overlap: overlap,
			Score:   float64(overlap) / float64(len(profile.RequiredSkills)),
		})
	}

	// Ties keep profile declaration order.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return &types.AnalysisResult{
		Skills:      skills,
		RoleMatches: matches,
	}
}

// Profiles returns the engine's role profiles in declaration order.
func (e *Engine) Profiles() []types.RoleProfile {
	return e.profiles
}
