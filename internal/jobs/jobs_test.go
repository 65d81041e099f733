package jobs

import (
	"testing"

	"github.com/qatth/careerscan/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, 9)

	seen := make(map[string]bool)
	for _, job := range catalog {
		assert.NotEmpty(t, job.ID)
		assert.NotEmpty(t, job.Title)
		assert.NotEmpty(t, job.Tags)
		assert.False(t, seen[job.ID], "duplicate job id %s", job.ID)
		seen[job.ID] = true
	}
}

func TestByID(t *testing.T) {
	job, ok := ByID("fe-01")
	require.True(t, ok)
	assert.Equal(t, "Frontend Developer (React + Tailwind)", job.Title)

	_, ok = ByID("missing")
	assert.False(t, ok)
}

func TestMatchScore(t *testing.T) {
	skills := []string{"react", "docker", "aws"}

	// Tags are compared whole and case-insensitively: "React" hits the
	// "react" skill, "Node.js" does not hit "node".
	assert.Equal(t, 50, MatchScore([]string{"React", "Vue"}, skills))
	assert.Equal(t, 0, MatchScore([]string{"Node.js"}, skills))
	assert.Equal(t, 100, MatchScore([]string{"AWS", "Docker"}, skills))
	assert.Equal(t, 0, MatchScore(nil, skills))
	assert.Equal(t, 0, MatchScore([]string{"React"}, nil))
}

func TestMatchScore_Rounds(t *testing.T) {
	// One of three tags = 33.33..., rounded to 33.
	assert.Equal(t, 33, MatchScore([]string{"React", "Vue", "Angular"}, []string{"react"}))
}

func TestMatchCatalog(t *testing.T) {
	backend := storage.NewMemoryStore()
	require.NoError(t, storage.SetJSON(backend, storage.KeyCVSkills, []string{"react", "aws"}))

	matches := MatchCatalog(backend)
	require.Len(t, matches, len(Catalog()))

	byID := make(map[string]int)
	for _, match := range matches {
		byID[match.Job.ID] = match.MatchScore
	}
	// fs-01 tags: React, Node.js, AWS. Two of three hit.
	assert.Equal(t, 67, byID["fs-01"])
	// ui-01 tags: Figma, Design System. No hits.
	assert.Equal(t, 0, byID["ui-01"])
}

func TestMatchCatalog_NoScan(t *testing.T) {
	for _, match := range MatchCatalog(storage.NewMemoryStore()) {
		assert.Equal(t, 0, match.MatchScore)
	}
}
