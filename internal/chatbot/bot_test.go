package chatbot

import (
	"strings"
	"testing"

	"github.com/qatth/careerscan/internal/storage"
	"github.com/qatth/careerscan/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededBot(t *testing.T) *Bot {
	t.Helper()
	backend := storage.NewMemoryStore()
	require.NoError(t, storage.SetJSON(backend, storage.KeyCVSkills, []string{"react", "node", "docker"}))
	require.NoError(t, storage.SetJSON(backend, storage.KeyCVRoles, []types.RoleMatch{
		{ID: "fullstack", Title: "Fullstack Developer", Overlap: 3, Score: 0.5},
		{ID: "backend", Title: "Backend Developer", Overlap: 3, Score: 0.5},
		{ID: "frontend", Title: "Frontend Developer", Overlap: 1, Score: 0.14},
		{ID: "devops", Title: "DevOps Engineer", Overlap: 1, Score: 0.14},
	}))
	return New(backend)
}

func TestReply_SkillsQuestion(t *testing.T) {
	bot := seededBot(t)
	reply := bot.Reply("What skills do I have?")
	assert.Contains(t, reply, "react")
	assert.Contains(t, reply, "node")
	assert.Contains(t, reply, "docker")
}

func TestReply_SkillsQuestionWithoutScan(t *testing.T) {
	bot := New(storage.NewMemoryStore())
	reply := bot.Reply("what are my skills?")
	assert.Contains(t, reply, "Scan your CV")
}

func TestReply_RolesQuestion(t *testing.T) {
	bot := seededBot(t)
	reply := bot.Reply("Which role would fit me best?")
	assert.Contains(t, reply, "Fullstack Developer (50%)")
	assert.Contains(t, reply, "Backend Developer (50%)")
	// Only the top three suggestions are listed.
	assert.NotContains(t, reply, "DevOps")
}

func TestReply_RolesQuestionWithoutScan(t *testing.T) {
	bot := New(storage.NewMemoryStore())
	reply := bot.Reply("which position fits me?")
	assert.Contains(t, reply, "scanned your CV")
}

func TestReply_ImproveQuestion(t *testing.T) {
	bot := seededBot(t)
	reply := bot.Reply("How can I improve my resume?")
	assert.Contains(t, reply, "bullets")
}

func TestReply_Greeting(t *testing.T) {
	bot := seededBot(t)
	assert.True(t, strings.HasPrefix(bot.Reply("hello there"), "Hello!"))
	assert.True(t, strings.HasPrefix(bot.Reply("Hi"), "Hello!"))
}

func TestReply_Fallback(t *testing.T) {
	bot := seededBot(t)
	reply := bot.Reply("what's the weather like?")
	assert.Contains(t, reply, "You can ask")
}

func TestReply_SkillPatternWinsOverGreeting(t *testing.T) {
	bot := seededBot(t)
	// Patterns are checked in priority order, matching the scripted source.
	reply := bot.Reply("hi, can you list my skills?")
	assert.Contains(t, reply, "react")
}
