// Package chatbot is the scripted CV-advice bot. Replies come from a
// fixed pattern list over the cached scan results; there is no model
// behind it.
package chatbot

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/qatth/careerscan/internal/storage"
	"github.com/qatth/careerscan/internal/types"
)

// Greeting opens every conversation.
const Greeting = "Hi! I'm the QATTH bot. Paste your CV text or ask me about improving your CV and finding a direction."

var (
	skillPattern    = regexp.MustCompile(`(?i)\bskills?\b`)
	rolePattern     = regexp.MustCompile(`(?i)\brole\b|\bcareer\b|\bposition\b|\bfit\b`)
	improvePattern  = regexp.MustCompile(`(?i)\bcv\b|\bresume\b|\bimprove\b|\boptimi[sz]e\b`)
	greetingPattern = regexp.MustCompile(`(?i)^\s*(hi|hello|hey)\b`)
)

// Bot answers scripted questions using the cached skills and role
// matches left behind by the scanner.
type Bot struct {
	storage storage.Store
}

// New builds a Bot over the given cache.
func New(backend storage.Store) *Bot {
	return &Bot{storage: backend}
}

// Reply produces the scripted answer for one user message. Patterns are
// checked in priority order; anything unmatched gets the usage hint.
func (b *Bot) Reply(message string) string {
	switch {
	case skillPattern.MatchString(message):
		return b.skillsReply()
	case rolePattern.MatchString(message):
		return b.rolesReply()
	case improvePattern.MatchString(message):
		return "Quick tips: describe each position with 4-6 bullets starting with a strong verb (Built, Optimized...), add numbers (%/time) for credibility, and link your GitHub or portfolio."
	case greetingPattern.MatchString(message):
		return "Hello! What can I help you with today, your CV or interview prep?"
	default:
		return `You can ask things like: "What are my strongest skills?", "Which roles fit me?", or "How do I improve the projects section of my CV?".`
	}
}

func (b *Bot) skillsReply() string {
	skills := b.cachedSkills()
	if len(skills) == 0 {
		return "Scan your CV on the scanner page first and I'll pick out your skills."
	}
	return fmt.Sprintf("Here are the standout skills in your CV: %s.", strings.Join(skills, ", "))
}

func (b *Bot) rolesReply() string {
	roles := b.cachedRoles()
	if len(roles) == 0 {
		return "Once you've scanned your CV I can suggest roles based on your skills."
	}

	top := roles
	if len(top) > 3 {
		top = top[:3]
	}
	parts := make([]string, len(top))
	for i, role := range top {
		parts[i] = fmt.Sprintf("%s (%d%%)", role.Title, int(math.Round(role.Score*100)))
	}
	return fmt.Sprintf("Your top role suggestions: %s. Open the jobs page to see matching listings and apply.", strings.Join(parts, "; "))
}

func (b *Bot) cachedSkills() []string {
	var skills []string
	if _, err := storage.GetJSON(b.storage, storage.KeyCVSkills, &skills); err != nil {
		return nil
	}
	return skills
}

func (b *Bot) cachedRoles() []types.RoleMatch {
	var roles []types.RoleMatch
	if _, err := storage.GetJSON(b.storage, storage.KeyCVRoles, &roles); err != nil {
		return nil
	}
	return roles
}
