package classifier

import (
	"fmt"
	"strings"
)

type Intent string

const (
	IntentBookConsultation Intent = "book_consultation"
	IntentPracticeAreas    Intent = "practice_areas"
	IntentAreaDetail       Intent = "area_detail"
	IntentAttorneys        Intent = "attorneys"
	IntentContactInfo      Intent = "contact_info"
	IntentHelp             Intent = "help"
	IntentSmallTalk        Intent = "small_talk"
)

// Result is the classifier output for a single message.
type Result struct {
	Reply       string
	Intent      Intent
	Suggestions []string
}

// HelpText is the canned reply for the help intent.
const HelpText = "I'm your AI legal assistant. I can: book a consultation, share our practice areas, " +
	"explain attorney bios, provide office hours and location, and help with contact details."

const (
	bookReply = "I can help you schedule a consultation. Would you like a 15-minute call or a 30-minute meeting? " +
		"You can also use the contact form below and we’ll confirm by email."
	attorneysReply = "Our attorneys combine top-tier expertise with practical business insight. " +
		"You can review profiles below and choose who you'd like to meet."
	areaFallbackReply = "We cover several areas. Which practice are you interested in?"
	smallTalkReply    = "I’m your AI legal assistant. Ask about practice areas, attorney bios, or say 'book a consultation'."
)

// Classify maps a free-text message to a reply, an intent label, and
// follow-up suggestions. Rules are checked in order and the first match
// wins, so a message hitting several trigger sets resolves to the earliest
// branch. Pure function over the read-only profile: same input, same output.
func (p *Profile) Classify(message string) Result {
	text := strings.ToLower(strings.TrimSpace(message))

	if containsAny(text, []string{"book", "consult", "appointment", "schedule"}) {
		return Result{
			Reply:       bookReply,
			Intent:      IntentBookConsultation,
			Suggestions: []string{"15-minute call", "30-minute meeting", "Contact form"},
		}
	}
	if containsAny(text, []string{"practice", "services", "areas", "specialize", "what do you do"}) {
		return Result{
			Reply: fmt.Sprintf("We focus on %s. Ask about any area for more details, for example: 'Tell me about Corporate'.",
				strings.Join(p.areaTitles(), ", ")),
			Intent:      IntentPracticeAreas,
			Suggestions: p.areaTitles(),
		}
	}
	if containsAny(text, []string{"corporate", "litigation", "ip", "intellectual", "employment", "real estate"}) {
		// Scan areas in profile order. The extra "ip"/"intellectual" clause is
		// kept as-is from the original rule set even though the trigger set
		// above already covers it.
		reply := areaFallbackReply
		for _, area := range p.Areas {
			if strings.Contains(text, area.Key) ||
				(area.Key == "ip" && (strings.Contains(text, "ip") || strings.Contains(text, "intellectual"))) {
				reply = area.Description
				break
			}
		}
		return Result{
			Reply:       reply,
			Intent:      IntentAreaDetail,
			Suggestions: []string{"Book a consultation", "View attorneys"},
		}
	}
	if containsAny(text, []string{"attorney", "lawyer", "team", "who"}) {
		return Result{
			Reply:       attorneysReply,
			Intent:      IntentAttorneys,
			Suggestions: []string{"View attorneys", "Book a consultation"},
		}
	}
	if containsAny(text, []string{"contact", "email", "phone", "address", "location", "hours"}) {
		return Result{
			Reply: fmt.Sprintf("You can reach us at %s or %s. We’re available %s, at %s.",
				p.Contact.Phone, p.Contact.Email, p.Contact.Hours, p.Contact.Address),
			Intent:      IntentContactInfo,
			Suggestions: []string{"Get directions", "Send an email", "Call now"},
		}
	}
	if containsAny(text, []string{"help", "what can you do", "how do you work"}) {
		return Result{
			Reply:       HelpText,
			Intent:      IntentHelp,
			Suggestions: []string{"Practice areas", "Book consultation", "Contact"},
		}
	}
	return Result{
		Reply:       smallTalkReply,
		Intent:      IntentSmallTalk,
		Suggestions: []string{"Practice areas", "Book consultation", "Contact"},
	}
}

// areaTitles returns the practice-area keys title-cased, in profile order.
func (p *Profile) areaTitles() []string {
	out := make([]string, 0, len(p.Areas))
	for _, area := range p.Areas {
		out = append(out, titleCase(area.Key))
	}
	return out
}

// titleCase uppercases the first letter of each space-separated word, so
// "real estate" becomes "Real Estate" and "ip" becomes "Ip".
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
