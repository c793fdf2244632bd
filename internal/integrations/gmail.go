// Package integrations holds the external job-tracker integrations.
// Both the Gmail and Calendar integrations are mocked: they return hardcoded
// stand-ins with the same shapes the real APIs would produce.
package integrations

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParsedEmail is one application-related email reduced to subject and plain text.
type ParsedEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ParseApplicationEmails returns application-related emails for the user.
// TODO: integrate the Gmail API; the mock returns two fixed messages.
// Bodies arrive as HTML and are stripped to text before anything stores them.
func ParseApplicationEmails(_ context.Context, userID string) ([]ParsedEmail, error) {
	mocked := []ParsedEmail{
		{Subject: "Application Confirmation", Body: "<p>Your application has been received.</p>"},
		{Subject: "Interview Invitation", Body: "<p>You are invited for an <b>interview</b>.</p>"},
	}

	emails := make([]ParsedEmail, 0, len(mocked))
	for _, m := range mocked {
		text, err := stripHTML(m.Body)
		if err != nil {
			// Keep the raw body rather than dropping the email.
			text = m.Body
		}
		emails = append(emails, ParsedEmail{Subject: m.Subject, Body: text})
	}
	return emails, nil
}

// stripHTML reduces an HTML email body to its visible text.
func stripHTML(body string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Text()), nil
}
