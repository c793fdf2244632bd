package integrations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseApplicationEmails_StripsHTML(t *testing.T) {
	emails, err := ParseApplicationEmails(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, emails, 2)

	assert.Equal(t, "Application Confirmation", emails[0].Subject)
	assert.Equal(t, "Your application has been received.", emails[0].Body)
	assert.Equal(t, "You are invited for an interview.", emails[1].Body)
	assert.NotContains(t, emails[1].Body, "<b>")
}

func TestScheduleInterview(t *testing.T) {
	event, err := ScheduleInterview(context.Background(), "u1", InterviewDetails{
		Company:  "Google",
		Position: "Software Engineer",
		Date:     "2026-09-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "event123", event.EventID)
	assert.Equal(t, "scheduled", event.Status)
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "no markup here", "no markup here"},
		{"nested", "<div><p>Hello <em>there</em></p></div>", "Hello there"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := stripHTML(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
