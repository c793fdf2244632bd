package integrations

import "context"

// InterviewDetails describes the interview to schedule.
type InterviewDetails struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Date     string `json:"date"`
}

// InterviewEvent is the scheduled calendar event.
type InterviewEvent struct {
	EventID string `json:"eventId"`
	Status  string `json:"status"`
}

// ScheduleInterview books an interview slot for the user.
// TODO: integrate the Calendar API; the mock confirms a fixed event.
func ScheduleInterview(_ context.Context, userID string, details InterviewDetails) (*InterviewEvent, error) {
	return &InterviewEvent{
		EventID: "event123",
		Status:  "scheduled",
	}, nil
}
