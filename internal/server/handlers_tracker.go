package server

import (
	"net/http"
	"strings"

	"careercoach/internal/coach"
	"careercoach/internal/db"
	"careercoach/internal/integrations"
)

var trackerRequired = []string{"userId", "company", "position", "status", "source", "appliedDate"}

// trackerInput validates a job-tracker request and resolves the user.
// Both tracker variants share this prefix of the pipeline; the generation
// step is replaced by the mocked Gmail and Calendar integrations.
func (s *Server) trackerInput(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	params, err := decodeBody(r)
	if err != nil {
		s.errorResponse(w, err)
		return nil, false
	}
	if err := coach.RequireFields(params, trackerRequired); err != nil {
		s.errorResponse(w, err)
		return nil, false
	}
	if _, err := s.pipeline.Profile(r.Context(), str(params, "userId")); err != nil {
		s.errorResponse(w, err)
		return nil, false
	}
	return params, true
}

func trackerColumns(params map[string]any) map[string]any {
	return map[string]any{
		"user_id":      params["userId"],
		"company":      params["company"],
		"position":     params["position"],
		"status":       params["status"],
		"source":       params["source"],
		"applied_date": params["appliedDate"],
		"job_url":      params["jobUrl"],
		"description":  params["description"],
		"notes":        params["notes"],
	}
}

func trackerResponseFields(params map[string]any) map[string]any {
	return map[string]any{
		"company":     params["company"],
		"position":    params["position"],
		"status":      params["status"],
		"source":      params["source"],
		"appliedDate": params["appliedDate"],
		"jobUrl":      params["jobUrl"],
		"description": params["description"],
		"notes":       params["notes"],
	}
}

// handleJobApplicationTracker records a job application. Emails are parsed
// up front and an interview is scheduled before the insert when the
// application is already at the interview stage; both integration results
// are persisted with the record.
func (s *Server) handleJobApplicationTracker(w http.ResponseWriter, r *http.Request) {
	params, ok := s.trackerInput(w, r)
	if !ok {
		return
	}
	userID := str(params, "userId")

	emails, err := integrations.ParseApplicationEmails(r.Context(), userID)
	if err != nil {
		s.failureResponse(w, err)
		return
	}

	var event *integrations.InterviewEvent
	if strings.EqualFold(str(params, "status"), "interview") {
		event, err = integrations.ScheduleInterview(r.Context(), userID, integrations.InterviewDetails{
			Company:  str(params, "company"),
			Position: str(params, "position"),
			Date:     str(params, "appliedDate"),
		})
		if err != nil {
			s.failureResponse(w, err)
			return
		}
	}

	cols := trackerColumns(params)
	cols["parsed_emails"] = emails
	cols["interview_event"] = event
	if err := s.pipeline.Insert(r.Context(), db.TableJobApplications, cols); err != nil {
		s.errorResponse(w, err)
		return
	}

	application := trackerResponseFields(params)
	application["parsedEmails"] = emails
	application["interviewEvent"] = event

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"userId":         userID,
		"jobApplication": application,
	})
}

// handleJobTracker is the earlier tracker variant: the record is stored
// first and the interview (when applicable) is scheduled afterwards, with
// parsed emails reported alongside the application rather than inside it.
func (s *Server) handleJobTracker(w http.ResponseWriter, r *http.Request) {
	params, ok := s.trackerInput(w, r)
	if !ok {
		return
	}
	userID := str(params, "userId")

	emails, err := integrations.ParseApplicationEmails(r.Context(), userID)
	if err != nil {
		s.failureResponse(w, err)
		return
	}

	cols := trackerColumns(params)
	cols["parsed_emails"] = emails
	if err := s.pipeline.Insert(r.Context(), db.TableJobApplications, cols); err != nil {
		s.errorResponse(w, err)
		return
	}

	var event *integrations.InterviewEvent
	if strings.EqualFold(str(params, "status"), "interview") {
		event, err = integrations.ScheduleInterview(r.Context(), userID, integrations.InterviewDetails{
			Company:  str(params, "company"),
			Position: str(params, "position"),
			Date:     str(params, "appliedDate"),
		})
		if err != nil {
			s.failureResponse(w, err)
			return
		}
	}

	application := trackerResponseFields(params)
	application["interview"] = event

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"userId":         userID,
		"jobApplication": application,
		"parsedEmails":   emails,
	})
}
