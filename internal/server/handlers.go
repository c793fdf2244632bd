package server

import (
	"encoding/json"
	"log"
	"net/http"

	"careercoach/internal/coach"
	"careercoach/internal/db"
	"careercoach/internal/market"
)

// decodeBody decodes a JSON request body into a parameter map.
func decodeBody(r *http.Request) (map[string]any, error) {
	var params map[string]any
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		return nil, &coach.ValidationError{Message: "Invalid request body"}
	}
	if params == nil {
		params = map[string]any{}
	}
	return params, nil
}

func str(params map[string]any, key string) string {
	s, _ := params[key].(string)
	return s
}

// handleGenerate adapts one declarative pipeline endpoint to HTTP.
func (s *Server) handleGenerate(ep coach.Endpoint) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := decodeBody(r)
		if err != nil {
			s.errorResponse(w, err)
			return
		}

		resp, err := s.pipeline.Run(r.Context(), ep, params)
		if err != nil {
			s.errorResponse(w, err)
			return
		}

		s.jsonResponse(w, http.StatusOK, resp)
	}
}

// handleResume generates resume content and then evaluates it with a second
// generation call. Only the content is persisted; the evaluation's ATS score
// is response-only.
func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	params, err := decodeBody(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	if err := coach.RequireFields(params, []string{"userId", "targetRole", "industry"}); err != nil {
		s.errorResponse(w, err)
		return
	}

	userID := str(params, "userId")
	targetRole := str(params, "targetRole")
	industry := str(params, "industry")

	profile, err := s.pipeline.Profile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	art, err := s.pipeline.Generate(r.Context(), coach.ResumePrompt(profile, targetRole, industry))
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	if problems := art.CheckShape(coach.ResumeShape); len(problems) > 0 {
		log.Printf("resume: artifact shape mismatch: %v", problems)
	}

	payload := coach.ResponsePayload(art, []string{"content", "feedback", "improvementTip"})

	// Evaluating an unparseable artifact would just embed the sentinel in
	// the prompt, so the second call only runs for real content.
	if !art.Degraded {
		eval, err := s.pipeline.Generate(r.Context(),
			coach.ResumeEvaluationPrompt(art.Get("content"), targetRole, industry))
		if err != nil {
			s.errorResponse(w, err)
			return
		}
		if score := eval.Get("atsScore"); score != nil {
			payload["atsScore"] = score
		}
	}

	cols := map[string]any{
		"user_id":     userID,
		"target_role": targetRole,
		"industry":    industry,
		"content":     art.Get("content"),
		"status":      db.StatusDraft,
	}
	if err := s.pipeline.Insert(r.Context(), db.TableResumes, cols); err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"userId": userID,
		"resume": payload,
	})
}

// handleIndustryPulse generates industry insights from market data. The
// subject is an industry rather than a user, so no profile is resolved.
func (s *Server) handleIndustryPulse(w http.ResponseWriter, r *http.Request) {
	industry := r.URL.Query().Get("industry")
	if industry == "" {
		s.errorResponse(w, &coach.ValidationError{Message: "Missing industry parameter"})
		return
	}

	data := market.Snapshot(industry)

	art, err := s.pipeline.Generate(r.Context(), coach.IndustryInsightsPrompt(data, industry))
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	if problems := art.CheckShape(coach.IndustryInsightsShape); len(problems) > 0 {
		log.Printf("industry-pulse: artifact shape mismatch: %v", problems)
	}

	cols := map[string]any{
		"industry":             industry,
		"salary_range":         data.SalaryRange,
		"growth_rate":          data.GrowthRate,
		"demand_level":         data.DemandLevel,
		"key_trends":           data.KeyTrends,
		"insights":             art.Get("insights"),
		"learning_suggestions": art.Get("learningSuggestions"),
		"status":               db.StatusDraft,
	}
	if err := s.pipeline.Insert(r.Context(), db.TableIndustryInsights, cols); err != nil {
		s.errorResponse(w, err)
		return
	}

	resp := map[string]any{
		"industry":   industry,
		"marketData": data,
	}
	for key, value := range coach.ResponsePayload(art, []string{"insights", "learningSuggestions"}) {
		resp[key] = value
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
