package db

import (
	"time"

	"github.com/google/uuid"
)

// User is the stored profile owned by the external user-management system.
// This service only reads it.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Skill is a single skill attached to a user profile.
type Skill struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Level     string    `json:"level,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Education is an education entry attached to a user profile.
type Education struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	School    string    `json:"school"`
	Degree    string    `json:"degree,omitempty"`
	Field     string    `json:"field,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UserProfile is a user with skills and education eagerly loaded,
// in the order they were recorded. This is the shape serialized into prompts.
type UserProfile struct {
	User
	Skills    []Skill     `json:"skills"`
	Education []Education `json:"education"`
}

// Table names for generated records, one per endpoint.
const (
	TableCareerGuidance    = "career_guidance"
	TableCareerPaths       = "career_paths"
	TableCoverLetters      = "cover_letters"
	TableIndustryInsights  = "industry_insights"
	TableInterviewSessions = "interview_sessions"
	TableJobApplications   = "job_applications"
	TableJobSearches       = "job_searches"
	TableLinkedInProfiles  = "linkedin_profiles"
	TableOnboardings       = "onboardings"
	TableResumes           = "resumes"
)

// StatusDraft is the initial lifecycle state assigned to every stored record.
// No further transitions are implemented here.
const StatusDraft = "draft"
