package coach

import (
	"encoding/json"
	"fmt"

	"careercoach/internal/db"
	"careercoach/internal/market"
)

// profileJSON serializes a profile for embedding into a prompt.
func profileJSON(profile *db.UserProfile) string {
	data, err := json.Marshal(profile)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// paramJSON serializes an arbitrary request parameter for a prompt.
func paramJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(data)
}

func str(params map[string]any, key string) string {
	s, _ := params[key].(string)
	return s
}

// CareerGuidance generates personalized guidance for a target role.
var CareerGuidance = Endpoint{
	Name:        "career-guidance",
	ResponseKey: "careerGuidance",
	Table:       db.TableCareerGuidance,
	Required:    []string{"userId", "targetRole", "industry"},
	Params: []Field{
		{Key: "userId", Column: "user_id"},
		{Key: "targetRole", Column: "target_role"},
		{Key: "industry", Column: "industry"},
	},
	Store: []Field{
		{Key: "guidance", Column: "guidance"},
		{Key: "strategicAdvice", Column: "strategic_advice"},
		{Key: "growthSuggestions", Column: "growth_suggestions"},
	},
	Respond: []string{"guidance", "strategicAdvice", "growthSuggestions"},
	Prompt: func(profile *db.UserProfile, params map[string]any) string {
		return fmt.Sprintf(
			"You are an expert career coach. Generate personalized career guidance, strategic advice, and growth suggestions for the role of %s in the %s industry. Use this user profile: %s. Return as JSON: {guidance: string, strategicAdvice: string[], growthSuggestions: string[]}.",
			str(params, "targetRole"), str(params, "industry"), profileJSON(profile))
	},
	Shape: careerGuidanceShape,
}

// CareerPath generates a career path visualization toward a target role.
var CareerPath = Endpoint{
	Name:        "career-path",
	ResponseKey: "careerPath",
	Table:       db.TableCareerPaths,
	Required:    []string{"userId", "targetRole", "industry"},
	Params: []Field{
		{Key: "userId", Column: "user_id"},
		{Key: "targetRole", Column: "target_role"},
		{Key: "industry", Column: "industry"},
	},
	Store: []Field{
		{Key: "milestones", Column: "milestones"},
		{Key: "requiredSkills", Column: "required_skills"},
		{Key: "estimatedCompletionTime", Column: "estimated_completion_time"},
		{Key: "progressTracking", Column: "progress_tracking"},
	},
	Respond: []string{"milestones", "requiredSkills", "estimatedCompletionTime", "progressTracking"},
	Prompt: func(profile *db.UserProfile, params map[string]any) string {
		return fmt.Sprintf(
			"You are an expert career path analyst. Generate a real-world career path visualization for the role of %s in the %s industry. Use this user profile: %s. Return as JSON: {milestones: string[], requiredSkills: string[], estimatedCompletionTime: string, progressTracking: string}.",
			str(params, "targetRole"), str(params, "industry"), profileJSON(profile))
	},
	Shape: careerPathShape,
}

// CoverLetter generates an ATS-optimized cover letter for a specific job.
// Only the letter content is persisted; feedback fields are response-only.
var CoverLetter = Endpoint{
	Name:        "cover-letter",
	ResponseKey: "coverLetter",
	Table:       db.TableCoverLetters,
	Required:    []string{"userId", "jobDescription", "companyName", "jobTitle"},
	Params: []Field{
		{Key: "userId", Column: "user_id"},
		{Key: "jobDescription", Column: "job_description"},
		{Key: "companyName", Column: "company_name"},
		{Key: "jobTitle", Column: "job_title"},
	},
	Store: []Field{
		{Key: "content", Column: "content"},
	},
	Respond: []string{"content", "feedback", "improvementTip"},
	Prompt: func(profile *db.UserProfile, params map[string]any) string {
		return fmt.Sprintf(
			"You are an expert cover letter writer. Generate a personalized, ATS-optimized cover letter for the role of %s at %s. Use this user profile: %s and job description: %s. Return as JSON: {content: string, feedback: string, improvementTip: string}.",
			str(params, "jobTitle"), str(params, "companyName"), profileJSON(profile), str(params, "jobDescription"))
	},
	Shape: coverLetterShape,
}

// Interview generates preparation tips and common questions for a role.
var Interview = Endpoint{
	Name:        "interview",
	ResponseKey: "interviewPrep",
	Table:       db.TableInterviewSessions,
	Required:    []string{"userId", "targetRole", "industry"},
	Params: []Field{
		{Key: "userId", Column: "user_id"},
		{Key: "targetRole", Column: "target_role"},
		{Key: "industry", Column: "industry"},
	},
	Store: []Field{
		{Key: "tips", Column: "tips"},
		{Key: "commonQuestions", Column: "common_questions"},
		{Key: "strategicAdvice", Column: "strategic_advice"},
	},
	Respond: []string{"tips", "commonQuestions", "strategicAdvice"},
	Prompt: func(profile *db.UserProfile, params map[string]any) string {
		return fmt.Sprintf(
			"You are an expert interview coach. Generate personalized interview preparation tips, common questions, and strategic advice for the role of %s in the %s industry. Use this user profile: %s. Return as JSON: {tips: string[], commonQuestions: string[], strategicAdvice: string}.",
			str(params, "targetRole"), str(params, "industry"), profileJSON(profile))
	},
	Shape: interviewShape,
}

// InterviewPrep generates question/answer pairs with feedback for a role.
// Shares the interview_sessions table with Interview.
var InterviewPrep = Endpoint{
	Name:        "interview-prep",
	ResponseKey: "interviewPrep",
	Table:       db.TableInterviewSessions,
	Required:    []string{"userId", "targetRole", "industry"},
	Params: []Field{
		{Key: "userId", Column: "user_id"},
		{Key: "targetRole", Column: "target_role"},
		{Key: "industry", Column: "industry"},
	},
	Store: []Field{
		{Key: "questions", Column: "questions"},
		{Key: "feedback", Column: "feedback"},
		{Key: "tips", Column: "tips"},
	},
	Respond: []string{"questions", "feedback", "tips"},
	Prompt: func(profile *db.UserProfile, params map[string]any) string {
		return fmt.Sprintf(
			"You are an expert interview coach. Generate personalized interview questions, model answers, and feedback for the role of %s in the %s industry. Use this user profile: %s. Return as JSON: {questions: [{question: string, answer: string}], feedback: string, tips: string[]}.",
			str(params, "targetRole"), str(params, "industry"), profileJSON(profile))
	},
	Shape: interviewPrepShape,
}

// JobSearch generates job search strategies for a target role.
var JobSearch = Endpoint{
	Name:        "job-search",
	ResponseKey: "jobSearch",
	Table:       db.TableJobSearches,
	Required:    []string{"userId", "targetRole", "industry"},
	Params: []Field{
		{Key: "userId", Column: "user_id"},
		{Key: "targetRole", Column: "target_role"},
		{Key: "industry", Column: "industry"},
	},
	Store: []Field{
		{Key: "strategies", Column: "strategies"},
		{Key: "recommendations", Column: "recommendations"},
		{Key: "insights", Column: "insights"},
	},
	Respond: []string{"strategies", "recommendations", "insights"},
	Prompt: func(profile *db.UserProfile, params map[string]any) string {
		return fmt.Sprintf(
			"You are an expert job search strategist. Generate personalized job search strategies, recommendations, and insights for the role of %s in the %s industry. Use this user profile: %s. Return as JSON: {strategies: string[], recommendations: string[], insights: string}.",
			str(params, "targetRole"), str(params, "industry"), profileJSON(profile))
	},
	Shape: jobSearchShape,
}

// LinkedInOptimizer analyzes a LinkedIn profile against a target role.
var LinkedInOptimizer = Endpoint{
	Name:        "linkedin-optimizer",
	ResponseKey: "linkedInProfile",
	Table:       db.TableLinkedInProfiles,
	Required:    []string{"userId", "linkedInUrl", "targetRole", "industry"},
	Params: []Field{
		{Key: "userId", Column: "user_id"},
		{Key: "linkedInUrl", Column: "linkedin_url"},
		{Key: "targetRole", Column: "target_role"},
		{Key: "industry", Column: "industry"},
	},
	Store: []Field{
		{Key: "analysis", Column: "analysis"},
		{Key: "growthSuggestions", Column: "growth_suggestions"},
		{Key: "optimizationTips", Column: "optimization_tips"},
	},
	Respond: []string{"analysis", "growthSuggestions", "optimizationTips"},
	Prompt: func(profile *db.UserProfile, params map[string]any) string {
		return fmt.Sprintf(
			"You are an expert LinkedIn profile optimizer. Analyze this LinkedIn profile: %s for the role of %s in the %s industry. Use this user profile: %s. Return as JSON: {analysis: string, growthSuggestions: string[], optimizationTips: string[]}.",
			str(params, "linkedInUrl"), str(params, "targetRole"), str(params, "industry"), profileJSON(profile))
	},
	Shape: linkedInShape,
}

// Onboarding generates personalized onboarding content from preferences and goals.
var Onboarding = Endpoint{
	Name:        "onboarding",
	ResponseKey: "onboarding",
	Table:       db.TableOnboardings,
	Required:    []string{"userId", "preferences", "goals"},
	Params: []Field{
		{Key: "userId", Column: "user_id"},
		{Key: "preferences", Column: "preferences"},
		{Key: "goals", Column: "goals"},
	},
	Store: []Field{
		{Key: "content", Column: "content"},
		{Key: "recommendations", Column: "recommendations"},
		{Key: "nextSteps", Column: "next_steps"},
	},
	Respond: []string{"content", "recommendations", "nextSteps"},
	Prompt: func(profile *db.UserProfile, params map[string]any) string {
		return fmt.Sprintf(
			"You are an expert onboarding coach. Generate personalized onboarding content, recommendations, and next steps for this user profile: %s, preferences: %s, and goals: %s. Return as JSON: {content: string, recommendations: string[], nextSteps: string[]}.",
			profileJSON(profile), paramJSON(params["preferences"]), paramJSON(params["goals"]))
	},
	Shape: onboardingShape,
}

// Endpoints lists every declaratively configured pipeline variant.
// The resume, industry-pulse and job-tracker routes deviate from the shared
// shape (extra evaluation call, no user profile, mocked integrations) and
// are wired as dedicated handlers on top of the same pipeline helpers.
var Endpoints = []Endpoint{
	CareerGuidance,
	CareerPath,
	CoverLetter,
	Interview,
	InterviewPrep,
	JobSearch,
	LinkedInOptimizer,
	Onboarding,
}

// ResumePrompt renders the resume generation instruction.
func ResumePrompt(profile *db.UserProfile, targetRole, industry string) string {
	return fmt.Sprintf(
		"You are an expert resume writer. Generate an ATS-optimized, industry-standard resume for the role of %s in the %s industry. Use this user profile: %s. Return as JSON: {content: string, feedback: string, improvementTip: string}.",
		targetRole, industry, profileJSON(profile))
}

// ResumeEvaluationPrompt renders the follow-up evaluation instruction for
// generated resume content.
func ResumeEvaluationPrompt(content any, targetRole, industry string) string {
	return fmt.Sprintf(
		"You are an expert resume evaluator. Evaluate this resume for the role of %s in the %s industry:\n%s\nReturn as JSON: {atsScore: number (0-100), feedback: string, improvementTip: string}.",
		targetRole, industry, paramJSON(content))
}

// IndustryInsightsPrompt renders the industry analysis instruction from
// market data. The industry-pulse endpoint has no user subject.
func IndustryInsightsPrompt(data market.Data, industry string) string {
	return fmt.Sprintf(
		"You are an expert industry analyst. Generate insights for the %s industry based on this market data: %s. Return as JSON: {insights: string[], learningSuggestions: string[]}.",
		industry, paramJSON(data))
}
