package coach

import "github.com/xeipuuv/gojsonschema"

// Expected artifact shapes, one per prompt. The generation service is asked
// for these exact shapes; replies that drift are logged via CheckShape but
// still persisted and returned (degrade-not-fail).

func mustShape(doc string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
	if err != nil {
		panic(err)
	}
	return schema
}

var stringArray = `{"type": "array", "items": {"type": "string"}}`

var careerGuidanceShape = mustShape(`{
	"type": "object",
	"required": ["guidance", "strategicAdvice", "growthSuggestions"],
	"properties": {
		"guidance": {"type": "string"},
		"strategicAdvice": ` + stringArray + `,
		"growthSuggestions": ` + stringArray + `
	}
}`)

var careerPathShape = mustShape(`{
	"type": "object",
	"required": ["milestones", "requiredSkills", "estimatedCompletionTime", "progressTracking"],
	"properties": {
		"milestones": ` + stringArray + `,
		"requiredSkills": ` + stringArray + `,
		"estimatedCompletionTime": {"type": "string"},
		"progressTracking": {"type": "string"}
	}
}`)

var coverLetterShape = mustShape(`{
	"type": "object",
	"required": ["content"],
	"properties": {
		"content": {"type": "string"},
		"feedback": {"type": "string"},
		"improvementTip": {"type": "string"}
	}
}`)

var interviewShape = mustShape(`{
	"type": "object",
	"required": ["tips", "commonQuestions", "strategicAdvice"],
	"properties": {
		"tips": ` + stringArray + `,
		"commonQuestions": ` + stringArray + `,
		"strategicAdvice": {"type": "string"}
	}
}`)

var interviewPrepShape = mustShape(`{
	"type": "object",
	"required": ["questions"],
	"properties": {
		"questions": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["question", "answer"],
				"properties": {
					"question": {"type": "string"},
					"answer": {"type": "string"}
				}
			}
		},
		"feedback": {"type": "string"},
		"tips": ` + stringArray + `
	}
}`)

var jobSearchShape = mustShape(`{
	"type": "object",
	"required": ["strategies", "recommendations", "insights"],
	"properties": {
		"strategies": ` + stringArray + `,
		"recommendations": ` + stringArray + `,
		"insights": {"type": "string"}
	}
}`)

var linkedInShape = mustShape(`{
	"type": "object",
	"required": ["analysis", "growthSuggestions", "optimizationTips"],
	"properties": {
		"analysis": {"type": "string"},
		"growthSuggestions": ` + stringArray + `,
		"optimizationTips": ` + stringArray + `
	}
}`)

var onboardingShape = mustShape(`{
	"type": "object",
	"required": ["content", "recommendations", "nextSteps"],
	"properties": {
		"content": {"type": "string"},
		"recommendations": ` + stringArray + `,
		"nextSteps": ` + stringArray + `
	}
}`)

// IndustryInsightsShape is the expected artifact shape for industry-pulse.
var IndustryInsightsShape = mustShape(`{
	"type": "object",
	"required": ["insights", "learningSuggestions"],
	"properties": {
		"insights": ` + stringArray + `,
		"learningSuggestions": ` + stringArray + `
	}
}`)

// ResumeShape is the expected artifact shape for resume generation.
var ResumeShape = mustShape(`{
	"type": "object",
	"required": ["content"],
	"properties": {
		"content": {"type": "string"},
		"feedback": {"type": "string"},
		"improvementTip": {"type": "string"}
	}
}`)
