package flows

import (
	"context"
	"time"

	"github.com/schynno0/studio/internal/llm"
)

// experience level used by explain and by project difficulty
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// tool names, also the last segment of the HTTP route
const (
	ToolExplain   = "explain"
	ToolGenerate  = "generate"
	ToolSummarize = "summarize"
	ToolGrade     = "grade"
	ToolSuggest   = "suggest"
)

const DefaultProjectCount = 3

type ExplainInput struct {
	CodeSnippet         string `json:"codeSnippet" validate:"required,min=10" label:"Code snippet"`
	ProgrammingLanguage string `json:"programmingLanguage" validate:"required" label:"Programming language"`
	UserLevel           Level  `json:"userLevel" validate:"required,oneof=Beginner Intermediate Advanced" label:"User level"`
}

type ExplainOutput struct {
	Explanation string `json:"explanation" jsonschema_description:"The explanation of the code snippet."`
}

type GenerateInput struct {
	Prompt   string `json:"prompt" validate:"required,min=10" label:"Prompt"`
	Language string `json:"language" validate:"required" label:"Programming language"`
}

type GenerateOutput struct {
	GeneratedCode string `json:"generatedCode" jsonschema_description:"The generated code snippet."`
}

type SummarizeInput struct {
	Topic           string `json:"topic" validate:"required,min=10" label:"Topic"`
	UserPreferences string `json:"userPreferences,omitempty" label:"Preferences"`
}

type SummarizeOutput struct {
	Summary string `json:"summary" jsonschema_description:"A simplified summary of the complex topic."`
}

type GradeInput struct {
	ResumeText   string `json:"resumeText" validate:"required,min=100" label:"Resume text"`
	TargetDomain string `json:"targetDomain" validate:"required,min=3" label:"Target domain"`
}

type GradeOutput struct {
	OverallScore        float64  `json:"overallScore" jsonschema:"minimum=0,maximum=100" jsonschema_description:"Overall suitability score for the target domain, 0 to 100."`
	Strengths           []string `json:"strengths" jsonschema_description:"Key strengths relevant to the target domain."`
	AreasForImprovement []string `json:"areasForImprovement" jsonschema_description:"Specific and actionable areas for improvement."`
	DetailedFeedback    string   `json:"detailedFeedback" jsonschema_description:"Feedback explaining the score, strengths and areas for improvement."`
}

type SuggestInput struct {
	ResumeText   string `json:"resumeText" validate:"required,min=50" label:"Resume/skills text"`
	Interests    string `json:"interests,omitempty" label:"Interests"`
	ProjectCount *int   `json:"projectCount,omitempty" validate:"omitempty,min=1,max=5" label:"Number of projects"`
}

// number of suggestions to ask for
func (in SuggestInput) Count() int {
	if in.ProjectCount == nil {
		return DefaultProjectCount
	}

	return *in.ProjectCount
}

type ProjectSuggestion struct {
	Title                 string   `json:"title" jsonschema_description:"A concise and catchy title for the project idea."`
	Description           string   `json:"description" jsonschema_description:"A brief explanation of the project, its goals and potential impact."`
	SuggestedTechnologies []string `json:"suggestedTechnologies" jsonschema_description:"Relevant technologies or tools for the project."`
	Difficulty            Level    `json:"difficulty" jsonschema:"enum=Beginner,enum=Intermediate,enum=Advanced"`
}

type SuggestOutput struct {
	ProjectSuggestions []ProjectSuggestion `json:"projectSuggestions" jsonschema_description:"A list of tailored project suggestions."`
}

// records the outcome of each flow run
type Recorder interface {
	ObserveRun(flow, outcome string, elapsed time.Duration)
	ObserveTokens(flow string, usage llm.Usage)
}

// outcomes passed to Recorder.ObserveRun
const (
	OutcomeSuccess          = "success"
	OutcomeInvalidInput     = "invalid_input"
	OutcomeGenerationFailed = "generation_failed"
)

// anything that runs a tool: an in-process Flow or a remote client
type Runner[In, Out any] interface {
	Run(ctx context.Context, in In) (*Out, error)
}

// describes one tool for clients
type ToolInfo struct {
	Name           string      `json:"name"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	FailureMessage string      `json:"failureMessage"`
	Fields         []FieldInfo `json:"fields"`
}

type FieldInfo struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Rules    string `json:"rules,omitempty"`
	Optional bool   `json:"optional"`
}
