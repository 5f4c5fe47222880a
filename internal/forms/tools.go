package forms

import (
	"strings"

	"github.com/schynno0/studio/internal/flows"
)

const EmptySuggestionsMessage = "No project suggestions were generated. Try refining your input."

var (
	ExplainMessages = Messages{
		SuccessTitle:       "Explanation Generated!",
		SuccessDescription: "The AI has provided an explanation for your code.",
		FailurePrefix:      "Failed to generate explanation.",
	}

	GenerateMessages = Messages{
		SuccessTitle:       "Code Generated!",
		SuccessDescription: "The AI has generated the code based on your prompt.",
		FailurePrefix:      "Failed to generate code.",
	}

	SummarizeMessages = Messages{
		SuccessTitle:       "Summary Generated!",
		SuccessDescription: "The AI has provided a summary for your topic.",
		FailurePrefix:      "Failed to generate summary.",
	}

	GradeMessages = Messages{
		SuccessTitle:       "Resume Graded!",
		SuccessDescription: "The AI has provided feedback on your resume.",
		FailurePrefix:      "Failed to grade resume.",
	}

	SuggestMessages = Messages{
		SuccessTitle:       "Project Ideas Generated!",
		SuccessDescription: "The AI has suggested some project ideas for you.",
		FailurePrefix:      "Failed to generate project ideas.",
	}
)

// the five form tools of the lab
type Set struct {
	Explain   *Tool[flows.ExplainInput, flows.ExplainOutput]
	Generate  *Tool[flows.GenerateInput, flows.GenerateOutput]
	Summarize *Tool[flows.SummarizeInput, flows.SummarizeOutput]
	Grade     *Tool[flows.GradeInput, flows.GradeOutput]
	Suggest   *Tool[flows.SuggestInput, flows.SuggestOutput]
}

// where a Set sends its submissions
type Backend interface {
	Explain() Runner[flows.ExplainInput, flows.ExplainOutput]
	Generate() Runner[flows.GenerateInput, flows.GenerateOutput]
	Summarize() Runner[flows.SummarizeInput, flows.SummarizeOutput]
	Grade() Runner[flows.GradeInput, flows.GradeOutput]
	Suggest() Runner[flows.SuggestInput, flows.SuggestOutput]
}

func NewSet(backend Backend, opts ...Option) *Set {
	return &Set{
		Explain:   NewTool(flows.ToolExplain, backend.Explain(), ExplainMessages, opts...),
		Generate:  NewTool(flows.ToolGenerate, backend.Generate(), GenerateMessages, opts...),
		Summarize: NewTool(flows.ToolSummarize, backend.Summarize(), SummarizeMessages, opts...),
		Grade:     NewTool(flows.ToolGrade, backend.Grade(), GradeMessages, opts...),
		Suggest:   NewTool(flows.ToolSuggest, backend.Suggest(), SuggestMessages, opts...),
	}
}

// runs the flows of a registry in-process
type LocalBackend struct {
	Registry *flows.Registry
}

func (b LocalBackend) Explain() Runner[flows.ExplainInput, flows.ExplainOutput] {
	return b.Registry.Explain
}

func (b LocalBackend) Generate() Runner[flows.GenerateInput, flows.GenerateOutput] {
	return b.Registry.Generate
}

func (b LocalBackend) Summarize() Runner[flows.SummarizeInput, flows.SummarizeOutput] {
	return b.Registry.Summarize
}

func (b LocalBackend) Grade() Runner[flows.GradeInput, flows.GradeOutput] {
	return b.Registry.Grade
}

func (b LocalBackend) Suggest() Runner[flows.SuggestInput, flows.SuggestOutput] {
	return b.Registry.Suggest
}

// initial explain input; the level select starts at Beginner
func DefaultExplainInput() flows.ExplainInput {
	return flows.ExplainInput{UserLevel: flows.LevelBeginner}
}

// initial generate input; the language field starts at python
func DefaultGenerateInput() flows.GenerateInput {
	return flows.GenerateInput{Language: "python"}
}

// badge tier for a project difficulty, case-insensitive
func DifficultyTier(difficulty flows.Level) Tier {
	switch strings.ToLower(string(difficulty)) {
	case "beginner":
		return TierDefault
	case "intermediate":
		return TierSecondary
	case "advanced":
		return TierDestructive
	default:
		return TierOutline
	}
}

// notification raised after copying generated code
func CopyNotification(err error) Notification {
	if err != nil {
		return Notification{
			Title:       "Copy Failed",
			Description: "Could not copy code to clipboard.",
			Variant:     VariantDestructive,
		}
	}

	return Notification{
		Title:       "Code Copied!",
		Description: "The generated code has been copied to your clipboard.",
		Variant:     VariantDefault,
	}
}
