package tui

import (
	"strconv"
	"strings"

	"github.com/schynno0/studio/internal/flows"
	"github.com/schynno0/studio/internal/forms"
)

var levels = []string{string(flows.LevelBeginner), string(flows.LevelIntermediate), string(flows.LevelAdvanced)}

// builds one screen per form tool, in menu order
func newToolViews(set *forms.Set, r *renderer) []toolView {
	explain := forms.DefaultExplainInput()
	generate := forms.DefaultGenerateInput()

	return []toolView{
		newToolScreen(toolSpec[flows.ExplainInput, flows.ExplainOutput]{
			tool:  set.Explain,
			title: "Code Explainer",
			fields: []field{
				{name: "codeSnippet", label: "Code Snippet", placeholder: "Paste your code here...", kind: fieldTextArea},
				{name: "programmingLanguage", label: "Programming Language", placeholder: "e.g., Python, JavaScript, Java", kind: fieldInput},
				{name: "userLevel", label: "Your Experience Level", kind: fieldSelect, options: levels},
			},
			build:  buildExplain,
			render: (*renderer).Explanation,
		}, map[string]string{"userLevel": string(explain.UserLevel)}, r),

		newToolScreen(toolSpec[flows.GenerateInput, flows.GenerateOutput]{
			tool:  set.Generate,
			title: "Code Generator",
			fields: []field{
				{name: "prompt", label: "Describe what you want to code", placeholder: "e.g., a Python function to sort a list of numbers...", kind: fieldTextArea},
				{name: "language", label: "Programming Language", placeholder: "e.g., Python, JavaScript, Java, C++, HTML", kind: fieldInput},
			},
			build:    buildGenerate,
			render:   (*renderer).Code,
			copyText: func(out *flows.GenerateOutput) string { return out.GeneratedCode },
		}, map[string]string{"language": generate.Language}, r),

		newToolScreen(toolSpec[flows.SummarizeInput, flows.SummarizeOutput]{
			tool:  set.Summarize,
			title: "Topic Summarizer",
			fields: []field{
				{name: "topic", label: "Complex Topic", placeholder: "Describe the complex topic here...", kind: fieldTextArea},
				{name: "userPreferences", label: "User Preferences (Optional)", placeholder: "e.g., Keep it under 200 words, focus on applications...", kind: fieldTextArea},
			},
			build:  buildSummarize,
			render: (*renderer).Summary,
		}, nil, r),

		newToolScreen(toolSpec[flows.GradeInput, flows.GradeOutput]{
			tool:  set.Grade,
			title: "Resume Grader",
			fields: []field{
				{name: "resumeText", label: "Resume Text", placeholder: "Paste your full resume text here...", kind: fieldTextArea},
				{name: "targetDomain", label: "Target Domain", placeholder: "e.g., Software Engineering, Data Science", kind: fieldInput},
			},
			build:  buildGrade,
			render: (*renderer).Grade,
		}, nil, r),

		newToolScreen(toolSpec[flows.SuggestInput, flows.SuggestOutput]{
			tool:  set.Suggest,
			title: "Project Suggester",
			fields: []field{
				{name: "resumeText", label: "Resume / Skills Summary", placeholder: "Paste your resume text or a summary of your skills...", kind: fieldTextArea},
				{name: "interests", label: "Interests (Optional)", placeholder: "e.g., Web Development, Machine Learning", kind: fieldInput},
				{name: "projectCount", label: "Number of Suggestions (1-5)", placeholder: "Default: 3", kind: fieldInput},
			},
			build:  buildSuggest,
			render: (*renderer).Suggestions,
		}, nil, r),
	}
}

func buildExplain(v map[string]string) flows.ExplainInput {
	return flows.ExplainInput{
		CodeSnippet:         v["codeSnippet"],
		ProgrammingLanguage: strings.TrimSpace(v["programmingLanguage"]),
		UserLevel:           flows.Level(v["userLevel"]),
	}
}

func buildGenerate(v map[string]string) flows.GenerateInput {
	return flows.GenerateInput{
		Prompt:   v["prompt"],
		Language: strings.TrimSpace(v["language"]),
	}
}

func buildSummarize(v map[string]string) flows.SummarizeInput {
	return flows.SummarizeInput{
		Topic:           v["topic"],
		UserPreferences: v["userPreferences"],
	}
}

func buildGrade(v map[string]string) flows.GradeInput {
	return flows.GradeInput{
		ResumeText:   v["resumeText"],
		TargetDomain: strings.TrimSpace(v["targetDomain"]),
	}
}

// an unparsable count becomes 0 so validation reports the 1-5 range
func buildSuggest(v map[string]string) flows.SuggestInput {
	in := flows.SuggestInput{
		ResumeText: v["resumeText"],
		Interests:  strings.TrimSpace(v["interests"]),
	}

	if raw := strings.TrimSpace(v["projectCount"]); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			n = 0
		}
		in.ProjectCount = &n
	}

	return in
}
