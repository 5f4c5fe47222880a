package flows

func failureMessage(what string) string {
	return "AI failed to generate " + what + ". The model might be overloaded or the input was problematic."
}

func ExplainDefinition() Definition[ExplainInput, ExplainOutput] {
	return Definition[ExplainInput, ExplainOutput]{
		Name:           ToolExplain,
		Title:          "Code Explainer",
		Description:    "Paste a code snippet and get an explanation tailored to your experience level.",
		Template:       explainTemplate,
		FailureMessage: failureMessage("code explanation"),
		Sample: ExplainOutput{
			Explanation: "This snippet defines a function and calls it once. Each line runs top to bottom.",
		},
	}
}

func GenerateDefinition() Definition[GenerateInput, GenerateOutput] {
	return Definition[GenerateInput, GenerateOutput]{
		Name:           ToolGenerate,
		Title:          "Code Generator",
		Description:    "Describe what you need and get a code snippet in the language of your choice.",
		Template:       generateTemplate,
		FailureMessage: failureMessage("code"),
		PostProcess: func(in GenerateInput, out *GenerateOutput) {
			out.GeneratedCode = StripCodeFence(out.GeneratedCode, in.Language)
		},
		Sample: GenerateOutput{
			GeneratedCode: "```python\ndef greet(name):\n    return f\"Hello, {name}!\"\n```",
		},
	}
}

func SummarizeDefinition() Definition[SummarizeInput, SummarizeOutput] {
	return Definition[SummarizeInput, SummarizeOutput]{
		Name:           ToolSummarize,
		Title:          "Topic Summarizer",
		Description:    "Get a simplified summary of a complex topic.",
		Template:       summarizeTemplate,
		FailureMessage: failureMessage("topic summary"),
		Sample: SummarizeOutput{
			Summary: "In short, the topic comes down to a few core ideas that build on each other.",
		},
	}
}

func GradeDefinition() Definition[GradeInput, GradeOutput] {
	return Definition[GradeInput, GradeOutput]{
		Name:           ToolGrade,
		Title:          "Resume Grader",
		Description:    "Score a resume against a target domain with strengths and improvements.",
		Template:       gradeTemplate,
		FailureMessage: failureMessage("resume grading"),
		Sample: GradeOutput{
			OverallScore:        72,
			Strengths:           []string{"Clear project descriptions", "Relevant technical stack"},
			AreasForImprovement: []string{"Quantify impact with metrics", "Add a short summary section"},
			DetailedFeedback:    "The resume shows solid fundamentals for the domain but undersells results.",
		},
	}
}

func SuggestDefinition() Definition[SuggestInput, SuggestOutput] {
	return Definition[SuggestInput, SuggestOutput]{
		Name:           ToolSuggest,
		Title:          "Project Suggester",
		Description:    "Get project ideas based on your resume, skills and interests.",
		Template:       suggestTemplate,
		FailureMessage: failureMessage("project suggestions"),
		Normalize: func(in *SuggestInput) {
			if in.ProjectCount == nil {
				count := DefaultProjectCount
				in.ProjectCount = &count
			}
		},
		Sample: SuggestOutput{
			ProjectSuggestions: []ProjectSuggestion{
				{
					Title:                 "Personal Finance Dashboard",
					Description:           "Track spending from bank exports and visualize monthly trends.",
					SuggestedTechnologies: []string{"Go", "PostgreSQL", "React"},
					Difficulty:            LevelIntermediate,
				},
			},
		},
	}
}
