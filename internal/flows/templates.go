package flows

const explainTemplate = "You are an expert code explainer, skilled at breaking down complex code into simple, understandable terms for students and professionals.\n" +
	"Given the following code snippet and the user's experience level, provide a clear and concise explanation of the code's functionality.\n" +
	"Consider using external resources or documentation if necessary to provide a comprehensive explanation. Focus on clarity and simplicity to help the user understand the code effectively.\n\n" +
	"Programming Language: {{.ProgrammingLanguage}}\n" +
	"User Experience Level: {{.UserLevel}}\n\n" +
	"Code Snippet:\n" +
	"```{{.ProgrammingLanguage}}\n" +
	"{{.CodeSnippet}}\n" +
	"```\n"

const generateTemplate = "You are an expert coding assistant. Generate a code snippet in the '{{.Language}}' programming language based on the following request.\n" +
	"Return *only* the raw code for the '{{.Language}}' programming language. Do not include any explanatory text before or after the code block. " +
	"If the request is for a specific format like JSON or HTML, ensure the output is valid in that format.\n\n" +
	"Request:\n" +
	"\"{{.Prompt}}\"\n\n" +
	"Code:\n"

const summarizeTemplate = "You are an expert in simplifying complex topics. Your goal is to provide a clear and concise summary that is easy to understand.\n\n" +
	"Topic: {{.Topic}}\n" +
	"User Preferences: {{.UserPreferences}}\n\n" +
	"Please provide a simplified summary of the topic, taking into account any user preferences.\n\n" +
	"Summary:\n"

const gradeTemplate = "You are an expert career coach and resume reviewer with deep knowledge across various professional domains.\n" +
	"Your task is to meticulously review the provided resume text and evaluate its effectiveness for the specified target domain.\n\n" +
	"Target Domain: {{.TargetDomain}}\n\n" +
	"Resume Text:\n" +
	"```\n" +
	"{{.ResumeText}}\n" +
	"```\n\n" +
	"Based on the resume and target domain, provide:\n" +
	"1.  An overall score (0-100) reflecting the resume's suitability and strength for the target domain.\n" +
	"2.  A list of 3-5 key strengths.\n" +
	"3.  A list of 3-5 specific and actionable areas for improvement.\n" +
	"4.  Detailed feedback that elaborates on the score, justifies the strengths, and explains the areas for improvement. Focus on clarity, conciseness, and constructive advice.\n\n" +
	"Ensure your output strictly adheres to the JSON schema provided.\n"

const suggestTemplate = "You are a creative and experienced tech mentor who excels at brainstorming project ideas.\n" +
	"Based on the provided resume/skills summary and optional interests, generate {{.Count}} innovative and practical project ideas.\n" +
	"For each project, provide a title, a short description (2-3 sentences), a list of 3-5 suggested technologies, and an estimated difficulty level (Beginner, Intermediate, Advanced).\n\n" +
	"Resume/Skills:\n" +
	"```\n" +
	"{{.ResumeText}}\n" +
	"```\n\n" +
	"{{if .Interests}}User Interests: {{.Interests}}\n\n{{end}}" +
	"Focus on projects that are:\n" +
	"- Relevant to the user's apparent skillset and experience level.\n" +
	"- Potentially impactful or demonstrate valuable skills.\n" +
	"- Feasible to complete for an individual or small team.\n\n" +
	"Ensure your output strictly adheres to the JSON schema provided.\n"
