package flows

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/schynno0/studio/internal/llm"
	"github.com/schynno0/studio/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implements llm.TextGenerator for testing
type mockGenerator struct {
	generateTextFunc func(ctx context.Context, req llm.TextGenerationRequest) (*llm.TextGenerationResponse, error)

	mu      sync.Mutex
	prompts []string
}

func (m *mockGenerator) GenerateText(ctx context.Context, req llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
	m.mu.Lock()
	for _, msg := range req.Messages {
		m.prompts = append(m.prompts, msg.Content)
	}
	m.mu.Unlock()

	if m.generateTextFunc != nil {
		return m.generateTextFunc(ctx, req)
	}

	return nil, errors.New("no content in response")
}

func (m *mockGenerator) Model() string {
	return "mock-model"
}

func (m *mockGenerator) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.prompts)
}

func (m *mockGenerator) lastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.prompts) == 0 {
		return ""
	}

	return m.prompts[len(m.prompts)-1]
}

func replying(text string) *mockGenerator {
	return &mockGenerator{
		generateTextFunc: func(_ context.Context, _ llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
			return &llm.TextGenerationResponse{Text: text}, nil
		},
	}
}

func intPtr(n int) *int {
	return &n
}

var (
	validExplain   = ExplainInput{CodeSnippet: "for i in range(3): print(i)", ProgrammingLanguage: "python", UserLevel: LevelBeginner}
	validGenerate  = GenerateInput{Prompt: "reverse a string in place", Language: "python"}
	validSummarize = SummarizeInput{Topic: "quantum entanglement basics"}
	validGrade     = GradeInput{ResumeText: strings.Repeat("Built distributed systems in Go. ", 5), TargetDomain: "Software Engineering"}
	validSuggest   = SuggestInput{ResumeText: strings.Repeat("Go, SQL, Kubernetes. ", 4)}
)

// one case per tool, so every property is checked across all five
type toolCase struct {
	name       string
	wellFormed string
	runValid   func(t *testing.T, gen llm.TextGenerator) (any, error)
	runBad     func(t *testing.T, gen llm.TextGenerator) error
	badField   string
}

func toolCases() []toolCase {
	return []toolCase{
		{
			name:       ToolExplain,
			wellFormed: `{"explanation":"It prints 0, 1 and 2."}`,
			runValid: func(t *testing.T, gen llm.TextGenerator) (any, error) {
				f, err := New(ExplainDefinition(), gen)
				require.NoError(t, err)
				return f.Run(context.Background(), validExplain)
			},
			runBad: func(t *testing.T, gen llm.TextGenerator) error {
				f, err := New(ExplainDefinition(), gen)
				require.NoError(t, err)
				in := validExplain
				in.CodeSnippet = "x=1"
				_, err = f.Run(context.Background(), in)
				return err
			},
			badField: "codeSnippet",
		},
		{
			name:       ToolGenerate,
			wellFormed: `{"generatedCode":"s[::-1]"}`,
			runValid: func(t *testing.T, gen llm.TextGenerator) (any, error) {
				f, err := New(GenerateDefinition(), gen)
				require.NoError(t, err)
				return f.Run(context.Background(), validGenerate)
			},
			runBad: func(t *testing.T, gen llm.TextGenerator) error {
				f, err := New(GenerateDefinition(), gen)
				require.NoError(t, err)
				in := validGenerate
				in.Prompt = "short"
				_, err = f.Run(context.Background(), in)
				return err
			},
			badField: "prompt",
		},
		{
			name:       ToolSummarize,
			wellFormed: `{"summary":"Two particles share one state."}`,
			runValid: func(t *testing.T, gen llm.TextGenerator) (any, error) {
				f, err := New(SummarizeDefinition(), gen)
				require.NoError(t, err)
				return f.Run(context.Background(), validSummarize)
			},
			runBad: func(t *testing.T, gen llm.TextGenerator) error {
				f, err := New(SummarizeDefinition(), gen)
				require.NoError(t, err)
				_, err = f.Run(context.Background(), SummarizeInput{})
				return err
			},
			badField: "topic",
		},
		{
			name:       ToolGrade,
			wellFormed: `{"overallScore":81,"strengths":["Go"],"areasForImprovement":["Metrics"],"detailedFeedback":"Solid."}`,
			runValid: func(t *testing.T, gen llm.TextGenerator) (any, error) {
				f, err := New(GradeDefinition(), gen)
				require.NoError(t, err)
				return f.Run(context.Background(), validGrade)
			},
			runBad: func(t *testing.T, gen llm.TextGenerator) error {
				f, err := New(GradeDefinition(), gen)
				require.NoError(t, err)
				in := validGrade
				in.ResumeText = strings.Repeat("r", 99)
				_, err = f.Run(context.Background(), in)
				return err
			},
			badField: "resumeText",
		},
		{
			name:       ToolSuggest,
			wellFormed: `{"projectSuggestions":[{"title":"CLI","description":"A tool.","suggestedTechnologies":["Go"],"difficulty":"Advanced"}]}`,
			runValid: func(t *testing.T, gen llm.TextGenerator) (any, error) {
				f, err := New(SuggestDefinition(), gen)
				require.NoError(t, err)
				return f.Run(context.Background(), validSuggest)
			},
			runBad: func(t *testing.T, gen llm.TextGenerator) error {
				f, err := New(SuggestDefinition(), gen)
				require.NoError(t, err)
				in := validSuggest
				in.ProjectCount = intPtr(6)
				_, err = f.Run(context.Background(), in)
				return err
			},
			badField: "projectCount",
		},
	}
}

func TestRun_InvalidInputNeverReachesModel(t *testing.T) {
	for _, tc := range toolCases() {
		t.Run(tc.name, func(t *testing.T) {
			gen := replying(tc.wellFormed)

			err := tc.runBad(t, gen)

			require.Error(t, err)
			assert.True(t, errors.Is(err, validation.ErrInvalidInput))

			fields, ok := validation.AsErrors(err)
			require.True(t, ok)
			assert.NotEmpty(t, fields.For(tc.badField))
			assert.Equal(t, 0, gen.calls())
		})
	}
}

func TestRun_WellFormedResponse(t *testing.T) {
	for _, tc := range toolCases() {
		t.Run(tc.name, func(t *testing.T) {
			gen := replying(tc.wellFormed)

			out, err := tc.runValid(t, gen)

			require.NoError(t, err)
			assert.NotNil(t, out)
			assert.Equal(t, 1, gen.calls())
		})
	}
}

func TestRun_NoOrMalformedOutput(t *testing.T) {
	replies := map[string]*mockGenerator{
		"error":          {},
		"empty":          replying(""),
		"not json":       replying("Sorry, I am overloaded."),
		"missing fields": replying(`{"unexpected":true}`),
		"wrong types":    replying(`{"explanation":1,"generatedCode":2,"summary":3,"overallScore":"high","projectSuggestions":"none"}`),
	}

	for _, tc := range toolCases() {
		for name, gen := range replies {
			t.Run(tc.name+"/"+name, func(t *testing.T) {
				out, err := tc.runValid(t, gen)

				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrGenerationFailed))

				var genErr *GenerationError
				require.True(t, errors.As(err, &genErr))
				assert.Equal(t, tc.name, genErr.Flow)
				assert.Contains(t, genErr.Error(), "AI failed to generate")
				assert.Contains(t, genErr.Error(), "The model might be overloaded")

				assert.Nil(t, out)
			})
		}
	}
}

func TestRun_PromptCarriesSchemaInstructions(t *testing.T) {
	gen := replying(`{"summary":"ok"}`)
	f, err := New(SummarizeDefinition(), gen)
	require.NoError(t, err)

	_, err = f.Run(context.Background(), validSummarize)
	require.NoError(t, err)

	prompt := gen.lastPrompt()
	assert.Contains(t, prompt, "Topic: quantum entanglement basics")
	assert.Contains(t, prompt, "Respond ONLY with a JSON object")
	assert.Contains(t, prompt, `"summary"`)
}

func TestSuggest_DefaultsToThreeProjects(t *testing.T) {
	gen := replying(`{"projectSuggestions":[]}`)
	f, err := New(SuggestDefinition(), gen)
	require.NoError(t, err)

	in := validSuggest
	in.ProjectCount = nil

	_, err = f.Run(context.Background(), in)
	require.NoError(t, err)

	assert.Contains(t, gen.lastPrompt(), "generate 3 innovative and practical project ideas")
}

func TestSuggest_RenderPrompt(t *testing.T) {
	f, err := New(SuggestDefinition(), replying(""))
	require.NoError(t, err)

	in := validSuggest
	require.NoError(t, f.Validate(&in))
	require.NotNil(t, in.ProjectCount)
	assert.Equal(t, 3, *in.ProjectCount)

	prompt, err := f.Prompt(in)
	require.NoError(t, err)
	assert.NotContains(t, prompt, "User Interests:")

	in.Interests = "sustainability"
	in.ProjectCount = intPtr(5)
	prompt, err = f.Prompt(in)
	require.NoError(t, err)
	assert.Contains(t, prompt, "User Interests: sustainability")
	assert.Contains(t, prompt, "generate 5 innovative")
}

func TestSummarize_PreferencesLineAlwaysPresent(t *testing.T) {
	f, err := New(SummarizeDefinition(), replying(""))
	require.NoError(t, err)

	prompt, err := f.Prompt(validSummarize)
	require.NoError(t, err)

	assert.Contains(t, prompt, "User Preferences: \n")
}

func TestPrompt_SubstitutesVerbatim(t *testing.T) {
	f, err := New(GenerateDefinition(), replying(""))
	require.NoError(t, err)

	prompt, err := f.Prompt(GenerateInput{Prompt: `parse <html> & "quotes"`, Language: "Go"})
	require.NoError(t, err)

	assert.Contains(t, prompt, `"parse <html> & "quotes""`)
	assert.Contains(t, prompt, "in the 'Go' programming language")
}

func TestGenerate_StripsFenceFromModelOutput(t *testing.T) {
	gen := replying(`{"generatedCode":"` + "```python\\nprint(1)\\n```" + `"}`)
	f, err := New(GenerateDefinition(), gen)
	require.NoError(t, err)

	out, err := f.Run(context.Background(), validGenerate)
	require.NoError(t, err)

	assert.Equal(t, "print(1)", out.GeneratedCode)
}

func TestGrade_ScoreOutOfRangeIsRejected(t *testing.T) {
	gen := replying(`{"overallScore":130,"strengths":[],"areasForImprovement":[],"detailedFeedback":"x"}`)
	f, err := New(GradeDefinition(), gen)
	require.NoError(t, err)

	_, err = f.Run(context.Background(), validGrade)

	assert.True(t, errors.Is(err, ErrGenerationFailed))
}

func TestRun_ExtractsJSONFromFencedReply(t *testing.T) {
	gen := replying("Here is the result:\n```json\n{\"explanation\":\"It loops.\"}\n```")
	f, err := New(ExplainDefinition(), gen)
	require.NoError(t, err)

	out, err := f.Run(context.Background(), validExplain)
	require.NoError(t, err)

	assert.Equal(t, "It loops.", out.Explanation)
}

func TestRun_TimeoutBoundsModelCall(t *testing.T) {
	gen := &mockGenerator{
		generateTextFunc: func(ctx context.Context, _ llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}

	f, err := New(ExplainDefinition(), gen, WithTimeout(20*time.Millisecond))
	require.NoError(t, err)

	_, err = f.Run(context.Background(), validExplain)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationFailed))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

type recordingRecorder struct {
	mu       sync.Mutex
	outcomes []string
	tokens   int
}

func (r *recordingRecorder) ObserveRun(flow, outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, flow+":"+outcome)
}

func (r *recordingRecorder) ObserveTokens(_ string, usage llm.Usage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens += usage.InputTokens + usage.OutputTokens
}

func TestRun_RecordsOutcomes(t *testing.T) {
	rec := &recordingRecorder{}
	gen := &mockGenerator{
		generateTextFunc: func(_ context.Context, _ llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
			return &llm.TextGenerationResponse{
				Text:  `{"summary":"ok"}`,
				Usage: llm.Usage{InputTokens: 10, OutputTokens: 4},
			}, nil
		},
	}

	f, err := New(SummarizeDefinition(), gen, WithRecorder(rec))
	require.NoError(t, err)

	_, _ = f.Run(context.Background(), validSummarize)
	_, _ = f.Run(context.Background(), SummarizeInput{})

	assert.Equal(t, []string{"summarize:success", "summarize:invalid_input"}, rec.outcomes)
	assert.Equal(t, 14, rec.tokens)
}
