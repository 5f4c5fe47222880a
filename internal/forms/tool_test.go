package forms

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/schynno0/studio/internal/flows"
	"github.com/schynno0/studio/internal/llm"
	"github.com/schynno0/studio/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner[In, Out any] struct {
	mu    sync.Mutex
	out   *Out
	err   error
	calls int
	block chan struct{}
}

func (s *stubRunner[In, Out]) Run(ctx context.Context, _ In) (*Out, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return s.out, s.err
}

func (s *stubRunner[In, Out]) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls
}

func intPtr(n int) *int { return &n }

var (
	validExplain = flows.ExplainInput{
		CodeSnippet:         "for i in range(3): print(i)",
		ProgrammingLanguage: "Python",
		UserLevel:           flows.LevelBeginner,
	}
	validGenerate = flows.GenerateInput{
		Prompt:   "a function that reverses a string",
		Language: "go",
	}
	validSummarize = flows.SummarizeInput{
		Topic: "How public key cryptography works",
	}
	validGrade = flows.GradeInput{
		ResumeText:   strings.Repeat("Led a team building payment APIs in Go. ", 4),
		TargetDomain: "Backend Engineering",
	}
	validSuggest = flows.SuggestInput{
		ResumeText:   strings.Repeat("Python, SQL, dashboards. ", 3),
		ProjectCount: intPtr(2),
	}
)

type toolCase struct {
	name string
	// submits a valid input through a tool backed by a runner returning out/err
	// and reports the final snapshot in generic form
	submit func(t *testing.T, succeed bool) (state State, hasResult bool, n *Notification, calls int)
	// submits an invalid input and reports field errors and runner calls
	invalid func(t *testing.T) (fields validation.Errors, calls int)
	prefix  string
	success string
}

func caseFor[In, Out any](name string, messages Messages, valid, invalid In, out *Out) toolCase {
	return toolCase{
		name:    name,
		prefix:  messages.FailurePrefix,
		success: messages.SuccessTitle,
		submit: func(t *testing.T, succeed bool) (State, bool, *Notification, int) {
			runner := &stubRunner[In, Out]{}
			if succeed {
				runner.out = out
			} else {
				runner.err = &flows.GenerationError{Flow: name, Message: "AI failed to respond."}
			}

			tool := NewTool[In, Out](name, runner, messages)
			err := tool.Submit(context.Background(), valid)
			if succeed {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}

			snap := tool.Snapshot()
			if succeed {
				assert.Equal(t, out, snap.Result)
			}

			return snap.State, snap.Result != nil, snap.Notification, runner.Calls()
		},
		invalid: func(t *testing.T) (validation.Errors, int) {
			runner := &stubRunner[In, Out]{out: out}
			tool := NewTool[In, Out](name, runner, messages)

			err := tool.Submit(context.Background(), invalid)
			require.ErrorIs(t, err, validation.ErrInvalidInput)

			snap := tool.Snapshot()
			assert.Equal(t, StateIdle, snap.State)
			assert.Nil(t, snap.Notification)

			return snap.FieldErrors, runner.Calls()
		},
	}
}

func toolCases() []toolCase {
	return []toolCase{
		caseFor(flows.ToolExplain, ExplainMessages,
			validExplain, flows.ExplainInput{CodeSnippet: "x", UserLevel: "Expert"},
			&flows.ExplainOutput{Explanation: "It prints 0, 1 and 2."}),
		caseFor(flows.ToolGenerate, GenerateMessages,
			validGenerate, flows.GenerateInput{Prompt: "short"},
			&flows.GenerateOutput{GeneratedCode: "func reverse(s string) string { return s }"}),
		caseFor(flows.ToolSummarize, SummarizeMessages,
			validSummarize, flows.SummarizeInput{},
			&flows.SummarizeOutput{Summary: "Two keys, one public, one private."}),
		caseFor(flows.ToolGrade, GradeMessages,
			validGrade, flows.GradeInput{ResumeText: "too short", TargetDomain: "AI"},
			&flows.GradeOutput{OverallScore: 72, Strengths: []string{"Go"}, AreasForImprovement: []string{"Metrics"}, DetailedFeedback: "Solid."}),
		caseFor(flows.ToolSuggest, SuggestMessages,
			validSuggest, flows.SuggestInput{ResumeText: "Python", ProjectCount: intPtr(9)},
			&flows.SuggestOutput{ProjectSuggestions: []flows.ProjectSuggestion{{Title: "Sales dashboard", Difficulty: flows.LevelBeginner}}}),
	}
}

func TestSubmit_SuccessRendersResult(t *testing.T) {
	for _, tc := range toolCases() {
		t.Run(tc.name, func(t *testing.T) {
			state, hasResult, n, calls := tc.submit(t, true)

			assert.Equal(t, StateSucceeded, state)
			assert.True(t, hasResult)
			assert.Equal(t, 1, calls)
			require.NotNil(t, n)
			assert.Equal(t, tc.success, n.Title)
			assert.Equal(t, VariantDefault, n.Variant)
		})
	}
}

func TestSubmit_FailureShowsNotification(t *testing.T) {
	for _, tc := range toolCases() {
		t.Run(tc.name, func(t *testing.T) {
			state, hasResult, n, calls := tc.submit(t, false)

			assert.Equal(t, StateFailed, state)
			assert.False(t, hasResult)
			assert.Equal(t, 1, calls)
			require.NotNil(t, n)
			assert.Equal(t, "Error", n.Title)
			assert.Equal(t, VariantDestructive, n.Variant)
			assert.Equal(t, tc.prefix+" Please try again. AI failed to respond.", n.Description)
		})
	}
}

func TestSubmit_InvalidInputMakesNoCall(t *testing.T) {
	for _, tc := range toolCases() {
		t.Run(tc.name, func(t *testing.T) {
			fields, calls := tc.invalid(t)

			assert.Zero(t, calls)
			assert.NotEmpty(t, fields)
		})
	}
}

func TestSubmit_NilOutputIsFailure(t *testing.T) {
	runner := &stubRunner[flows.SummarizeInput, flows.SummarizeOutput]{}
	tool := NewTool[flows.SummarizeInput, flows.SummarizeOutput](flows.ToolSummarize, runner, SummarizeMessages)

	err := tool.Submit(context.Background(), validSummarize)
	require.Error(t, err)

	snap := tool.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	assert.Nil(t, snap.Result)
	require.NotNil(t, snap.Notification)
	assert.Equal(t, "Failed to generate summary. Please try again. no output returned", snap.Notification.Description)
}

func TestBegin_BusyWhileLoading(t *testing.T) {
	runner := &stubRunner[flows.GenerateInput, flows.GenerateOutput]{
		out:   &flows.GenerateOutput{GeneratedCode: "print(1)"},
		block: make(chan struct{}),
	}
	tool := NewTool[flows.GenerateInput, flows.GenerateOutput](flows.ToolGenerate, runner, GenerateMessages)

	require.NoError(t, tool.Begin(validGenerate))
	assert.True(t, tool.Snapshot().Loading())

	done := make(chan struct{})
	go func() {
		defer close(done)
		out, err := tool.Invoke(context.Background(), validGenerate)
		tool.Complete(out, err)
	}()

	assert.ErrorIs(t, tool.Begin(validGenerate), ErrBusy)

	close(runner.block)
	<-done

	assert.Equal(t, 1, runner.Calls())
	assert.Equal(t, StateSucceeded, tool.Snapshot().State)
}

func TestBegin_ClearsPreviousResult(t *testing.T) {
	runner := &stubRunner[flows.SummarizeInput, flows.SummarizeOutput]{
		out: &flows.SummarizeOutput{Summary: "first"},
	}
	tool := NewTool[flows.SummarizeInput, flows.SummarizeOutput](flows.ToolSummarize, runner, SummarizeMessages)

	require.NoError(t, tool.Submit(context.Background(), validSummarize))
	require.NotNil(t, tool.Snapshot().Result)

	require.NoError(t, tool.Begin(validSummarize))
	assert.Nil(t, tool.Snapshot().Result)
}

func TestInvoke_Timeout(t *testing.T) {
	runner := &stubRunner[flows.ExplainInput, flows.ExplainOutput]{block: make(chan struct{})}
	tool := NewTool[flows.ExplainInput, flows.ExplainOutput](flows.ToolExplain, runner, ExplainMessages,
		WithTimeout(20*time.Millisecond))

	err := tool.Submit(context.Background(), validExplain)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	snap := tool.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	require.NotNil(t, snap.Notification)
	assert.True(t, strings.HasPrefix(snap.Notification.Description, ExplainMessages.FailurePrefix))
}

func TestComplete_RemoteValidationMapsFields(t *testing.T) {
	remote := validation.Errors{{Field: "topic", Message: "Topic is required."}}
	runner := &stubRunner[flows.SummarizeInput, flows.SummarizeOutput]{err: remote}
	tool := NewTool[flows.SummarizeInput, flows.SummarizeOutput](flows.ToolSummarize, runner, SummarizeMessages)

	err := tool.Submit(context.Background(), validSummarize)
	require.Error(t, err)

	snap := tool.Snapshot()
	assert.Equal(t, "Topic is required.", snap.FieldError("topic"))
	assert.Equal(t, StateFailed, snap.State)
}

func TestNotifyAndDismiss(t *testing.T) {
	tool := NewTool[flows.GenerateInput, flows.GenerateOutput](flows.ToolGenerate,
		&stubRunner[flows.GenerateInput, flows.GenerateOutput]{}, GenerateMessages)

	tool.Notify(CopyNotification(nil))
	first := tool.Snapshot().Notification
	require.NotNil(t, first)
	assert.Equal(t, "Code Copied!", first.Title)

	tool.Notify(CopyNotification(errors.New("no clipboard")))
	second := tool.Snapshot().Notification
	require.NotNil(t, second)
	assert.Equal(t, "Copy Failed", second.Title)
	assert.Equal(t, VariantDestructive, second.Variant)

	// a stale dismissal leaves the newer notification alone
	tool.Dismiss(first.Seq)
	assert.NotNil(t, tool.Snapshot().Notification)

	tool.Dismiss(second.Seq)
	assert.Nil(t, tool.Snapshot().Notification)
}

func TestDifficultyTier(t *testing.T) {
	tests := []struct {
		difficulty flows.Level
		want       Tier
	}{
		{flows.LevelBeginner, TierDefault},
		{flows.LevelIntermediate, TierSecondary},
		{flows.LevelAdvanced, TierDestructive},
		{"advanced", TierDestructive},
		{"Expert", TierOutline},
		{"", TierOutline},
	}

	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			assert.Equal(t, tt.want, DifficultyTier(tt.difficulty))
		})
	}

	assert.NotEqual(t, DifficultyTier(flows.LevelBeginner), DifficultyTier(flows.LevelAdvanced))
	assert.NotEqual(t, TierDefault, DifficultyTier(flows.LevelAdvanced))
}

func TestNewSet_LocalBackend(t *testing.T) {
	registry, err := flows.NewRegistry(&stubGenerator{reply: `{"summary":"Short and sweet."}`})
	require.NoError(t, err)

	set := NewSet(LocalBackend{Registry: registry})

	require.NoError(t, set.Summarize.Submit(context.Background(), validSummarize))

	snap := set.Summarize.Snapshot()
	require.NotNil(t, snap.Result)
	assert.Equal(t, "Short and sweet.", snap.Result.Summary)
	assert.Equal(t, flows.ToolSuggest, set.Suggest.Name())
}

func TestDefaultInputs(t *testing.T) {
	assert.Equal(t, flows.LevelBeginner, DefaultExplainInput().UserLevel)
	assert.Equal(t, "python", DefaultGenerateInput().Language)
}

type stubGenerator struct {
	reply string
}

func (g *stubGenerator) GenerateText(_ context.Context, _ llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
	return &llm.TextGenerationResponse{Text: g.reply}, nil
}

func (g *stubGenerator) Model() string {
	return "stub"
}
