package flows

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"text/template"
	"time"

	"github.com/schynno0/studio/internal/llm"
	"github.com/schynno0/studio/internal/logger"
	"github.com/schynno0/studio/internal/schema"
	"github.com/schynno0/studio/internal/validation"
)

const defaultTimeout = 60 * time.Second

// configures one tool: constraints live on In, the result shape on Out
type Definition[In, Out any] struct {
	Name           string
	Title          string
	Description    string
	Template       string
	FailureMessage string

	// fills defaults before validation
	Normalize func(*In)

	// adjusts a validated result before it is returned
	PostProcess func(in In, out *Out)

	// canned result used by the mock provider
	Sample Out
}

type Flow[In, Out any] struct {
	def       Definition[In, Out]
	tmpl      *template.Template
	schema    schema.Schema
	generator llm.TextGenerator
	timeout   time.Duration
	recorder  Recorder
}

type options struct {
	timeout  time.Duration
	recorder Recorder
}

type Option func(*options)

// bounds each run including the model call
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

func WithRecorder(r Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

func New[In, Out any](def Definition[In, Out], generator llm.TextGenerator, opts ...Option) (*Flow[In, Out], error) {
	o := options{timeout: defaultTimeout, recorder: noopRecorder{}}
	for _, opt := range opts {
		opt(&o)
	}

	tmpl, err := template.New(def.Name).Option("missingkey=error").Parse(def.Template)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s template: %w", def.Name, err)
	}

	outSchema, err := schema.For[Out]()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s output schema: %w", def.Name, err)
	}

	return &Flow[In, Out]{
		def:       def,
		tmpl:      tmpl,
		schema:    outSchema,
		generator: generator,
		timeout:   o.timeout,
		recorder:  o.recorder,
	}, nil
}

func (f *Flow[In, Out]) Name() string {
	return f.def.Name
}

func (f *Flow[In, Out]) FailureMessage() string {
	return f.def.FailureMessage
}

// applies defaults and checks constraints without calling the model
func (f *Flow[In, Out]) Validate(in *In) error {
	if f.def.Normalize != nil {
		f.def.Normalize(in)
	}

	return validation.Validate(in)
}

// renders the finished prompt for a validated input
func (f *Flow[In, Out]) Prompt(in In) (string, error) {
	var sb strings.Builder
	if err := f.tmpl.Execute(&sb, in); err != nil {
		return "", fmt.Errorf("failed to render %s prompt: %w", f.def.Name, err)
	}

	return sb.String(), nil
}

// validates in, renders the template, calls the model once and
// validates the reply against the output schema
func (f *Flow[In, Out]) Run(ctx context.Context, in In) (*Out, error) {
	start := time.Now()
	log := logger.FromContext(ctx).With("flow", f.def.Name)

	if err := f.Validate(&in); err != nil {
		f.recorder.ObserveRun(f.def.Name, OutcomeInvalidInput, time.Since(start))
		return nil, err
	}

	prompt, err := f.Prompt(in)
	if err != nil {
		return nil, f.fail(start, err)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	resp, err := f.generator.GenerateText(ctx, llm.TextGenerationRequest{
		Messages: []llm.Message{
			{Role: "user", Content: prompt + f.schema.Instructions()},
		},
	})
	if err != nil {
		log.Warn("model call failed", "error", err, "model", f.generator.Model())
		return nil, f.fail(start, fmt.Errorf("model call failed: %w", err))
	}

	f.recorder.ObserveTokens(f.def.Name, resp.Usage)

	out, err := f.parse(resp.Text)
	if err != nil {
		log.Warn("model output rejected", "error", err)
		return nil, f.fail(start, err)
	}

	if f.def.PostProcess != nil {
		f.def.PostProcess(in, out)
	}

	elapsed := time.Since(start)
	f.recorder.ObserveRun(f.def.Name, OutcomeSuccess, elapsed)
	log.Debug("flow completed", "duration_ms", elapsed.Milliseconds())

	return out, nil
}

func (f *Flow[In, Out]) parse(text string) (*Out, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty model output")
	}

	data, err := schema.ExtractJSON(text)
	if err != nil {
		return nil, err
	}

	var out Out
	if err := f.schema.Decode(data, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (f *Flow[In, Out]) fail(start time.Time, cause error) error {
	f.recorder.ObserveRun(f.def.Name, OutcomeGenerationFailed, time.Since(start))

	return &GenerationError{
		Flow:    f.def.Name,
		Message: f.def.FailureMessage,
		Cause:   cause,
	}
}

// tool metadata and field rules read from the input struct tags
func (f *Flow[In, Out]) Describe() ToolInfo {
	return ToolInfo{
		Name:           f.def.Name,
		Title:          f.def.Title,
		Description:    f.def.Description,
		FailureMessage: f.def.FailureMessage,
		Fields:         describeFields(reflect.TypeOf((*In)(nil)).Elem()),
	}
}

func describeFields(t reflect.Type) []FieldInfo {
	fields := make([]FieldInfo, 0, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)

		name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}

		rules := sf.Tag.Get("validate")
		fields = append(fields, FieldInfo{
			Name:     name,
			Label:    sf.Tag.Get("label"),
			Rules:    rules,
			Optional: !strings.Contains(rules, "required"),
		})
	}

	return fields
}

type noopRecorder struct{}

func (noopRecorder) ObserveRun(string, string, time.Duration) {}
func (noopRecorder) ObserveTokens(string, llm.Usage)          {}
