package flows

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/schynno0/studio/internal/llm"
)

// the five lab tools sharing one generator
type Registry struct {
	Explain   *Flow[ExplainInput, ExplainOutput]
	Generate  *Flow[GenerateInput, GenerateOutput]
	Summarize *Flow[SummarizeInput, SummarizeOutput]
	Grade     *Flow[GradeInput, GradeOutput]
	Suggest   *Flow[SuggestInput, SuggestOutput]
}

func NewRegistry(generator llm.TextGenerator, opts ...Option) (*Registry, error) {
	var (
		r   Registry
		err error
	)

	if r.Explain, err = New(ExplainDefinition(), generator, opts...); err != nil {
		return nil, err
	}

	if r.Generate, err = New(GenerateDefinition(), generator, opts...); err != nil {
		return nil, err
	}

	if r.Summarize, err = New(SummarizeDefinition(), generator, opts...); err != nil {
		return nil, err
	}

	if r.Grade, err = New(GradeDefinition(), generator, opts...); err != nil {
		return nil, err
	}

	if r.Suggest, err = New(SuggestDefinition(), generator, opts...); err != nil {
		return nil, err
	}

	return &r, nil
}

// tool metadata in display order
func (r *Registry) Describe() []ToolInfo {
	return []ToolInfo{
		r.Explain.Describe(),
		r.Generate.Describe(),
		r.Summarize.Describe(),
		r.Grade.Describe(),
		r.Suggest.Describe(),
	}
}

// rules that make a MockGenerator answer every tool with its sample
func SampleRules() ([]llm.MockRule, error) {
	samples := []struct {
		tmpl   string
		sample any
	}{
		{explainTemplate, ExplainDefinition().Sample},
		{generateTemplate, GenerateDefinition().Sample},
		{summarizeTemplate, SummarizeDefinition().Sample},
		{gradeTemplate, GradeDefinition().Sample},
		{suggestTemplate, SuggestDefinition().Sample},
	}

	rules := make([]llm.MockRule, 0, len(samples))
	for _, s := range samples {
		reply, err := json.Marshal(s.sample)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal sample: %w", err)
		}

		rules = append(rules, llm.MockRule{Match: persona(s.tmpl), Reply: string(reply)})
	}

	return rules, nil
}

// the placeholder-free opening of a template
func persona(tmpl string) string {
	first := strings.SplitN(tmpl, "\n", 2)[0]
	if i := strings.Index(first, "{{"); i != -1 {
		first = first[:i]
	}

	return first
}

// gives a MockGenerator the sample reply of every tool; other generators are left alone
func UseSampleReplies(generator llm.TextGenerator) error {
	mock, ok := generator.(*llm.MockGenerator)
	if !ok {
		return nil
	}

	rules, err := SampleRules()
	if err != nil {
		return err
	}

	mock.Rules = rules

	return nil
}
