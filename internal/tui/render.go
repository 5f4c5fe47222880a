package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/schynno0/studio/internal/flows"
	"github.com/schynno0/studio/internal/forms"
)

// turns tool results into terminal text
type renderer struct {
	markdown *glamour.TermRenderer
	width    int
}

func newRenderer(width int) *renderer {
	r := &renderer{}
	r.Resize(width)

	return r
}

// rebuilds the markdown renderer for a new terminal width
func (r *renderer) Resize(width int) {
	r.width = width

	md, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(max(20, width-4)),
	)
	if err != nil {
		r.markdown = nil
		return
	}

	r.markdown = md
}

// renders markdown, falling back to the raw text
func (r *renderer) Markdown(text string) string {
	if r.markdown == nil {
		return text
	}

	out, err := r.markdown.Render(text)
	if err != nil {
		return text
	}

	return strings.TrimRight(out, "\n")
}

func (r *renderer) Explanation(out *flows.ExplainOutput) string {
	return sectionStyle.Render("Explanation") + "\n" + r.Markdown(out.Explanation)
}

func (r *renderer) Code(out *flows.GenerateOutput) string {
	fence := "```\n" + out.GeneratedCode + "\n```"
	return sectionStyle.Render("Generated Code") + "\n" + r.Markdown(fence)
}

func (r *renderer) Summary(out *flows.SummarizeOutput) string {
	return sectionStyle.Render("Summary") + "\n" + r.Markdown(out.Summary)
}

func (r *renderer) Grade(out *flows.GradeOutput) string {
	var b strings.Builder

	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(max(20, r.width/2)))
	score := min(max(out.OverallScore, 0), 100)

	b.WriteString(sectionStyle.Render(fmt.Sprintf("Overall Score: %.0f/100", out.OverallScore)))
	b.WriteString("\n")
	b.WriteString(bar.ViewAs(score / 100))
	b.WriteString("\n")

	b.WriteString(bulletList("Strengths", out.Strengths))
	b.WriteString(bulletList("Areas for Improvement", out.AreasForImprovement))

	b.WriteString(sectionStyle.Render("Detailed Feedback"))
	b.WriteString("\n")
	b.WriteString(r.Markdown(out.DetailedFeedback))

	return b.String()
}

func (r *renderer) Suggestions(out *flows.SuggestOutput) string {
	if len(out.ProjectSuggestions) == 0 {
		return infoStyle.Render(forms.EmptySuggestionsMessage)
	}

	cards := make([]string, 0, len(out.ProjectSuggestions))
	for _, p := range out.ProjectSuggestions {
		cards = append(cards, r.projectCard(p))
	}

	return sectionStyle.Render("Project Suggestions") + "\n" + strings.Join(cards, "\n")
}

func (r *renderer) projectCard(p flows.ProjectSuggestion) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render(p.Title))
	b.WriteString("  ")
	b.WriteString(badge(forms.DifficultyTier(p.Difficulty), string(p.Difficulty)))
	b.WriteString("\n")
	b.WriteString(p.Description)

	if len(p.SuggestedTechnologies) > 0 {
		techs := make([]string, 0, len(p.SuggestedTechnologies))
		for _, t := range p.SuggestedTechnologies {
			techs = append(techs, badge(forms.TierOutline, t))
		}

		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, techs...))
	}

	return boxStyle.Width(max(20, r.width-4)).Render(b.String())
}

func bulletList(title string, items []string) string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render(title))
	b.WriteString("\n")

	for _, item := range items {
		b.WriteString("  • ")
		b.WriteString(item)
		b.WriteString("\n")
	}

	return b.String()
}
