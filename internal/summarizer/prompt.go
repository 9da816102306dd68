package summarizer

import (
	"fmt"
	"strings"

	"github.com/abhisek/coursemap/internal/catalog"
)

const systemPrompt = `You are an expert learning assistant. Your task is to summarize the key concepts of a given module content so the learner can efficiently focus on the most important information and save time.

Rules:
- Write 3-6 sentences of plain prose.
- Keep the terminology used in the content.
- Do not invent facts that the content does not state.`

func buildUserMessage(content string) string {
	return "Module Content: " + content
}

// ModuleContent renders a module's title, description and objectives as
// text suitable for Summarize.
func ModuleContent(m catalog.Module) string {
	var b strings.Builder
	b.WriteString(m.Title)
	b.WriteString("\n\n")
	if m.Description != "" {
		b.WriteString(m.Description)
		b.WriteString("\n\n")
	}
	if len(m.Objectives) > 0 {
		b.WriteString("Learning objectives:\n")
		for _, o := range m.Objectives {
			fmt.Fprintf(&b, "- %s\n", o)
		}
	}
	return strings.TrimSpace(b.String())
}
