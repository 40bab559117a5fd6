package rag

import (
	"fmt"
	"strings"
)

const (
	noConversationPlaceholder = "No prior conversation available."
	noLearningsPlaceholder    = "No closely matching code examples found in your learnings."
)

// buildTranscript renders the conversation history as labeled lines in
// original order. An empty history yields a fixed placeholder.
func buildTranscript(history []Message) string {
	if len(history) == 0 {
		return noConversationPlaceholder
	}

	lines := make([]string, 0, len(history))
	for _, msg := range history {
		role := "Assistant"
		if msg.IsUser {
			role = "User"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", role, msg.Content))
	}
	return strings.Join(lines, "\n")
}

// buildLearningsContext renders relevant learnings as numbered snippet blocks
// with fenced code. An empty input yields a fixed placeholder.
func buildLearningsContext(relevant []RankedLearning) string {
	if len(relevant) == 0 {
		return noLearningsPlaceholder
	}

	blocks := make([]string, 0, len(relevant))
	for i, r := range relevant {
		blocks = append(blocks, fmt.Sprintf("Snippet %d:\nDescription: %s\nCode:\n```\n%s\n```",
			i+1, r.Learning.Description, r.Learning.CodeSnippet))
	}
	return "Relevant code learnings that might help answer the question:\n" + strings.Join(blocks, "\n\n")
}

// composePrompt builds the final instruction prompt for the LLM from the
// conversation transcript, the learnings context, and the current question.
func composePrompt(query string, history []Message, relevant []RankedLearning) string {
	var b strings.Builder

	b.WriteString("You are a coding assistant focused on helping users understand and work with their code. ")
	b.WriteString("You have access to their previous conversations and some of their code learnings.\n\n")

	b.WriteString("Previous conversation:\n")
	b.WriteString(buildTranscript(history))
	b.WriteString("\n\n")

	b.WriteString(buildLearningsContext(relevant))
	b.WriteString("\n\n")

	b.WriteString("Current question: ")
	b.WriteString(query)
	b.WriteString("\n\n")

	b.WriteString(`Instructions:
1. Answer the question directly and concisely.
2. When referencing code learnings, focus on the specific part of the code that is relevant to the question. Wrap code blocks in ` + "```" + ` and in-line code in ` + "`" + `.
3. If none of the code learnings are relevant to the question, don't mention them at all.
4. If the question is a follow-up, maintain context from the previous conversation.
5. If you reference a code learning, explain why it's relevant to the question, using specific details from the code snippet when useful.
6. Stay focused on programming-related topics.
7. If no code learnings are available, provide a helpful answer based on your general knowledge.

Answer:`)

	return b.String()
}
