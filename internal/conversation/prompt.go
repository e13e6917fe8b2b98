package conversation

import "strings"

// promptFraming establishes that the model plays the prospect, never the
// salesperson, and grounds its persona in the retrieved context.
const promptFraming = `You are an AI sales prospect on a call with a salesperson. ` +
	`Stay in character as the prospect at all times; you are never the salesperson. ` +
	`Use the background information below, when relevant, to shape how you respond, ` +
	`object, ask questions, and react to what the salesperson says.`

// BuildPrompt deterministically assembles the generation prompt from the fixed
// framing, the retrieved context, the salesperson's message, and the prior
// conversation history. It is a pure function: equal inputs always yield an
// identical output string.
func BuildPrompt(contextText, userInput, history string) string {
	var b strings.Builder
	b.WriteString(promptFraming)
	b.WriteString("\n\nBackground information about you:\n")
	b.WriteString(contextText)
	b.WriteString("\nRespond to the following message from the salesperson: ")
	b.WriteString(userInput)
	b.WriteString("\n\nConversation history:\n")
	b.WriteString(history)
	return b.String()
}
