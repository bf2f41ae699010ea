package llm

import "strings"

const (
	promptPreamble = "Identify the programming language used in the provided code snippet and list its programming concepts. "

	promptInstructions = "If the language is identified, organize the response as follows: " +
		"Programming Language: Name of the language. " +
		"Programming Concepts: " +
		"- Concept 1: " +
		"  - Subconcept 1: Explanation (in simple terms, up to 100 words, with examples). " +
		"  - Subconcept 2: Explanation (in simple terms, up to 100 words, with examples). " +
		"(Continue for additional concepts as needed). " +
		"If the code provided error : " +
		"Programming Concepts to learn to fix the error: " +
		"- Concept 1: " +
		"  - Subconcept 1: Explanation (in simple terms, up to 100 words, with examples). " +
		"  - Subconcept 2: Explanation (in simple terms, up to 100 words, with examples). " +
		"(Continue for additional concepts as needed). " +
		"If the programming language cannot be identified: " +
		"Provide an explanation of the possible programming concepts behind the snippet, following the structure above."
)

// BuildPrompt embeds the query in the snippet-explanation instructions. The query is
// concatenated as-is, with no separator before the instructions.
func BuildPrompt(query string) string {
	var b strings.Builder
	b.Grow(len(promptPreamble) + len(query) + len(promptInstructions))
	b.WriteString(promptPreamble)
	b.WriteString(query)
	b.WriteString(promptInstructions)
	return b.String()
}
