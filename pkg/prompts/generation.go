// Package prompts builds the model prompts used by the generation path.
package prompts

import (
	"fmt"
	"strings"

	"github.com/sqlchat-io/sqlchat-engine/pkg/models"
)

// BuildGenerationPrompt creates the NL-to-SQL prompt. It embeds the
// upper-cased dialect name, the caller-supplied schema description, and
// fixed instructions restricting output to a single SELECT statement in
// correct dialect syntax.
func BuildGenerationPrompt(dialect models.Dialect, schema, question string) string {
	dialectName := strings.ToUpper(string(dialect))

	var prompt strings.Builder
	prompt.WriteString(fmt.Sprintf("Convert the following user query into a read-only %s SELECT query.\n\n", dialectName))
	prompt.WriteString("Database Schema:\n")
	prompt.WriteString(schema)
	prompt.WriteString("\n\nRules:\n")
	prompt.WriteString("- ONLY generate SELECT statements\n")
	prompt.WriteString(fmt.Sprintf("- Use proper %s syntax\n", dialectName))
	prompt.WriteString("- Return only the SQL query, no explanations\n")
	prompt.WriteString(fmt.Sprintf("\nUser Query: %s\n", question))

	return prompt.String()
}
