package prompts

import (
	"encoding/json"
	"fmt"
	"strings"
)

// summarySampleRows bounds how much result data is sent back to the
// model; the row count plus a small sample is enough for a short summary.
const summarySampleRows = 3

// BuildSummaryPrompt creates the result-summarization prompt from the
// original question, the total row count, and a sample of the first rows.
func BuildSummaryPrompt(question string, rowCount int, rows []map[string]any) string {
	sample := rows
	if len(sample) > summarySampleRows {
		sample = sample[:summarySampleRows]
	}

	sampleJSON, err := json.Marshal(sample)
	if err != nil {
		sampleJSON = []byte(fmt.Sprintf("%v", sample))
	}

	var prompt strings.Builder
	prompt.WriteString("Summarize the following query results in 1-2 clear sentences.\n\n")
	prompt.WriteString(fmt.Sprintf("User Question: %s\n", question))
	prompt.WriteString(fmt.Sprintf("Results Count: %d\n", rowCount))
	prompt.WriteString(fmt.Sprintf("Sample Data: %s\n", sampleJSON))
	prompt.WriteString("\nProvide a concise, helpful answer.\n")

	return prompt.String()
}
