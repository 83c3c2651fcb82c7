package extract

import (
	"encoding/json"
	"strings"
)

// BuildPrompt produces the instruction text for one model call. The allowed
// category list is embedded verbatim, and the strict four-field JSON output
// contract is stated explicitly. The contract is a request, not a guarantee:
// ParseResponse must still tolerate fenced output.
func BuildPrompt(rawContent string, allowedCategories []string) string {
	categories, err := json.Marshal(allowedCategories)
	if err != nil {
		// A string slice never fails to marshal; keep the prompt usable anyway.
		categories = []byte("[]")
	}

	var sb strings.Builder

	sb.WriteString("You are an assistant that processes handwritten or typed notes and converts them into structured JSON.\n\n")
	sb.WriteString("Your job is to:\n\n")
	sb.WriteString("Extract the content of the note (if you get an image you will get the needed info from the image to the best of your ability).\n")
	sb.WriteString("Summarize the key points in 1-2 sentences.\n")
	sb.WriteString("Classify the note into 1 or more relevant categories from the provided list.\n")
	sb.WriteString("Only use categories from this list: ")
	sb.Write(categories)
	sb.WriteString("\n")
	sb.WriteString("If none of these categories seem appropriate, you can use the category \"Miscellaneous\". Or invent a new one if really needed.\n\n")
	sb.WriteString("Return everything in the following JSON format:\n")
	sb.WriteString("{\n")
	sb.WriteString("\"title\": \"Concise title for the note\",\n")
	sb.WriteString("\"content\": \"Full extracted content here...\",\n")
	sb.WriteString("\"summary\": \"Short summary here...\",\n")
	sb.WriteString("\"categories\": [\"Category1\", \"Category2\"]\n")
	sb.WriteString("}\n\n")
	sb.WriteString("Always return this exact JSON format, DO NOT USE MARKDOWN.\n\n")
	sb.WriteString("Note Content:\n")
	sb.WriteString(rawContent)
	sb.WriteString("\n")

	return sb.String()
}
