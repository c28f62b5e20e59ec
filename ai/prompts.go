package ai

import (
	"fmt"

	"github.com/sashabaranov/go-openai/jsonschema"
)

func fallacyPrompt(text string) string {
	return fmt.Sprintf(`Analyse the following text for logical fallacies. For each fallacy found, provide its name, an explanation, and the specific quote. If none are found, return an empty array. Text: %q`, text)
}

func grammarPrompt(text string) string {
	return fmt.Sprintf(`Analyse the text for grammatical errors. For each error, provide its type, an explanation, the suggested correction, and the quote. If none, return an empty array. Text: %q`, text)
}

func summaryPrompt(conversation string) string {
	return fmt.Sprintf("Provide a concise summary of the following conversation, capturing the main points and arguments:\n---\n%v\n---", conversation)
}

func solutionPrompt(conversation string) string {
	return fmt.Sprintf("Act as a neutral third-party observer. Analyse the conversation, identify the core issue (argument or problem), and propose a concise, practical, and actionable solution. Your tone should be constructive and unbiased. Conversation:\n---\n%v\n---", conversation)
}

var fallacySchema = &jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"fallacies": {
			Type: jsonschema.Array,
			Items: &jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"fallacy_name": {Type: jsonschema.String},
					"explanation":  {Type: jsonschema.String},
					"quote":        {Type: jsonschema.String},
				},
				Required:             []string{"fallacy_name", "explanation", "quote"},
				AdditionalProperties: false,
			},
		},
	},
	Required:             []string{"fallacies"},
	AdditionalProperties: false,
}

var grammarSchema = &jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"errors": {
			Type: jsonschema.Array,
			Items: &jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"error_type":  {Type: jsonschema.String},
					"explanation": {Type: jsonschema.String},
					"correction":  {Type: jsonschema.String},
					"quote":       {Type: jsonschema.String},
				},
				Required:             []string{"error_type", "explanation", "correction", "quote"},
				AdditionalProperties: false,
			},
		},
	},
	Required:             []string{"errors"},
	AdditionalProperties: false,
}
