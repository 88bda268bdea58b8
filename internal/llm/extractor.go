package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema describes the JSON object a prompt asks the model for
type ExtractionSchema struct {
	Name        string
	Description string // instructions placed before the output shape
	Fields      []SchemaField
}

// SchemaField defines a single field in the extraction output
type SchemaField struct {
	Name        string
	Type        string // JSON type hint, e.g. `"string"`, `["string"]`, `true | false | null`
	Description string
	Required    bool
}

// BuildExtractionPrompt renders schema instructions followed by the input text
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = `"string"`
		}
		fmt.Fprintf(&sb, "  %q: %s", field.Name, typeHint)
		if field.Required {
			sb.WriteString(" (required)")
		}
		if field.Description != "" {
			fmt.Fprintf(&sb, " // %s", field.Description)
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Use only names that appear verbatim in the text; never invent or translate them.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// OrganizationVerdictSchema asks whether one line names an organization
func OrganizationVerdictSchema(description string) ExtractionSchema {
	return ExtractionSchema{
		Name:        "OrganizationVerdict",
		Description: description,
		Fields: []SchemaField{
			{
				Name:        "is_organization",
				Type:        "true | false | null",
				Description: "null when the line alone is not enough to decide",
				Required:    true,
			},
		},
	}
}

// OrganizationListSchema asks for every organization mentioned in a text
func OrganizationListSchema(description string) ExtractionSchema {
	return ExtractionSchema{
		Name:        "OrganizationList",
		Description: description,
		Fields: []SchemaField{
			{
				Name:        "organizations",
				Type:        `["string"]`,
				Description: "each organization exactly as written, in order of first appearance, without duplicates",
				Required:    true,
			},
		},
	}
}
