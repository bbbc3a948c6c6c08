package prompts

import (
	"github.com/cockroachdb/errors"
	"github.com/effective-security/netresearcher/pkg/llms"
)

// ErrInvalidPartialVariableType is returned when a partial variable is neither
// a string nor a function returning a string.
var ErrInvalidPartialVariableType = errors.New("invalid partial variable type")

var (
	_ Formatter      = PromptTemplate{}
	_ FormatPrompter = PromptTemplate{}
)

// PromptTemplate is a single-string prompt template.
type PromptTemplate struct {
	// Template is the prompt template.
	Template string

	// InputVariables is a list of variable names the prompt template expects.
	InputVariables []string

	// TemplateFormat is the format of the prompt template.
	TemplateFormat TemplateFormat

	// PartialVariables maps variable names to values or to functions returning
	// values. Functions are called when the template is rendered.
	PartialVariables map[string]any
}

// NewPromptTemplate returns a go-template prompt template with the given input
// variables.
func NewPromptTemplate(template string, inputVars []string) PromptTemplate {
	return PromptTemplate{
		Template:       template,
		InputVariables: inputVars,
		TemplateFormat: TemplateFormatGoTemplate,
	}
}

// Format renders the prompt template with the given values.
func (p PromptTemplate) Format(values map[string]any) (string, error) {
	resolvedValues, err := resolvePartialValues(p.PartialVariables, values)
	if err != nil {
		return "", err
	}
	return RenderTemplate(p.Template, p.TemplateFormat, resolvedValues)
}

// FormatPrompt renders the prompt template and returns a string prompt value.
func (p PromptTemplate) FormatPrompt(values map[string]any) (llms.PromptValue, error) {
	f, err := p.Format(values)
	if err != nil {
		return nil, err
	}
	return StringPromptValue(f), nil
}

// GetInputVariables returns the input variables the prompt expects.
func (p PromptTemplate) GetInputVariables() []string {
	return p.InputVariables
}

func resolvePartialValues(partialValues map[string]any, values map[string]any) (map[string]any, error) {
	resolvedValues := make(map[string]any)
	for variable, value := range partialValues {
		switch value := value.(type) {
		case string:
			resolvedValues[variable] = value
		case func() string:
			resolvedValues[variable] = value()
		default:
			return nil, errors.WithMessagef(ErrInvalidPartialVariableType, "variable %q", variable)
		}
	}
	for variable, value := range values {
		resolvedValues[variable] = value
	}
	return resolvedValues, nil
}
