package prompts

import (
	"github.com/effective-security/netresearcher/pkg/llms"
)

var _ FormatPrompter = ChatPromptTemplate{}

// ChatPromptTemplate is a prompt template for chat messages.
type ChatPromptTemplate struct {
	// Messages is the list of the message formatters.
	Messages []MessageFormatter

	// PartialVariables maps variable names to values or to functions returning
	// values. Functions are called when the template is rendered.
	PartialVariables map[string]any
}

// NewChatPromptTemplate creates a new chat prompt template from a list of
// message formatters.
func NewChatPromptTemplate(messages []MessageFormatter) ChatPromptTemplate {
	return ChatPromptTemplate{
		Messages: messages,
	}
}

// FormatPrompt formats the messages into a chat prompt value.
func (p ChatPromptTemplate) FormatPrompt(values map[string]any) (llms.PromptValue, error) {
	resolvedValues, err := resolvePartialValues(p.PartialVariables, values)
	if err != nil {
		return nil, err
	}
	formattedMessages := make([]llms.Message, 0, len(p.Messages))
	for _, m := range p.Messages {
		msgs, err := m.FormatMessages(resolvedValues)
		if err != nil {
			return nil, err
		}
		formattedMessages = append(formattedMessages, msgs...)
	}
	return ChatPromptValue(formattedMessages), nil
}

// Format formats the messages and returns them as a single string.
func (p ChatPromptTemplate) Format(values map[string]any) (string, error) {
	promptValue, err := p.FormatPrompt(values)
	if err != nil {
		return "", err
	}
	return promptValue.String(), nil
}

// GetInputVariables returns the union of the input variables of all message
// formatters.
func (p ChatPromptTemplate) GetInputVariables() []string {
	seen := make(map[string]bool)
	var inputVariables []string
	for _, message := range p.Messages {
		for _, variable := range message.GetInputVariables() {
			if !seen[variable] {
				seen[variable] = true
				inputVariables = append(inputVariables, variable)
			}
		}
	}
	return inputVariables
}
