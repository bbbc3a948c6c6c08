package prompts

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/cockroachdb/errors"
	"github.com/nikolalohinski/gonja"
)

// ErrInvalidTemplateFormat is returned when the template format is not supported.
var ErrInvalidTemplateFormat = errors.New("invalid template format")

// TemplateFormat is the format of the prompt template.
type TemplateFormat string

const (
	// TemplateFormatGoTemplate renders with text/template and the sprig function map.
	TemplateFormatGoTemplate TemplateFormat = "go-template"
	// TemplateFormatJinja2 renders with the gonja jinja2 engine.
	TemplateFormatJinja2 TemplateFormat = "jinja2"
)

type interpolator func(tmpl string, values map[string]any) (string, error)

var formatterMapping = map[TemplateFormat]interpolator{
	TemplateFormatGoTemplate: interpolateGoTemplate,
	TemplateFormatJinja2:     interpolateJinja2,
}

func interpolateGoTemplate(tmpl string, values map[string]any) (string, error) {
	parsedTmpl, err := template.New("template").
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(tmpl)
	if err != nil {
		return "", errors.WithMessage(err, "failed to parse template")
	}
	var sb strings.Builder
	if err := parsedTmpl.Execute(&sb, values); err != nil {
		return "", errors.WithMessage(err, "failed to execute template")
	}
	return sb.String(), nil
}

func interpolateJinja2(tmpl string, values map[string]any) (string, error) {
	tpl, err := gonja.FromString(tmpl)
	if err != nil {
		return "", errors.WithMessage(err, "failed to parse template")
	}
	out, err := tpl.Execute(values)
	if err != nil {
		return "", errors.WithMessage(err, "failed to execute template")
	}
	return out, nil
}

// RenderTemplate renders the template with the given values.
func RenderTemplate(tmpl string, tmplFormat TemplateFormat, values map[string]any) (string, error) {
	formatter, ok := formatterMapping[tmplFormat]
	if !ok {
		return "", errors.WithStack(ErrInvalidTemplateFormat)
	}
	return formatter(tmpl, values)
}

// CheckValidTemplate checks that the template format is supported and that the
// template renders with dummy values for its input variables.
func CheckValidTemplate(tmpl string, tmplFormat TemplateFormat, inputVariables []string) error {
	dummyInputs := make(map[string]any, len(inputVariables))
	for _, v := range inputVariables {
		dummyInputs[v] = "foo"
	}

	_, err := RenderTemplate(tmpl, tmplFormat, dummyInputs)
	return err
}
