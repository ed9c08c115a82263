package prompt

import (
	"strings"
	"text/template"
)

var templates = map[Kind]*template.Template{
	KindRouteIntent:     parse(KindRouteIntent, routeIntentTemplate),
	KindProductAnswer:   parse(KindProductAnswer, productAnswerTemplate),
	KindCourseRecommend: parse(KindCourseRecommend, courseRecommendTemplate),
	KindFilterExtract:   parse(KindFilterExtract, filterExtractTemplate),
}

func parse(kind Kind, text string) *template.Template {
	return template.Must(template.New(string(kind)).Option("missingkey=error").Parse(text))
}

// Render fills the named template with the given bindings. Rendering is
// strict: an unknown kind or a missing binding returns a TemplateError
// instead of emitting a partially filled prompt.
func Render(kind Kind, bindings map[string]interface{}) (string, error) {
	tmpl, ok := templates[kind]
	if !ok {
		return "", &TemplateError{Kind: kind, Reason: "unknown template kind"}
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, bindings); err != nil {
		return "", &TemplateError{Kind: kind, Reason: err.Error()}
	}
	return sb.String(), nil
}
