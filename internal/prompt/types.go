package prompt

import "fmt"

// Kind names a registered prompt template.
type Kind string

const (
	KindRouteIntent     Kind = "route_intent"
	KindProductAnswer   Kind = "product_answer"
	KindCourseRecommend Kind = "course_recommend"
	KindFilterExtract   Kind = "filter_extract"
)

// TemplateError reports a render failure: an unknown kind or a binding
// the template references but the caller did not supply.
type TemplateError struct {
	Kind   Kind
	Reason string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("prompt template %q: %s", e.Kind, e.Reason)
}
