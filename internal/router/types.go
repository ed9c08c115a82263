package router

// Route identifies which responder should handle a user query.
type Route string

const (
	// RouteProductQA answers product questions grounded on indexed documents.
	RouteProductQA Route = "agent1"
	// RouteCourses recommends learning courses from the catalog.
	RouteCourses Route = "agent2"
)

// String returns the wire token for the route.
func (r Route) String() string {
	return string(r)
}
