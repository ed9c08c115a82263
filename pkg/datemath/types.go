package datemath

// Supported absolute layouts, tried in order.
var absoluteLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006/01/02",
}
