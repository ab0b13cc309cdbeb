package service

// ResponseType enumerates the outcomes a service call can report to handlers
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// Unavailable response, returned when the database is not configured
	Unavailable

	// Success response
	Success
)

var vals = [...]string{
	"invalid-data",
	"error",
	"unavailable",
	"success",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
