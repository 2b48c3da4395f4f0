package errorx

type Code int

const (
	// Common codes
	BadRequest      Code = 100001
	NotFound        Code = 100004
	Unauthenticated Code = 100005
	AlreadyExists   Code = 100006
	Internal        Code = 100007

	// Store consistency codes
	BadReference       Code = 200001
	PreconditionFailed Code = 200002

	// Report codes
	EmptyReport Code = 300001
)
