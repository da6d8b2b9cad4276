package registry

type RegisterResult struct {
	ID      int
	Version int
	Created bool
}

type Reference struct {
	Name    string
	Subject string
	Version int
}

// SchemaRequest is a schema payload as submitted by a client. An empty
// SchemaType selects the default format.
type SchemaRequest struct {
	SchemaType string
	Schema     string
	References []Reference
}
