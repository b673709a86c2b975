package graphql

// Error codes carried in the "code" extension of resolver errors.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeNotifyFailed = "NOTIFY_FAILED"
	CodeInternal     = "INTERNAL"
)

// apiError is a resolver error with a machine-readable code extension.
type apiError struct {
	message string
	code    string
}

func (e *apiError) Error() string {
	return e.message
}

// Extensions implements the graphql-go ResolverError interface.
func (e *apiError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}
