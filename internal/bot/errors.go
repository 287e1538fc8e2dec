package bot

// UpstreamError wraps a failure of the external completion call. The handler
// maps it to a 500 response; it is never retried.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "completion service: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
