package response

// Resp is the standard JSON response body for dashboard API errors
// and generic success acknowledgements.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
