package dto

// Response is the envelope every API endpoint answers with.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody carries a human-readable message plus optional diagnostic detail.
type ErrorBody struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// OK wraps payload into a successful envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Err wraps message and details into a failed envelope.
func Err(message, details string) Response {
	return Response{Success: false, Error: &ErrorBody{Message: message, Details: details}}
}
