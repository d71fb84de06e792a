package utils

// ErrorResponse is the JSON error body every handler returns. Message is
// the HTTP status text; Description carries the human-readable detail from
// the error mapper. Authorization failures always get the same description
// so the response never reveals a project's profile structure.
type ErrorResponse struct {
	Code        int    `json:"code"`
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

// NewErrorResponse builds an error body; the description is optional.
func NewErrorResponse(code int, message string, description ...string) ErrorResponse {
	resp := ErrorResponse{
		Code:    code,
		Message: message,
	}
	if len(description) > 0 {
		resp.Description = description[0]
	}
	return resp
}
