package dto

// APIResponse is the uniform success envelope.
type APIResponse struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// NewAPIResponse builds the envelope; Success is derived from the code.
func NewAPIResponse(statusCode int, data any, message string) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	}
}

// APIErrorResponse is the uniform error envelope.
type APIErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Data       any      `json:"data"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

// NewAPIErrorResponse builds the error envelope with a nil data field.
func NewAPIErrorResponse(statusCode int, message string, errs []string) APIErrorResponse {
	if errs == nil {
		errs = []string{}
	}
	return APIErrorResponse{
		StatusCode: statusCode,
		Data:       nil,
		Message:    message,
		Success:    false,
		Errors:     errs,
	}
}
