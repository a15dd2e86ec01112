package utils

// Response is the JSON envelope used by every endpoint.
type Response struct {
	OK      bool        `json:"ok"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Detail  string      `json:"detail,omitempty"`
}

func SuccessResponse(message string, data interface{}) Response {
	return Response{
		OK:      true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(message, detail string) Response {
	return Response{
		OK:     false,
		Error:  message,
		Detail: detail,
	}
}
