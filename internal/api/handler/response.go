package handler

// apiResponse is the canonical envelope for all successful API responses.
// Errors use the same shape with Success=false, rendered by the central
// error handler.
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func ok(data any) apiResponse {
	return apiResponse{Success: true, Data: data}
}

func okMsg(data any, message string) apiResponse {
	return apiResponse{Success: true, Data: data, Message: message}
}
