package response

// MessageResponse is the body for operations whose only result is an outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
