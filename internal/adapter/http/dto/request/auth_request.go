package request

import "strings"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ResolveUsername() string {
	return strings.TrimSpace(r.Username)
}
