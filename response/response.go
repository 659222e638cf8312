package response

import "github.com/saokiritoni/HomePage-BE/models"

// ErrorResponse carries the stable wire code clients switch on plus a
// human-readable message.
type ErrorResponse struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token         string          `json:"token"`
	UserID        uint            `json:"user_id"`
	StudentNumber string          `json:"student_number"`
	Name          string          `json:"name"`
	Role          models.UserRole `json:"role"`
}
