package dto

import "github.com/saokiritoni/HomePage-BE/models"

type LoginRequest struct {
	StudentNumber string `json:"studentNumber" binding:"required"`
	Password      string `json:"password" binding:"required"`
}

type UpdateUserInput struct {
	Password        *string       `json:"password"`
	OldPassword     *string       `json:"oldPassword"`
	Name            *string       `json:"name"`
	Major           *string       `json:"major"`
	PhoneNumber     *string       `json:"phoneNumber"`
	Email           *string       `json:"email"`
	Track           *models.Track `json:"track"`
	ProfileImageURL *string       `json:"profileImageUrl"`
}
