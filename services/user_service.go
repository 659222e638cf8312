package services

import (
	"errors"
	"time"

	"github.com/saokiritoni/HomePage-BE/dto"
	"github.com/saokiritoni/HomePage-BE/middleware"
	"github.com/saokiritoni/HomePage-BE/models"
	"github.com/saokiritoni/HomePage-BE/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrIncorrectPassword  = errors.New("old password is incorrect")
	ErrMissingOldPassword = errors.New("old password is required to change password")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserService backs the member directory and admin login.
type UserService struct {
	Repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) Login(studentNumber, password string) (models.User, string, error) {
	user, err := s.Repos.User.FindByStudentNumber(studentNumber)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user.UserID, user.StudentNumber, user.Role, 24*time.Hour)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.Repos.User.FindAll()
}

func (s *UserService) FindUserByID(id uint) (models.User, error) {
	user, err := s.Repos.User.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) UpdateUser(id uint, input dto.UpdateUserInput) (models.User, error) {
	user, err := s.Repos.User.FindByID(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	if input.Password != nil {
		if input.OldPassword == nil {
			return models.User{}, ErrMissingOldPassword
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(*input.OldPassword)); err != nil {
			return models.User{}, ErrIncorrectPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, ErrPasswordHashFailure
		}
		user.Password = string(hashed)
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Major != nil {
		user.Major = input.Major
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.Email != nil {
		user.Email = input.Email
	}
	if input.Track != nil {
		user.Track = input.Track
	}
	if input.ProfileImageURL != nil {
		user.ProfileImageURL = input.ProfileImageURL
	}

	if err := s.Repos.User.Save(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
