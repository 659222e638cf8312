package repositories

import (
	"github.com/saokiritoni/HomePage-BE/db"
	"github.com/saokiritoni/HomePage-BE/models"
)

type UserRepo interface {
	FindByID(id uint) (models.User, error)
	FindByStudentNumber(studentNumber string) (models.User, error)
	FindAll() ([]models.User, error)
	Save(user *models.User) error
}

type DBUserRepo struct{}

func (r *DBUserRepo) FindByID(id uint) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, id).Error
	return user, err
}

func (r *DBUserRepo) FindByStudentNumber(studentNumber string) (models.User, error) {
	var user models.User
	err := db.DB.Where("student_number = ?", studentNumber).First(&user).Error
	return user, err
}

func (r *DBUserRepo) FindAll() ([]models.User, error) {
	var users []models.User
	err := db.DB.Order("user_id ASC").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) Save(user *models.User) error {
	return db.DB.Save(user).Error
}
