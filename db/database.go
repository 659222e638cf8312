package db

import (
	"fmt"
	"log"

	"github.com/saokiritoni/HomePage-BE/config"
	"github.com/saokiritoni/HomePage-BE/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&models.Question{},
		&models.Choice{},
		&models.Apply{},
		&models.Answer{},
		&models.AnswerChoice{},
		&models.SubmittedApply{},
		&models.User{},
		&models.Blog{},
		&models.FarmingLog{},
		&models.AuditLog{},
	)
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
