package repositories

import (
	"github.com/saokiritoni/HomePage-BE/db"
	"github.com/saokiritoni/HomePage-BE/models"
)

type FarmingLogRepo interface {
	Create(log *models.FarmingLog) error
	ListPage(page, size int) ([]models.FarmingLog, int64, error)
	ListByUserPage(userID uint, page, size int) ([]models.FarmingLog, int64, error)
}

type DBFarmingLogRepo struct{}

func (r *DBFarmingLogRepo) Create(log *models.FarmingLog) error {
	return db.DB.Create(log).Error
}

func (r *DBFarmingLogRepo) ListPage(page, size int) ([]models.FarmingLog, int64, error) {
	var logs []models.FarmingLog
	var total int64
	if err := db.DB.Model(&models.FarmingLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.DB.Preload("User").
		Order("created_at DESC, farming_log_id DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&logs).Error
	return logs, total, err
}

func (r *DBFarmingLogRepo) ListByUserPage(userID uint, page, size int) ([]models.FarmingLog, int64, error) {
	var logs []models.FarmingLog
	var total int64
	if err := db.DB.Model(&models.FarmingLog{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.DB.Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC, farming_log_id DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&logs).Error
	return logs, total, err
}
