package services

import (
	"errors"

	"github.com/saokiritoni/HomePage-BE/dto"
	"github.com/saokiritoni/HomePage-BE/models"
	"github.com/saokiritoni/HomePage-BE/repositories"
	"gorm.io/gorm"
)

// FarmingLogService serves the paginated member activity feed.
type FarmingLogService struct {
	Repos *repositories.Repos
}

func NewFarmingLogService(repos *repositories.Repos) *FarmingLogService {
	return &FarmingLogService{Repos: repos}
}

func (s *FarmingLogService) CreateFarmingLog(userID uint, req dto.CreateFarmingLogRequest) (models.FarmingLog, error) {
	if _, err := s.Repos.User.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.FarmingLog{}, ErrUserNotFound
		}
		return models.FarmingLog{}, err
	}
	log := models.FarmingLog{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}
	return log, s.Repos.FarmingLog.Create(&log)
}

// ListFarmingLogs returns one page, newest first, optionally restricted to
// one author.
func (s *FarmingLogService) ListFarmingLogs(userID *uint, page, size int) (dto.PageResponse, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 10
	}

	var (
		logs  []models.FarmingLog
		total int64
		err   error
	)
	if userID != nil {
		logs, total, err = s.Repos.FarmingLog.ListByUserPage(*userID, page, size)
	} else {
		logs, total, err = s.Repos.FarmingLog.ListPage(page, size)
	}
	if err != nil {
		return dto.PageResponse{}, err
	}

	list := make([]dto.FarmingLogResponse, 0, len(logs))
	for _, l := range logs {
		list = append(list, dto.FarmingLogResponse{
			FarmingLogID: l.FarmingLogID,
			Author:       l.User.Name,
			Title:        l.Title,
			Content:      l.Content,
			CreatedAt:    l.CreatedAt,
		})
	}

	totalPages := int(total) / size
	if int(total)%size > 0 {
		totalPages++
	}
	return dto.PageResponse{
		List:       list,
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
