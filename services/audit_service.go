package services

import (
	"github.com/saokiritoni/HomePage-BE/models"
	"github.com/saokiritoni/HomePage-BE/repositories"
)

type AuditService struct {
	Repos *repositories.Repos
}

func NewAuditService(repos *repositories.Repos) *AuditService {
	return &AuditService{Repos: repos}
}

func (s *AuditService) QueryAuditLogs(params repositories.AuditQueryParams) ([]models.AuditLog, error) {
	return s.Repos.Audit.GetAuditLogs(params)
}
