package services

import "github.com/saokiritoni/HomePage-BE/repositories"

type Services struct {
	Apply      *ApplyService
	Blog       *BlogService
	User       *UserService
	FarmingLog *FarmingLogService
	Audit      *AuditService
}

func New(repos *repositories.Repos) *Services {
	return &Services{
		Apply:      NewApplyService(repos),
		Blog:       NewBlogService(repos),
		User:       NewUserService(repos),
		FarmingLog: NewFarmingLogService(repos),
		Audit:      NewAuditService(repos),
	}
}
