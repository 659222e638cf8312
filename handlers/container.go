package handlers

import "github.com/saokiritoni/HomePage-BE/services"

type Handlers struct {
	Apply      *ApplyHandler
	Blog       *BlogHandler
	Auth       *AuthHandler
	User       *UserHandler
	FarmingLog *FarmingLogHandler
	Audit      *AuditHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		Apply:      NewApplyHandler(svc.Apply),
		Blog:       NewBlogHandler(svc.Blog),
		Auth:       NewAuthHandler(svc.User),
		User:       NewUserHandler(svc.User),
		FarmingLog: NewFarmingLogHandler(svc.FarmingLog),
		Audit:      NewAuditHandler(svc.Audit),
	}
}
