package rating

import (
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/domain"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/service"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/web"
)

type Module struct {
	Hdl      *Hdl
	AdminHdl *AdminHdl
	Svc      Service
}

type Hdl = web.Handler
type AdminHdl = web.AdminHandler

// Service 暴露出去方便别的模块和测试使用
type Service = service.Service
type StatsService = service.StatsService

type Rating = domain.Rating
type Kind = domain.Kind
type Status = domain.Status

const (
	KindTutorToIntern = domain.KindTutorToIntern
	KindInternToTutor = domain.KindInternToTutor
	KindHRToIntern    = domain.KindHRToIntern
)
