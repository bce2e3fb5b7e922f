package notification

import (
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/event"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/service"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/web"
)

type Module struct {
	Hdl *Hdl
	// Consumer 在 main 里启动
	Consumer *event.RatingEventConsumer
	Svc      Service
}

type Hdl = web.Handler
type Service = service.Service
