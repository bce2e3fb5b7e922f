// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/neji123/gestion-stagiaires/internal/notification"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/event"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/repository"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/repository/dao"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/service"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/web"
	"github.com/neji123/gestion-stagiaires/internal/test/ioc"
)

// Injectors from wire.go:

func InitModule() (*notification.Module, error) {
	db := testioc.InitDB()
	notificationDAO, err := initNotificationDAO(db)
	if err != nil {
		return nil, err
	}
	notificationRepository := repository.NewNotificationRepository(notificationDAO)
	serviceService := service.NewService(notificationRepository)
	handler := web.NewHandler(serviceService)
	mq := testioc.InitMQ()
	ratingEventConsumer, err := initConsumer(serviceService, mq)
	if err != nil {
		return nil, err
	}
	module := &notification.Module{
		Hdl:      handler,
		Consumer: ratingEventConsumer,
		Svc:      serviceService,
	}
	return module, nil
}

// wire.go:

func initNotificationDAO(db *egorm.Component) (dao.NotificationDAO, error) {
	err := dao.InitTables(db)
	if err != nil {
		return nil, err
	}
	return dao.NewGORMNotificationDAO(db), nil
}

func initConsumer(svc service.Service, q mq.MQ) (*event.RatingEventConsumer, error) {
	return event.NewRatingEventConsumer(svc, q)
}
