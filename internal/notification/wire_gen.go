// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package notification

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/event"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/repository"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/repository/dao"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/service"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/web"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, q mq.MQ) (*Module, error) {
	notificationDAO := initNotificationDAO(db)
	notificationRepository := repository.NewNotificationRepository(notificationDAO)
	serviceService := service.NewService(notificationRepository)
	handler := web.NewHandler(serviceService)
	ratingEventConsumer := initConsumer(serviceService, q)
	module := &Module{
		Hdl:      handler,
		Consumer: ratingEventConsumer,
		Svc:      serviceService,
	}
	return module, nil
}

// wire.go:

var daoOnce = sync.Once{}

func initTableOnce(db *gorm.DB) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func initNotificationDAO(db *egorm.Component) dao.NotificationDAO {
	initTableOnce(db)
	return dao.NewGORMNotificationDAO(db)
}

func initConsumer(svc service.Service, q mq.MQ) *event.RatingEventConsumer {
	consumer, err := event.NewRatingEventConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	return consumer
}
