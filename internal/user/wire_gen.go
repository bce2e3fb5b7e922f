// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package user

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/neji123/gestion-stagiaires/internal/user/internal/event"
	"github.com/neji123/gestion-stagiaires/internal/user/internal/repository"
	"github.com/neji123/gestion-stagiaires/internal/user/internal/repository/cache"
	"github.com/neji123/gestion-stagiaires/internal/user/internal/repository/dao"
	"github.com/neji123/gestion-stagiaires/internal/user/internal/service"
	"github.com/neji123/gestion-stagiaires/internal/user/internal/web"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, ec ecache.Cache, q mq.MQ) (*Module, error) {
	userDAO := initUserDAO(db)
	userCache := cache.NewUserECache(ec)
	userRepository := repository.NewCachedUserRepository(userDAO, userCache)
	registrationEventProducer := initRegistrationEventProducer(q)
	userService := service.NewUserService(userRepository, registrationEventProducer)
	handler := web.NewHandler(userService)
	adminHandler := web.NewAdminHandler(userService)
	module := &Module{
		Hdl:      handler,
		AdminHdl: adminHandler,
		Svc:      userService,
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

func initUserDAO(db *egorm.Component) dao.UserDAO {
	initTableOnce(db)
	return dao.NewGORMUserDAO(db)
}

func initRegistrationEventProducer(q mq.MQ) *event.RegistrationEventProducer {
	producer, err := event.NewRegistrationEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}
