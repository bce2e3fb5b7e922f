// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package ioc

import (
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitApp() (*App, error) {
	cmdable := InitRedis()
	provider := InitSession(cmdable)
	db := InitDB()
	cache := InitCache(cmdable)
	mq := InitMQ()
	module := InitUserModule(db, cache, mq)
	handler := module.Hdl
	service := InitEmailService()
	ratingModule := InitRatingModule(db, cache, mq, module, service)
	webHandler := ratingModule.Hdl
	notificationModule := InitNotificationModule(db, mq)
	handler2 := notificationModule.Hdl
	component := initGinxServer(provider, handler, webHandler, handler2)
	adminHandler := ratingModule.AdminHdl
	webAdminHandler := module.AdminHdl
	adminServer := InitAdminServer(adminHandler, webAdminHandler)
	v := initMQConsumers(notificationModule)
	app := &App{
		Web:       component,
		Admin:     adminServer,
		Consumers: v,
	}
	return app, nil
}

// wire.go:

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitEmailService)
