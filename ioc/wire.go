//go:build wireinject

package ioc

import (
	"github.com/google/wire"

	"github.com/neji123/gestion-stagiaires/internal/notification"
	"github.com/neji123/gestion-stagiaires/internal/rating"
	"github.com/neji123/gestion-stagiaires/internal/user"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitEmailService)

func InitApp() (*App, error) {
	wire.Build(
		BaseSet,
		InitSession,
		InitUserModule,
		InitRatingModule,
		InitNotificationModule,
		wire.FieldsOf(new(*user.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*rating.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*notification.Module), "Hdl"),
		initGinxServer,
		InitAdminServer,
		initMQConsumers,
		wire.Struct(new(App), "*"),
	)
	return new(App), nil
}
