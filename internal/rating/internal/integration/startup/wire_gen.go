// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/neji123/gestion-stagiaires/internal/email"
	"github.com/neji123/gestion-stagiaires/internal/rating"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/event"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/repository"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/repository/cache"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/repository/dao"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/service"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/web"
	"github.com/neji123/gestion-stagiaires/internal/test/ioc"
	"github.com/neji123/gestion-stagiaires/internal/user"
)

// Injectors from wire.go:

func InitModule(userModule *user.Module, emailSvc email.Service) (*rating.Module, error) {
	db := testioc.InitDB()
	ratingDAO, err := initRatingDAO(db)
	if err != nil {
		return nil, err
	}
	ratingRepository := repository.NewRatingRepository(ratingDAO)
	userService := userModule.Svc
	mq := testioc.InitMQ()
	ratingEventProducer, err := initRatingEventProducer(mq)
	if err != nil {
		return nil, err
	}
	service := initService(ratingRepository, userService, ratingEventProducer, emailSvc)
	ecacheCache := testioc.InitCache()
	statsCache := cache.NewStatsCache(ecacheCache)
	statsService := initStatsService(ratingRepository, userService, statsCache)
	handler := web.NewHandler(service, statsService)
	adminHandler := web.NewAdminHandler(service, statsService)
	module := &rating.Module{
		Hdl:      handler,
		AdminHdl: adminHandler,
		Svc:      service,
	}
	return module, nil
}

// wire.go:

func initRatingDAO(db *egorm.Component) (dao.RatingDAO, error) {
	err := dao.InitTables(db)
	if err != nil {
		return nil, err
	}
	return dao.NewGORMRatingDAO(db), nil
}

func initRatingEventProducer(q mq.MQ) (event.RatingEventProducer, error) {
	return event.NewRatingEventProducer(q)
}

func initService(repo repository.RatingRepository,
	userSvc user.UserService,
	producer event.RatingEventProducer,
	emailSvc email.Service) service.Service {
	const maxScore = 5
	return service.NewService(repo, userSvc, producer, emailSvc, maxScore)
}

func initStatsService(repo repository.RatingRepository,
	userSvc user.UserService,
	c cache.StatsCache) service.StatsService {
	const maxScore = 5
	return service.NewStatsService(repo, userSvc, c, maxScore)
}
