// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package rating

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/neji123/gestion-stagiaires/internal/email"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/event"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/repository"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/repository/cache"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/repository/dao"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/service"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/web"
	"github.com/neji123/gestion-stagiaires/internal/user"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, ec ecache.Cache, q mq.MQ, userModule *user.Module, emailSvc email.Service) (*Module, error) {
	ratingDAO := initRatingDAO(db)
	ratingRepository := repository.NewRatingRepository(ratingDAO)
	userService := userModule.Svc
	ratingEventProducer := initRatingEventProducer(q)
	service := initService(ratingRepository, userService, ratingEventProducer, emailSvc)
	statsCache := cache.NewStatsCache(ec)
	statsService := initStatsService(ratingRepository, userService, statsCache)
	handler := web.NewHandler(service, statsService)
	adminHandler := web.NewAdminHandler(service, statsService)
	module := &Module{
		Hdl:      handler,
		AdminHdl: adminHandler,
		Svc:      service,
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

func initRatingDAO(db *egorm.Component) dao.RatingDAO {
	initTableOnce(db)
	return dao.NewGORMRatingDAO(db)
}

func initRatingEventProducer(q mq.MQ) event.RatingEventProducer {
	producer, err := event.NewRatingEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}

func initService(repo repository.RatingRepository,
	userSvc user.UserService,
	producer event.RatingEventProducer,
	emailSvc email.Service) service.Service {
	return service.NewService(repo, userSvc, producer, emailSvc, ratingMaxScore())
}

func initStatsService(repo repository.RatingRepository,
	userSvc user.UserService,
	c cache.StatsCache) service.StatsService {
	return service.NewStatsService(repo, userSvc, c, ratingMaxScore())
}

// ratingMaxScore 分数上限可配，默认五分制
func ratingMaxScore() float64 {
	maxScore := econf.GetFloat64("rating.maxScore")
	if maxScore <= 0 {
		maxScore = 5
	}
	return maxScore
}
