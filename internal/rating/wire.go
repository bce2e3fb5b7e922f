// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package rating

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"gorm.io/gorm"

	"github.com/neji123/gestion-stagiaires/internal/email"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/event"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/repository"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/repository/cache"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/repository/dao"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/service"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/web"
	"github.com/neji123/gestion-stagiaires/internal/user"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	userModule *user.Module,
	emailSvc email.Service,
) (*Module, error) {
	wire.Build(
		initRatingDAO,
		initRatingEventProducer,
		initService,
		cache.NewStatsCache,
		repository.NewRatingRepository,
		initStatsService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

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
