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

package startup

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"

	"github.com/neji123/gestion-stagiaires/internal/email"
	"github.com/neji123/gestion-stagiaires/internal/rating"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/event"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/repository"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/repository/cache"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/repository/dao"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/service"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/web"
	testioc "github.com/neji123/gestion-stagiaires/internal/test/ioc"
	"github.com/neji123/gestion-stagiaires/internal/user"
)

func InitModule(userModule *user.Module, emailSvc email.Service) (*rating.Module, error) {
	wire.Build(
		testioc.BaseSet,
		initRatingDAO,
		initRatingEventProducer,
		initService,
		cache.NewStatsCache,
		repository.NewRatingRepository,
		initStatsService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.Struct(new(rating.Module), "*"),
	)
	return new(rating.Module), nil
}

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
