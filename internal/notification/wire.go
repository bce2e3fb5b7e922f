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

package notification

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/neji123/gestion-stagiaires/internal/notification/internal/event"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/repository"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/repository/dao"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/service"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/web"
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		initNotificationDAO,
		initConsumer,
		repository.NewNotificationRepository,
		service.NewService,
		web.NewHandler,
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
