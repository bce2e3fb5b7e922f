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

	"github.com/neji123/gestion-stagiaires/internal/notification"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/event"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/repository"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/repository/dao"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/service"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/web"
	testioc "github.com/neji123/gestion-stagiaires/internal/test/ioc"
)

func InitModule() (*notification.Module, error) {
	wire.Build(
		testioc.InitDB,
		testioc.InitMQ,
		initNotificationDAO,
		initConsumer,
		repository.NewNotificationRepository,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(notification.Module), "*"),
	)
	return new(notification.Module), nil
}

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
