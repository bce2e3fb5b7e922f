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

package ioc

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"

	"github.com/neji123/gestion-stagiaires/internal/email"
	"github.com/neji123/gestion-stagiaires/internal/notification"
	"github.com/neji123/gestion-stagiaires/internal/rating"
	"github.com/neji123/gestion-stagiaires/internal/user"
)

func InitUserModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) *user.Module {
	m, err := user.InitModule(db, ec, q)
	if err != nil {
		panic(err)
	}
	return m
}

func InitRatingModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	userModule *user.Module,
	emailSvc email.Service) *rating.Module {
	m, err := rating.InitModule(db, ec, q, userModule, emailSvc)
	if err != nil {
		panic(err)
	}
	return m
}

func InitNotificationModule(db *egorm.Component, q mq.MQ) *notification.Module {
	m, err := notification.InitModule(db, q)
	if err != nil {
		panic(err)
	}
	return m
}
