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

package service

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"

	"github.com/neji123/gestion-stagiaires/internal/user/internal/domain"
	"github.com/neji123/gestion-stagiaires/internal/user/internal/event"
	"github.com/neji123/gestion-stagiaires/internal/user/internal/repository"
)

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/user.mock.go UserService
type UserService interface {
	Profile(ctx context.Context, id int64) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	// ListByRole 按角色列出用户，角色基数都很小，不做分页
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	// InternsByTutor 某个导师名下的实习生
	InternsByTutor(ctx context.Context, tutorId int64) ([]domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)

	// UpdateNonSensitiveInfo 更新非敏感数据
	// 你可以在这里进一步补充究竟哪些数据会被更新
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error
}

type userService struct {
	repo     repository.UserRepository
	producer *event.RegistrationEventProducer
	logger   *elog.Component
}

func NewUserService(repo repository.UserRepository, p *event.RegistrationEventProducer) UserService {
	return &userService{
		repo:     repo,
		producer: p,
		logger:   elog.DefaultLogger,
	}
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	// 不让修改序列号和角色
	user.SN = ""
	user.Role = domain.RoleUnknown
	return svc.repo.Update(ctx, user)
}

func (svc *userService) Create(ctx context.Context, user domain.User) (domain.User, error) {
	user.SN = shortuuid.New()
	id, err := svc.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, err
	}
	user.Id = id

	// 发送注册成功消息
	evt := event.RegistrationEvent{Uid: id}
	if e := svc.producer.Produce(ctx, evt); e != nil {
		svc.logger.Error("发送注册成功消息失败",
			elog.FieldErr(e),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
	return user, nil
}

func (svc *userService) Profile(ctx context.Context,
	id int64) (domain.User, error) {
	// 在系统内部，基本上都是用 ID 的
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	return svc.repo.FindByIds(ctx, ids)
}

func (svc *userService) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	return svc.repo.FindByRole(ctx, role)
}

func (svc *userService) InternsByTutor(ctx context.Context, tutorId int64) ([]domain.User, error) {
	return svc.repo.FindByTutor(ctx, tutorId)
}
