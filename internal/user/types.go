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

package user

import (
	"github.com/neji123/gestion-stagiaires/internal/user/internal/domain"
	"github.com/neji123/gestion-stagiaires/internal/user/internal/service"
	"github.com/neji123/gestion-stagiaires/internal/user/internal/web"
)

// Handler 暴露出去给 ioc 使用
type Handler = web.Handler
type AdminHandler = web.AdminHandler
type User = domain.User
type Role = domain.Role

const (
	RoleUnknown = domain.RoleUnknown
	RoleAdmin   = domain.RoleAdmin
	RoleHR      = domain.RoleHR
	RoleTutor   = domain.RoleTutor
	RoleIntern  = domain.RoleIntern
)

// ParseRole 给别的模块解析外部传入的角色串用
func ParseRole(s string) (Role, error) {
	return domain.ParseRole(s)
}

// UserService 方便测试
type UserService = service.UserService

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      UserService
}
