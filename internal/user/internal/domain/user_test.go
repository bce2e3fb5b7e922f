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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Name(t *testing.T) {
	testCases := []struct {
		name    string
		user    User
		wantRes string
	}{
		{
			name:    "姓名齐全",
			user:    User{FirstName: "Sami", LastName: "Ben Salah"},
			wantRes: "Sami Ben Salah",
		},
		{
			name:    "只有名",
			user:    User{FirstName: "Sami"},
			wantRes: "Sami",
		},
		{
			name:    "只有姓",
			user:    User{LastName: "Ben Salah"},
			wantRes: "Ben Salah",
		},
		{
			name:    "都没填",
			user:    User{},
			wantRes: "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, tc.user.Name())
		})
	}
}

func TestParseRole(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		wantRole Role
		wantErr  error
	}{
		{name: "管理员", input: "admin", wantRole: RoleAdmin},
		{name: "HR", input: "hr", wantRole: RoleHR},
		{name: "导师", input: "tutor", wantRole: RoleTutor},
		{name: "实习生", input: "intern", wantRole: RoleIntern},
		{name: "不认识的角色", input: "manager", wantRole: RoleUnknown, wantErr: ErrUnknownRole},
		{name: "大小写敏感", input: "Admin", wantRole: RoleUnknown, wantErr: ErrUnknownRole},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			role, err := ParseRole(tc.input)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantRole, role)
			if err == nil {
				assert.Equal(t, tc.input, role.String())
			}
		})
	}
}

func TestUser_CanApprove(t *testing.T) {
	assert.True(t, User{Role: RoleAdmin}.CanApprove())
	assert.True(t, User{Role: RoleHR}.CanApprove())
	assert.False(t, User{Role: RoleTutor}.CanApprove())
	assert.False(t, User{Role: RoleIntern}.CanApprove())
}
