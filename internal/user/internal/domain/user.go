package domain

import (
	"errors"
	"strings"
)

type User struct {
	Id        int64
	SN        string
	Email     string
	FirstName string
	LastName  string
	Avatar    string
	Role      Role
	// TutorId 实习生归属的导师，非实习生为 0
	TutorId    int64
	Department string
}

// Name 展示用的全名
func (u User) Name() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u User) IsIntern() bool {
	return u.Role == RoleIntern
}

func (u User) IsTutor() bool {
	return u.Role == RoleTutor
}

// CanApprove 审核评价的权限，HR 和管理员都可以
func (u User) CanApprove() bool {
	return u.Role == RoleHR || u.Role == RoleAdmin
}

var ErrUnknownRole = errors.New("未知的用户角色")

type Role uint8

const (
	RoleUnknown Role = 0
	RoleAdmin   Role = 1
	RoleHR      Role = 2
	RoleTutor   Role = 3
	RoleIntern  Role = 4
)

func (r Role) ToUint8() uint8 {
	return uint8(r)
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleHR:
		return "hr"
	case RoleTutor:
		return "tutor"
	case RoleIntern:
		return "intern"
	default:
		return "unknown"
	}
}

// ParseRole 只接受已知角色，其它一律报错
func ParseRole(s string) (Role, error) {
	switch s {
	case "admin":
		return RoleAdmin, nil
	case "hr":
		return RoleHR, nil
	case "tutor":
		return RoleTutor, nil
	case "intern":
		return RoleIntern, nil
	default:
		return RoleUnknown, ErrUnknownRole
	}
}
