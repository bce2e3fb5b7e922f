package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrUserDuplicate 这个算是 user 专属的
var ErrUserDuplicate = errors.New("用户已经注册")

//go:generate mockgen -source=./user.go -package=daomocks -destination=mocks/user.mock.go UserDAO
type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	UpdateNonZeroFields(ctx context.Context, u User) error
	FindById(ctx context.Context, id int64) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
	FindByRole(ctx context.Context, role uint8) ([]User, error)
	FindByTutor(ctx context.Context, tutorId int64) ([]User, error)
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) UpdateNonZeroFields(ctx context.Context, u User) error {
	return ud.db.WithContext(ctx).Updates(&u).Error
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, err
}

func (ud *GORMUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).Find(&us, "id IN ?", ids).Error
	return us, err
}

func (ud *GORMUserDAO) FindByRole(ctx context.Context, role uint8) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).
		Where("role = ?", role).
		Order("id ASC").
		Find(&us).Error
	return us, err
}

func (ud *GORMUserDAO) FindByTutor(ctx context.Context, tutorId int64) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).
		Where("tutor_id = ? AND role = ?", tutorId, roleIntern).
		Order("id ASC").
		Find(&us).Error
	return us, err
}

// 和 domain 的取值保持一致
const roleIntern uint8 = 4

type User struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	SN        string `gorm:"type:varchar(256);unique"`
	Email     string `gorm:"type:varchar(256);unique"`
	FirstName string `gorm:"type:varchar(128)"`
	LastName  string `gorm:"type:varchar(128)"`
	Avatar    string
	// 角色，1-admin 2-hr 3-tutor 4-intern
	Role uint8 `gorm:"type:tinyint;index:idx_role_tutor,priority:1"`
	// 导师，只对实习生有意义
	TutorId    int64 `gorm:"index:idx_role_tutor,priority:2"`
	Department string
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}
