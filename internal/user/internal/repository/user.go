package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"

	"github.com/neji123/gestion-stagiaires/internal/user/internal/domain"
	"github.com/neji123/gestion-stagiaires/internal/user/internal/repository/cache"
	"github.com/neji123/gestion-stagiaires/internal/user/internal/repository/dao"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	// Update 更新数据，只有非 0 值才会更新
	Update(ctx context.Context, u domain.User) error
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	FindByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	FindByTutor(ctx context.Context, tutorId int64) ([]domain.User, error)
}

// CachedUserRepository 使用了缓存的 repository 实现
type CachedUserRepository struct {
	dao   dao.UserDAO
	cache cache.UserCache
}

// NewCachedUserRepository 支持缓存的实现
func NewCachedUserRepository(d dao.UserDAO,
	c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:   d,
		cache: c,
	}
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateNonZeroFields(ctx, ur.domainToEntity(u))
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, u.Id)
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	entity := ur.domainToEntity(u)
	entity.Id = 0
	return ur.dao.Insert(ctx, entity)
}

func (ur *CachedUserRepository) FindById(ctx context.Context,
	id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, err
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	// 忽略掉这里的错误
	_ = ur.cache.Set(ctx, u)
	return u, nil
}

func (ur *CachedUserRepository) FindByEmail(ctx context.Context,
	email string) (domain.User, error) {
	ue, err := ur.dao.FindByEmail(ctx, email)
	return ur.entityToDomain(ue), err
}

func (ur *CachedUserRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	ues, err := ur.dao.FindByIds(ctx, ids)
	return ur.entitiesToDomains(ues), err
}

func (ur *CachedUserRepository) FindByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	ues, err := ur.dao.FindByRole(ctx, role.ToUint8())
	return ur.entitiesToDomains(ues), err
}

func (ur *CachedUserRepository) FindByTutor(ctx context.Context, tutorId int64) ([]domain.User, error) {
	ues, err := ur.dao.FindByTutor(ctx, tutorId)
	return ur.entitiesToDomains(ues), err
}

func (ur *CachedUserRepository) entitiesToDomains(ues []dao.User) []domain.User {
	return slice.Map(ues, func(idx int, src dao.User) domain.User {
		return ur.entityToDomain(src)
	})
}

func (ur *CachedUserRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:         u.Id,
		SN:         u.SN,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Avatar:     u.Avatar,
		Role:       u.Role.ToUint8(),
		TutorId:    u.TutorId,
		Department: u.Department,
	}
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	return domain.User{
		Id:         ue.Id,
		SN:         ue.SN,
		Email:      ue.Email,
		FirstName:  ue.FirstName,
		LastName:   ue.LastName,
		Avatar:     ue.Avatar,
		Role:       domain.Role(ue.Role),
		TutorId:    ue.TutorId,
		Department: ue.Department,
	}
}
