package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"

	"github.com/neji123/gestion-stagiaires/internal/notification/internal/domain"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/repository/dao"
)

var ErrNotificationNotFound = dao.ErrDataNotFound

//go:generate mockgen -source=./notification.go -destination=../../mocks/notification_repo.mock.go -package=notificationmocks NotificationRepository
type NotificationRepository interface {
	Create(ctx context.Context, n domain.Notification) (int64, error)
	ListByUser(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, uid int64, id int64) error
	MarkAllRead(ctx context.Context, uid int64) error
}

type notificationRepository struct {
	dao dao.NotificationDAO
}

func NewNotificationRepository(d dao.NotificationDAO) NotificationRepository {
	return &notificationRepository{dao: d}
}

func (r *notificationRepository) Create(ctx context.Context, n domain.Notification) (int64, error) {
	return r.dao.Create(ctx, dao.Notification{
		UserId:          n.UserId,
		Title:           n.Title,
		Message:         n.Message,
		Type:            n.Type.ToUint8(),
		Status:          domain.StatusUnread.ToUint8(),
		RelatedEntityId: n.RelatedEntityId,
	})
}

func (r *notificationRepository) ListByUser(ctx context.Context,
	uid int64, offset, limit int) ([]domain.Notification, error) {
	ns, err := r.dao.ListByUser(ctx, uid, offset, limit)
	return slice.Map(ns, func(idx int, src dao.Notification) domain.Notification {
		return r.toDomain(src)
	}), err
}

func (r *notificationRepository) CountUnread(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountUnread(ctx, uid)
}

func (r *notificationRepository) MarkRead(ctx context.Context, uid int64, id int64) error {
	return r.dao.MarkRead(ctx, uid, id)
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, uid int64) error {
	return r.dao.MarkAllRead(ctx, uid)
}

func (r *notificationRepository) toDomain(n dao.Notification) domain.Notification {
	return domain.Notification{
		Id:              n.Id,
		UserId:          n.UserId,
		Title:           n.Title,
		Message:         n.Message,
		Type:            domain.Type(n.Type),
		Status:          domain.Status(n.Status),
		RelatedEntityId: n.RelatedEntityId,
		Ctime:           time.UnixMilli(n.Ctime),
		Utime:           time.UnixMilli(n.Utime),
	}
}
