package service

import (
	"context"

	"github.com/neji123/gestion-stagiaires/internal/notification/internal/domain"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/repository"
)

var ErrNotificationNotFound = repository.ErrNotificationNotFound

//go:generate mockgen -source=./notification.go -destination=../../mocks/notification_svc.mock.go -package=notificationmocks Service
type Service interface {
	Create(ctx context.Context, n domain.Notification) (int64, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, uid int64, id int64) error
	MarkAllRead(ctx context.Context, uid int64) error
}

type service struct {
	repo repository.NotificationRepository
}

func NewService(repo repository.NotificationRepository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, n domain.Notification) (int64, error) {
	return s.repo.Create(ctx, n)
}

func (s *service) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.ListByUser(ctx, uid, offset, limit)
}

func (s *service) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	return s.repo.CountUnread(ctx, uid)
}

func (s *service) MarkRead(ctx context.Context, uid int64, id int64) error {
	return s.repo.MarkRead(ctx, uid, id)
}

func (s *service) MarkAllRead(ctx context.Context, uid int64) error {
	return s.repo.MarkAllRead(ctx, uid)
}
