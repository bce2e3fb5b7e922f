package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./notification.go -destination=../../../mocks/notification_dao.mock.go -package=notificationmocks NotificationDAO
type NotificationDAO interface {
	Create(ctx context.Context, n Notification) (int64, error)
	ListByUser(ctx context.Context, uid int64, offset, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, uid int64, id int64) error
	MarkAllRead(ctx context.Context, uid int64) error
}

type GORMNotificationDAO struct {
	db *egorm.Component
}

func NewGORMNotificationDAO(db *egorm.Component) NotificationDAO {
	return &GORMNotificationDAO{db: db}
}

func (d *GORMNotificationDAO) Create(ctx context.Context, n Notification) (int64, error) {
	now := time.Now().UnixMilli()
	n.Ctime = now
	n.Utime = now
	err := d.db.WithContext(ctx).Create(&n).Error
	return n.Id, err
}

func (d *GORMNotificationDAO) ListByUser(ctx context.Context,
	uid int64, offset, limit int) ([]Notification, error) {
	var ns []Notification
	err := d.db.WithContext(ctx).
		Where("user_id = ?", uid).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&ns).Error
	return ns, err
}

func (d *GORMNotificationDAO) CountUnread(ctx context.Context, uid int64) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).
		Model(&Notification{}).
		Where("user_id = ? AND status = ?", uid, statusUnread).
		Count(&cnt).Error
	return cnt, err
}

func (d *GORMNotificationDAO) MarkRead(ctx context.Context, uid int64, id int64) error {
	res := d.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ? AND user_id = ?", id, uid).
		Updates(map[string]any{
			"status": statusRead,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

func (d *GORMNotificationDAO) MarkAllRead(ctx context.Context, uid int64) error {
	return d.db.WithContext(ctx).
		Model(&Notification{}).
		Where("user_id = ? AND status = ?", uid, statusUnread).
		Updates(map[string]any{
			"status": statusRead,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

const (
	statusUnread uint8 = 1
	statusRead   uint8 = 2
)

type Notification struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	UserId  int64  `gorm:"index:idx_user_status,priority:1"`
	Title   string `gorm:"type:varchar(256)"`
	Message string
	// 类型，1-收到评价 2-评价通过 3-评价被驳回
	Type uint8 `gorm:"type:tinyint"`
	// 状态，1-未读 2-已读
	Status uint8 `gorm:"type:tinyint;index:idx_user_status,priority:2"`
	// 关联的评价
	RelatedEntityId int64
	Ctime           int64
	Utime           int64
}

func (Notification) TableName() string {
	return "notifications"
}
