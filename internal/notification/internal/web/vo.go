package web

import (
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/domain"
)

type Notification struct {
	Id              int64  `json:"id"`
	Title           string `json:"title"`
	Message         string `json:"message"`
	Type            string `json:"type"`
	Read            bool   `json:"read"`
	RelatedEntityId int64  `json:"relatedEntityId,omitempty"`
	Ctime           int64  `json:"ctime"`
}

func newNotification(n domain.Notification) Notification {
	return Notification{
		Id:              n.Id,
		Title:           n.Title,
		Message:         n.Message,
		Type:            n.Type.String(),
		Read:            n.Status == domain.StatusRead,
		RelatedEntityId: n.RelatedEntityId,
		Ctime:           n.Ctime.UnixMilli(),
	}
}

type NotificationList struct {
	Notifications []Notification `json:"notifications"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type IdReq struct {
	Id int64 `json:"id"`
}
