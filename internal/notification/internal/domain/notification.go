package domain

import "time"

type Notification struct {
	Id      int64
	UserId  int64
	Title   string
	Message string
	Type    Type
	Status  Status
	// RelatedEntityId 关联的评价 id
	RelatedEntityId int64
	Ctime           time.Time
	Utime           time.Time
}

type Type uint8

const (
	TypeUnknown        Type = 0
	TypeRatingReceived Type = 1
	TypeRatingApproved Type = 2
	TypeRatingRejected Type = 3
)

func (t Type) ToUint8() uint8 {
	return uint8(t)
}

func (t Type) String() string {
	switch t {
	case TypeRatingReceived:
		return "rating_received"
	case TypeRatingApproved:
		return "rating_approved"
	case TypeRatingRejected:
		return "rating_rejected"
	default:
		return "unknown"
	}
}

type Status uint8

const (
	StatusUnread Status = 1
	StatusRead   Status = 2
)

func (s Status) ToUint8() uint8 {
	return uint8(s)
}
