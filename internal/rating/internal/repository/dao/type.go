package dao

import "database/sql"

// Rating 评价表。
// uk_rating_tuple 把“同一评价人对同一被评价人同一类型同一周期只允许一条未被拒绝的评价”
// 压到存储层：Active 对未拒绝的记录恒为 1，拒绝后置 NULL，
// MySQL 唯一索引忽略 NULL，被拒绝的记录就不再挡住重新发起的评价，
// 并发重复 Create 由这个索引兜底
type Rating struct {
	ID              int64         `gorm:"primaryKey,autoIncrement"`
	EvaluatorId     int64         `gorm:"uniqueIndex:uk_rating_tuple;index:idx_evaluator;not null;comment:评价人"`
	EvaluatedUserId int64         `gorm:"uniqueIndex:uk_rating_tuple;index:idx_evaluated;not null;comment:被评价人"`
	Kind            uint8         `gorm:"uniqueIndex:uk_rating_tuple;type:tinyint(3);not null;comment:1-导师评实习生 2-实习生评导师 3-HR评实习生"`
	PeriodStart     int64         `gorm:"uniqueIndex:uk_rating_tuple;not null;default:0;comment:评价周期起点,0表示未指定"`
	PeriodEnd       int64         `gorm:"uniqueIndex:uk_rating_tuple;not null;default:0"`
	Active          sql.NullInt16 `gorm:"uniqueIndex:uk_rating_tuple;type:tinyint(3);comment:未拒绝恒为1,拒绝后置NULL"`

	Score          float64 `gorm:"not null;default:0"`
	Comment        string  `gorm:"type:text"`
	DetailedScores string  `gorm:"type:text;comment:分项评分JSON"`
	Status         uint8   `gorm:"type:tinyint(3);not null;default:1;index:idx_status;comment:1-草稿 2-已提交 3-已通过 4-已拒绝"`
	StageReference string  `gorm:"type:varchar(256);not null;default:''"`

	SubmittedAt      int64  `gorm:"not null;default:0"`
	ApprovedAt       int64  `gorm:"not null;default:0"`
	ApprovedByUserId int64  `gorm:"not null;default:0"`
	Response         string `gorm:"type:text"`
	ResponseDate     int64  `gorm:"not null;default:0"`

	Ctime int64
	Utime int64
}

func (Rating) TableName() string {
	return "ratings"
}
