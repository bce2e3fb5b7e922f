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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrDataNotFound 通用的数据没找到
	ErrDataNotFound = gorm.ErrRecordNotFound
	// ErrDuplicateRating 撞上了 uk_rating_tuple
	ErrDuplicateRating = errors.New("同一周期内已经存在未被拒绝的评价")
	// ErrStateMismatch 条件更新没命中，说明状态已经被并发改掉了
	ErrStateMismatch = errors.New("评价状态已变更")
)

//go:generate mockgen -source=./rating.go -package=daomocks -destination=./mocks/rating.mock.go RatingDAO
type RatingDAO interface {
	Create(ctx context.Context, r Rating) (int64, error)
	GetById(ctx context.Context, id int64) (Rating, error)
	// UpdateEditable 更新评价人可改的字段，只在 Draft/Submitted 下调用
	UpdateEditable(ctx context.Context, r Rating) error
	MarkSubmitted(ctx context.Context, id int64) error
	MarkApproved(ctx context.Context, id int64, approverId int64) error
	// MarkRejected 同时把 active 置 NULL，让唯一索引放行重新评价
	MarkRejected(ctx context.Context, id int64, approverId int64, comment string) error
	SetResponse(ctx context.Context, id int64, response string) error
	Delete(ctx context.Context, id int64) error

	ByEvaluator(ctx context.Context, evaluatorId int64) ([]Rating, error)
	ByEvaluated(ctx context.Context, evaluatedUserId int64) ([]Rating, error)
	ByStatus(ctx context.Context, status uint8) ([]Rating, error)
	ByStatuses(ctx context.Context, statuses []uint8) ([]Rating, error)
	// AwaitingResponse 已通过且被评价人还没回应的
	AwaitingResponse(ctx context.Context, evaluatedUserId int64) ([]Rating, error)
	HasAlreadyRated(ctx context.Context, evaluatorId, evaluatedUserId int64,
		kind uint8, periodStart, periodEnd int64) (bool, error)
	WithFilters(ctx context.Context, f Filter) ([]Rating, error)
	CountWithFilters(ctx context.Context, f Filter) (int64, error)
}

// Filter 零值字段不参与过滤
type Filter struct {
	EvaluatorId     int64
	EvaluatedUserId int64
	Kind            uint8
	Status          uint8
	MinScore        float64
	MaxScore        float64
	StageReference  string
	FromDate        int64
	ToDate          int64

	Offset int
	Limit  int
	SortBy string
	Desc   bool
}

type GORMRatingDAO struct {
	db *egorm.Component
}

func NewGORMRatingDAO(db *egorm.Component) RatingDAO {
	return &GORMRatingDAO{db: db}
}

func (d *GORMRatingDAO) Create(ctx context.Context, r Rating) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	r.Active = sql.NullInt16{Int16: 1, Valid: true}
	err := d.db.WithContext(ctx).Create(&r).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateRating
		}
	}
	return r.ID, err
}

func (d *GORMRatingDAO) GetById(ctx context.Context, id int64) (Rating, error) {
	var r Rating
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&r).Error
	return r, err
}

func (d *GORMRatingDAO) UpdateEditable(ctx context.Context, r Rating) error {
	err := d.db.WithContext(ctx).
		Model(&Rating{}).
		Where("id = ?", r.ID).
		Updates(map[string]any{
			"score":           r.Score,
			"comment":         r.Comment,
			"detailed_scores": r.DetailedScores,
			"period_start":    r.PeriodStart,
			"period_end":      r.PeriodEnd,
			"stage_reference": r.StageReference,
			"utime":           time.Now().UnixMilli(),
		}).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return ErrDuplicateRating
		}
	}
	return err
}

// MarkSubmitted 带状态条件的单条 UPDATE，天然就是原子的
func (d *GORMRatingDAO) MarkSubmitted(ctx context.Context, id int64) error {
	now := time.Now().UnixMilli()
	res := d.db.WithContext(ctx).
		Model(&Rating{}).
		Where("id = ? AND status = ?", id, statusDraft).
		Updates(map[string]any{
			"status":       statusSubmitted,
			"submitted_at": now,
			"utime":        now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStateMismatch
	}
	return nil
}

func (d *GORMRatingDAO) MarkApproved(ctx context.Context, id int64, approverId int64) error {
	now := time.Now().UnixMilli()
	res := d.db.WithContext(ctx).
		Model(&Rating{}).
		Where("id = ? AND status = ?", id, statusSubmitted).
		Updates(map[string]any{
			"status":              statusApproved,
			"approved_at":         now,
			"approved_by_user_id": approverId,
			"utime":               now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStateMismatch
	}
	return nil
}

func (d *GORMRatingDAO) MarkRejected(ctx context.Context, id int64, approverId int64, comment string) error {
	now := time.Now().UnixMilli()
	res := d.db.WithContext(ctx).
		Model(&Rating{}).
		Where("id = ? AND status = ?", id, statusSubmitted).
		Updates(map[string]any{
			"status":              statusRejected,
			"approved_by_user_id": approverId,
			"comment":             comment,
			"active":              nil,
			"utime":               now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStateMismatch
	}
	return nil
}

// SetResponse 回应只允许落一次
func (d *GORMRatingDAO) SetResponse(ctx context.Context, id int64, response string) error {
	now := time.Now().UnixMilli()
	res := d.db.WithContext(ctx).
		Model(&Rating{}).
		Where("id = ? AND status = ? AND response_date = 0", id, statusApproved).
		Updates(map[string]any{
			"response":      response,
			"response_date": now,
			"utime":         now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStateMismatch
	}
	return nil
}

func (d *GORMRatingDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&Rating{}).Error
}

func (d *GORMRatingDAO) ByEvaluator(ctx context.Context, evaluatorId int64) ([]Rating, error) {
	var res []Rating
	err := d.db.WithContext(ctx).
		Where("evaluator_id = ?", evaluatorId).
		Order("ctime desc").
		Find(&res).Error
	return res, err
}

func (d *GORMRatingDAO) ByEvaluated(ctx context.Context, evaluatedUserId int64) ([]Rating, error) {
	var res []Rating
	err := d.db.WithContext(ctx).
		Where("evaluated_user_id = ?", evaluatedUserId).
		Order("ctime desc").
		Find(&res).Error
	return res, err
}

func (d *GORMRatingDAO) ByStatus(ctx context.Context, status uint8) ([]Rating, error) {
	var res []Rating
	// 待审批队列按提交时间先来先审
	order := "ctime desc"
	if status == statusSubmitted {
		order = "submitted_at asc"
	}
	err := d.db.WithContext(ctx).
		Where("status = ?", status).
		Order(order).
		Find(&res).Error
	return res, err
}

func (d *GORMRatingDAO) ByStatuses(ctx context.Context, statuses []uint8) ([]Rating, error) {
	var res []Rating
	err := d.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Order("id asc").
		Find(&res).Error
	return res, err
}

func (d *GORMRatingDAO) AwaitingResponse(ctx context.Context, evaluatedUserId int64) ([]Rating, error) {
	var res []Rating
	err := d.db.WithContext(ctx).
		Where("evaluated_user_id = ? AND status = ? AND response_date = 0",
			evaluatedUserId, statusApproved).
		Order("approved_at desc").
		Find(&res).Error
	return res, err
}

func (d *GORMRatingDAO) HasAlreadyRated(ctx context.Context,
	evaluatorId, evaluatedUserId int64, kind uint8, periodStart, periodEnd int64) (bool, error) {
	builder := d.db.WithContext(ctx).
		Model(&Rating{}).
		Where("evaluator_id = ? AND evaluated_user_id = ? AND kind = ? AND status != ?",
			evaluatorId, evaluatedUserId, kind, statusRejected)
	// 指定了周期就按包含关系去重，否则同元组一律算重复
	if periodStart > 0 && periodEnd > 0 {
		builder = builder.Where("period_start >= ? AND period_end <= ?", periodStart, periodEnd)
	}
	var count int64
	err := builder.Count(&count).Error
	return count > 0, err
}

func (d *GORMRatingDAO) WithFilters(ctx context.Context, f Filter) ([]Rating, error) {
	var res []Rating
	builder := d.applyFilters(ctx, f).Order(d.sortClause(f))
	// Limit 为 0 表示不分页
	if f.Limit > 0 {
		builder = builder.Offset(f.Offset).Limit(f.Limit)
	}
	err := builder.Find(&res).Error
	return res, err
}

func (d *GORMRatingDAO) CountWithFilters(ctx context.Context, f Filter) (int64, error) {
	var count int64
	err := d.applyFilters(ctx, f).Count(&count).Error
	return count, err
}

func (d *GORMRatingDAO) applyFilters(ctx context.Context, f Filter) *gorm.DB {
	builder := d.db.WithContext(ctx).Model(&Rating{})
	if f.EvaluatorId > 0 {
		builder = builder.Where("evaluator_id = ?", f.EvaluatorId)
	}
	if f.EvaluatedUserId > 0 {
		builder = builder.Where("evaluated_user_id = ?", f.EvaluatedUserId)
	}
	if f.Kind > 0 {
		builder = builder.Where("kind = ?", f.Kind)
	}
	if f.Status > 0 {
		builder = builder.Where("status = ?", f.Status)
	}
	if f.MinScore > 0 {
		builder = builder.Where("score >= ?", f.MinScore)
	}
	if f.MaxScore > 0 {
		builder = builder.Where("score <= ?", f.MaxScore)
	}
	if f.StageReference != "" {
		builder = builder.Where("stage_reference = ?", f.StageReference)
	}
	if f.FromDate > 0 {
		builder = builder.Where("ctime >= ?", f.FromDate)
	}
	if f.ToDate > 0 {
		builder = builder.Where("ctime <= ?", f.ToDate)
	}
	return builder
}

func (d *GORMRatingDAO) sortClause(f Filter) string {
	direction := "asc"
	if f.Desc {
		direction = "desc"
	}
	switch f.SortBy {
	case "score":
		return "score " + direction
	case "status":
		return "status " + direction
	case "kind":
		return "kind " + direction
	default:
		return "ctime " + direction
	}
}

// 和 domain 里的状态保持一致，dao 不反向依赖 domain
const (
	statusDraft     uint8 = 1
	statusSubmitted uint8 = 2
	statusApproved  uint8 = 3
	statusRejected  uint8 = 4
)
