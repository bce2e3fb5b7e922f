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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"

	"github.com/neji123/gestion-stagiaires/internal/rating/internal/domain"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/repository/dao"
)

var (
	ErrRatingNotFound  = dao.ErrDataNotFound
	ErrDuplicateRating = dao.ErrDuplicateRating
	ErrStateMismatch   = dao.ErrStateMismatch
)

//go:generate mockgen -source=./rating.go -destination=../../mocks/rating_repo.mock.go -package=ratingmocks RatingRepository
type RatingRepository interface {
	Create(ctx context.Context, r domain.Rating) (int64, error)
	GetById(ctx context.Context, id int64) (domain.Rating, error)
	UpdateEditable(ctx context.Context, r domain.Rating) error
	MarkSubmitted(ctx context.Context, id int64) error
	MarkApproved(ctx context.Context, id int64, approverId int64) error
	MarkRejected(ctx context.Context, id int64, approverId int64, comment string) error
	SetResponse(ctx context.Context, id int64, response string) error
	Delete(ctx context.Context, id int64) error

	ByEvaluator(ctx context.Context, evaluatorId int64) ([]domain.Rating, error)
	ByEvaluated(ctx context.Context, evaluatedUserId int64) ([]domain.Rating, error)
	ByStatus(ctx context.Context, status domain.Status) ([]domain.Rating, error)
	// Counted 所有进入统计口径的评价，即 Submitted/Approved
	Counted(ctx context.Context) ([]domain.Rating, error)
	AwaitingResponse(ctx context.Context, evaluatedUserId int64) ([]domain.Rating, error)
	HasAlreadyRated(ctx context.Context, evaluatorId, evaluatedUserId int64,
		kind domain.Kind, periodStart, periodEnd time.Time) (bool, error)
	List(ctx context.Context, f domain.Filter) ([]domain.Rating, error)
	Count(ctx context.Context, f domain.Filter) (int64, error)
}

type ratingRepository struct {
	dao dao.RatingDAO
}

func NewRatingRepository(d dao.RatingDAO) RatingRepository {
	return &ratingRepository{dao: d}
}

func (r *ratingRepository) Create(ctx context.Context, rt domain.Rating) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(rt))
}

func (r *ratingRepository) GetById(ctx context.Context, id int64) (domain.Rating, error) {
	rt, err := r.dao.GetById(ctx, id)
	return r.toDomain(rt), err
}

func (r *ratingRepository) UpdateEditable(ctx context.Context, rt domain.Rating) error {
	return r.dao.UpdateEditable(ctx, r.toEntity(rt))
}

func (r *ratingRepository) MarkSubmitted(ctx context.Context, id int64) error {
	return r.dao.MarkSubmitted(ctx, id)
}

func (r *ratingRepository) MarkApproved(ctx context.Context, id int64, approverId int64) error {
	return r.dao.MarkApproved(ctx, id, approverId)
}

func (r *ratingRepository) MarkRejected(ctx context.Context, id int64, approverId int64, comment string) error {
	return r.dao.MarkRejected(ctx, id, approverId, comment)
}

func (r *ratingRepository) SetResponse(ctx context.Context, id int64, response string) error {
	return r.dao.SetResponse(ctx, id, response)
}

func (r *ratingRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *ratingRepository) ByEvaluator(ctx context.Context, evaluatorId int64) ([]domain.Rating, error) {
	rts, err := r.dao.ByEvaluator(ctx, evaluatorId)
	return r.toDomains(rts), err
}

func (r *ratingRepository) ByEvaluated(ctx context.Context, evaluatedUserId int64) ([]domain.Rating, error) {
	rts, err := r.dao.ByEvaluated(ctx, evaluatedUserId)
	return r.toDomains(rts), err
}

func (r *ratingRepository) ByStatus(ctx context.Context, status domain.Status) ([]domain.Rating, error) {
	rts, err := r.dao.ByStatus(ctx, status.ToUint8())
	return r.toDomains(rts), err
}

func (r *ratingRepository) Counted(ctx context.Context) ([]domain.Rating, error) {
	rts, err := r.dao.ByStatuses(ctx, []uint8{
		domain.RatingStatusSubmitted.ToUint8(),
		domain.RatingStatusApproved.ToUint8(),
	})
	return r.toDomains(rts), err
}

func (r *ratingRepository) AwaitingResponse(ctx context.Context, evaluatedUserId int64) ([]domain.Rating, error) {
	rts, err := r.dao.AwaitingResponse(ctx, evaluatedUserId)
	return r.toDomains(rts), err
}

func (r *ratingRepository) HasAlreadyRated(ctx context.Context,
	evaluatorId, evaluatedUserId int64, kind domain.Kind, periodStart, periodEnd time.Time) (bool, error) {
	return r.dao.HasAlreadyRated(ctx, evaluatorId, evaluatedUserId,
		kind.ToUint8(), unixMilliOrZero(periodStart), unixMilliOrZero(periodEnd))
}

func (r *ratingRepository) List(ctx context.Context, f domain.Filter) ([]domain.Rating, error) {
	rts, err := r.dao.WithFilters(ctx, r.toDAOFilter(f))
	return r.toDomains(rts), err
}

func (r *ratingRepository) Count(ctx context.Context, f domain.Filter) (int64, error) {
	return r.dao.CountWithFilters(ctx, r.toDAOFilter(f))
}

func (r *ratingRepository) toDAOFilter(f domain.Filter) dao.Filter {
	return dao.Filter{
		EvaluatorId:     f.EvaluatorId,
		EvaluatedUserId: f.EvaluatedUserId,
		Kind:            f.Kind.ToUint8(),
		Status:          f.Status.ToUint8(),
		MinScore:        f.MinScore,
		MaxScore:        f.MaxScore,
		StageReference:  f.StageReference,
		FromDate:        unixMilliOrZero(f.FromDate),
		ToDate:          unixMilliOrZero(f.ToDate),
		Offset:          f.Offset,
		Limit:           f.Limit,
		SortBy:          f.SortBy,
		Desc:            f.Desc,
	}
}

func (r *ratingRepository) toDomains(rts []dao.Rating) []domain.Rating {
	return slice.Map(rts, func(idx int, src dao.Rating) domain.Rating {
		return r.toDomain(src)
	})
}

func (r *ratingRepository) toDomain(rt dao.Rating) domain.Rating {
	return domain.Rating{
		ID:               rt.ID,
		EvaluatorId:      rt.EvaluatorId,
		EvaluatedUserId:  rt.EvaluatedUserId,
		Kind:             domain.Kind(rt.Kind),
		Score:            rt.Score,
		Comment:          rt.Comment,
		DetailedScores:   rt.DetailedScores,
		Status:           domain.Status(rt.Status),
		PeriodStart:      timeOrZero(rt.PeriodStart),
		PeriodEnd:        timeOrZero(rt.PeriodEnd),
		StageReference:   rt.StageReference,
		SubmittedAt:      timeOrZero(rt.SubmittedAt),
		ApprovedAt:       timeOrZero(rt.ApprovedAt),
		ApprovedByUserId: rt.ApprovedByUserId,
		Response:         rt.Response,
		ResponseDate:     timeOrZero(rt.ResponseDate),
		Ctime:            timeOrZero(rt.Ctime),
		Utime:            timeOrZero(rt.Utime),
	}
}

func (r *ratingRepository) toEntity(rt domain.Rating) dao.Rating {
	return dao.Rating{
		ID:               rt.ID,
		EvaluatorId:      rt.EvaluatorId,
		EvaluatedUserId:  rt.EvaluatedUserId,
		Kind:             rt.Kind.ToUint8(),
		Score:            rt.Score,
		Comment:          rt.Comment,
		DetailedScores:   rt.DetailedScores,
		Status:           rt.Status.ToUint8(),
		PeriodStart:      unixMilliOrZero(rt.PeriodStart),
		PeriodEnd:        unixMilliOrZero(rt.PeriodEnd),
		StageReference:   rt.StageReference,
		SubmittedAt:      unixMilliOrZero(rt.SubmittedAt),
		ApprovedAt:       unixMilliOrZero(rt.ApprovedAt),
		ApprovedByUserId: rt.ApprovedByUserId,
		Response:         rt.Response,
		ResponseDate:     unixMilliOrZero(rt.ResponseDate),
	}
}

func timeOrZero(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

func unixMilliOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}
