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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"

	"github.com/neji123/gestion-stagiaires/internal/email"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/domain"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/event"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/repository"
	"github.com/neji123/gestion-stagiaires/internal/user"
)

var (
	ErrRatingNotFound  = repository.ErrRatingNotFound
	ErrDuplicateRating = repository.ErrDuplicateRating
	// ErrUnauthorized 当前用户无权对目标执行此操作
	ErrUnauthorized = errors.New("无权对该用户执行此操作")
	// ErrInvalidState 评价当前状态不允许此操作
	ErrInvalidState = errors.New("评价状态不允许此操作")
	// ErrInvalidRating 入参不合法，比如自评或者分数越界
	ErrInvalidRating = errors.New("非法的评价")
)

//go:generate mockgen -source=./rating.go -destination=../../mocks/rating_svc.mock.go -package=ratingmocks Service
type Service interface {
	// Create 创建草稿态的评价
	Create(ctx context.Context, evaluatorId int64, r domain.Rating) (int64, error)
	// Update 只有评价人在 Draft/Submitted 状态下可以修改
	Update(ctx context.Context, callerId int64, r domain.Rating) error
	Submit(ctx context.Context, id int64, callerId int64) error
	Approve(ctx context.Context, id int64, approverId int64) error
	Reject(ctx context.Context, id int64, approverId int64, reason string) error
	// AddResponse 被评价人对已通过的评价做一次回应
	AddResponse(ctx context.Context, id int64, callerId int64, response string) error
	Delete(ctx context.Context, id int64, callerId int64) error
	Detail(ctx context.Context, id int64, callerId int64) (domain.Rating, error)
	List(ctx context.Context, f domain.Filter) ([]domain.Rating, int64, error)

	Given(ctx context.Context, uid int64, kind domain.Kind) ([]domain.Rating, error)
	AboutMe(ctx context.Context, uid int64) ([]domain.Rating, error)
	Drafts(ctx context.Context, uid int64) ([]domain.Rating, error)
	PendingApprovals(ctx context.Context, approverId int64) ([]domain.Rating, error)
	AwaitingResponse(ctx context.Context, uid int64) ([]domain.Rating, error)

	CanRate(ctx context.Context, evaluatorId, evaluatedId int64, kind domain.Kind) (bool, error)
	// RatableUsers 当前用户按角色可以评价的所有对象
	RatableUsers(ctx context.Context, uid int64) ([]user.User, error)
	// UnratedUsers 可评价且在该周期内还没评价过的对象
	UnratedUsers(ctx context.Context, uid int64, periodStart, periodEnd time.Time) ([]user.User, error)
}

type service struct {
	repo     repository.RatingRepository
	userSvc  user.UserService
	producer event.RatingEventProducer
	// emailSvc 允许为 nil，纯粹是锦上添花的通知渠道
	emailSvc email.Service
	maxScore float64
	logger   *elog.Component
}

func NewService(repo repository.RatingRepository,
	userSvc user.UserService,
	producer event.RatingEventProducer,
	emailSvc email.Service,
	maxScore float64) Service {
	return &service{
		repo:     repo,
		userSvc:  userSvc,
		producer: producer,
		emailSvc: emailSvc,
		maxScore: maxScore,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Create(ctx context.Context, evaluatorId int64, r domain.Rating) (int64, error) {
	r.EvaluatorId = evaluatorId
	if err := s.validate(r); err != nil {
		return 0, err
	}
	ok, err := s.CanRate(ctx, r.EvaluatorId, r.EvaluatedUserId, r.Kind)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrUnauthorized
	}
	exists, err := s.repo.HasAlreadyRated(ctx,
		r.EvaluatorId, r.EvaluatedUserId, r.Kind, r.PeriodStart, r.PeriodEnd)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrDuplicateRating
	}
	r.Status = domain.RatingStatusDraft
	// 并发创建由存储层的唯一索引兜底
	return s.repo.Create(ctx, r)
}

func (s *service) Update(ctx context.Context, callerId int64, r domain.Rating) error {
	cur, err := s.repo.GetById(ctx, r.ID)
	if err != nil {
		return err
	}
	if cur.EvaluatorId != callerId {
		return ErrUnauthorized
	}
	if !cur.Editable() {
		return ErrInvalidState
	}
	r.EvaluatorId = cur.EvaluatorId
	r.EvaluatedUserId = cur.EvaluatedUserId
	r.Kind = cur.Kind
	if err = s.validate(r); err != nil {
		return err
	}
	return s.repo.UpdateEditable(ctx, r)
}

func (s *service) Submit(ctx context.Context, id int64, callerId int64) error {
	cur, err := s.repo.GetById(ctx, id)
	if err != nil {
		return err
	}
	if cur.EvaluatorId != callerId {
		return ErrUnauthorized
	}
	err = s.repo.MarkSubmitted(ctx, id)
	if errors.Is(err, repository.ErrStateMismatch) {
		return ErrInvalidState
	}
	if err != nil {
		return err
	}
	s.emit(ctx, cur, event.ActionReceived, "")
	return nil
}

func (s *service) Approve(ctx context.Context, id int64, approverId int64) error {
	approver, err := s.userSvc.Profile(ctx, approverId)
	if err != nil {
		return err
	}
	if !approver.CanApprove() {
		return ErrUnauthorized
	}
	cur, err := s.repo.GetById(ctx, id)
	if err != nil {
		return err
	}
	err = s.repo.MarkApproved(ctx, id, approverId)
	if errors.Is(err, repository.ErrStateMismatch) {
		return ErrInvalidState
	}
	if err != nil {
		return err
	}
	s.emit(ctx, cur, event.ActionApproved, "")
	s.notifyApprovedByMail(ctx, cur)
	return nil
}

func (s *service) Reject(ctx context.Context, id int64, approverId int64, reason string) error {
	approver, err := s.userSvc.Profile(ctx, approverId)
	if err != nil {
		return err
	}
	if !approver.CanApprove() {
		return ErrUnauthorized
	}
	cur, err := s.repo.GetById(ctx, id)
	if err != nil {
		return err
	}
	// 把驳回原因追加到评语里，保留审核痕迹
	comment := cur.Comment + fmt.Sprintf("\n[REJECTED by %s: %s]", approver.Name(), reason)
	err = s.repo.MarkRejected(ctx, id, approverId, comment)
	if errors.Is(err, repository.ErrStateMismatch) {
		return ErrInvalidState
	}
	if err != nil {
		return err
	}
	s.emit(ctx, cur, event.ActionRejected, reason)
	return nil
}

func (s *service) AddResponse(ctx context.Context, id int64, callerId int64, response string) error {
	cur, err := s.repo.GetById(ctx, id)
	if err != nil {
		return err
	}
	if cur.EvaluatedUserId != callerId {
		return ErrUnauthorized
	}
	err = s.repo.SetResponse(ctx, id, response)
	if errors.Is(err, repository.ErrStateMismatch) {
		return ErrInvalidState
	}
	return err
}

func (s *service) Delete(ctx context.Context, id int64, callerId int64) error {
	cur, err := s.repo.GetById(ctx, id)
	if err != nil {
		return err
	}
	if cur.EvaluatorId != callerId {
		return ErrUnauthorized
	}
	if !cur.Editable() {
		return ErrInvalidState
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) Detail(ctx context.Context, id int64, callerId int64) (domain.Rating, error) {
	cur, err := s.repo.GetById(ctx, id)
	if err != nil {
		return domain.Rating{}, err
	}
	if cur.EvaluatorId == callerId || cur.EvaluatedUserId == callerId {
		return cur, nil
	}
	caller, err := s.userSvc.Profile(ctx, callerId)
	if err != nil {
		return domain.Rating{}, err
	}
	if !caller.CanApprove() {
		return domain.Rating{}, ErrUnauthorized
	}
	return cur, nil
}

func (s *service) List(ctx context.Context, f domain.Filter) ([]domain.Rating, int64, error) {
	var (
		eg    errgroup.Group
		rs    []domain.Rating
		total int64
	)
	eg.Go(func() error {
		var err error
		rs, err = s.repo.List(ctx, f)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, f)
		return err
	})
	return rs, total, eg.Wait()
}

func (s *service) Given(ctx context.Context, uid int64, kind domain.Kind) ([]domain.Rating, error) {
	rs, err := s.repo.ByEvaluator(ctx, uid)
	if err != nil {
		return nil, err
	}
	if kind == domain.KindUnknown {
		return rs, nil
	}
	return slice.FilterMap(rs, func(idx int, src domain.Rating) (domain.Rating, bool) {
		return src, src.Kind == kind
	}), nil
}

func (s *service) AboutMe(ctx context.Context, uid int64) ([]domain.Rating, error) {
	rs, err := s.repo.ByEvaluated(ctx, uid)
	if err != nil {
		return nil, err
	}
	// 被评价人看不到草稿和被驳回的
	return slice.FilterMap(rs, func(idx int, src domain.Rating) (domain.Rating, bool) {
		return src, src.Status.CountsTowardStats()
	}), nil
}

func (s *service) Drafts(ctx context.Context, uid int64) ([]domain.Rating, error) {
	return s.repo.List(ctx, domain.Filter{
		EvaluatorId: uid,
		Status:      domain.RatingStatusDraft,
	})
}

func (s *service) PendingApprovals(ctx context.Context, approverId int64) ([]domain.Rating, error) {
	approver, err := s.userSvc.Profile(ctx, approverId)
	if err != nil {
		return nil, err
	}
	if !approver.CanApprove() {
		return nil, ErrUnauthorized
	}
	return s.repo.ByStatus(ctx, domain.RatingStatusSubmitted)
}

func (s *service) AwaitingResponse(ctx context.Context, uid int64) ([]domain.Rating, error) {
	return s.repo.AwaitingResponse(ctx, uid)
}

func (s *service) CanRate(ctx context.Context,
	evaluatorId, evaluatedId int64, kind domain.Kind) (bool, error) {
	if evaluatorId == evaluatedId {
		return false, nil
	}
	evaluator, err := s.userSvc.Profile(ctx, evaluatorId)
	if err != nil {
		return false, err
	}
	evaluated, err := s.userSvc.Profile(ctx, evaluatedId)
	if err != nil {
		return false, err
	}
	return canRate(evaluator, evaluated, kind), nil
}

func (s *service) RatableUsers(ctx context.Context, uid int64) ([]user.User, error) {
	u, err := s.userSvc.Profile(ctx, uid)
	if err != nil {
		return nil, err
	}
	switch u.Role {
	case user.RoleTutor:
		return s.userSvc.InternsByTutor(ctx, uid)
	case user.RoleIntern:
		if u.TutorId == 0 {
			return []user.User{}, nil
		}
		tutor, err := s.userSvc.Profile(ctx, u.TutorId)
		if err != nil {
			return nil, err
		}
		return []user.User{tutor}, nil
	case user.RoleHR:
		return s.userSvc.ListByRole(ctx, user.RoleIntern)
	default:
		return []user.User{}, nil
	}
}

func (s *service) UnratedUsers(ctx context.Context,
	uid int64, periodStart, periodEnd time.Time) ([]user.User, error) {
	u, err := s.userSvc.Profile(ctx, uid)
	if err != nil {
		return nil, err
	}
	kind := kindForRole(u.Role)
	if kind == domain.KindUnknown {
		return []user.User{}, nil
	}
	candidates, err := s.RatableUsers(ctx, uid)
	if err != nil {
		return nil, err
	}
	res := make([]user.User, 0, len(candidates))
	for _, c := range candidates {
		rated, err := s.repo.HasAlreadyRated(ctx, uid, c.Id, kind, periodStart, periodEnd)
		if err != nil {
			return nil, err
		}
		if !rated {
			res = append(res, c)
		}
	}
	return res, nil
}

func (s *service) validate(r domain.Rating) error {
	if r.EvaluatorId == r.EvaluatedUserId {
		return fmt.Errorf("%w: 不能评价自己", ErrInvalidRating)
	}
	switch r.Kind {
	case domain.KindTutorToIntern, domain.KindInternToTutor, domain.KindHRToIntern:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidRating, domain.ErrUnknownKind.Error())
	}
	if r.Score < 1 || r.Score > s.maxScore {
		return fmt.Errorf("%w: 分数必须在 1 到 %.0f 之间", ErrInvalidRating, s.maxScore)
	}
	if r.PeriodStart.IsZero() != r.PeriodEnd.IsZero() {
		return fmt.Errorf("%w: 评价周期必须成对出现", ErrInvalidRating)
	}
	if r.HasPeriod() && r.PeriodEnd.Before(r.PeriodStart) {
		return fmt.Errorf("%w: 周期结束不能早于开始", ErrInvalidRating)
	}
	return nil
}

// canRate 授权矩阵，纯函数方便测试
func canRate(evaluator, evaluated user.User, kind domain.Kind) bool {
	switch kind {
	case domain.KindTutorToIntern:
		return evaluator.IsTutor() && evaluated.IsIntern() && evaluated.TutorId == evaluator.Id
	case domain.KindInternToTutor:
		return evaluator.IsIntern() && evaluated.IsTutor() && evaluator.TutorId == evaluated.Id
	case domain.KindHRToIntern:
		return evaluator.Role == user.RoleHR && evaluated.IsIntern()
	default:
		return false
	}
}

func kindForRole(r user.Role) domain.Kind {
	switch r {
	case user.RoleTutor:
		return domain.KindTutorToIntern
	case user.RoleIntern:
		return domain.KindInternToTutor
	case user.RoleHR:
		return domain.KindHRToIntern
	default:
		return domain.KindUnknown
	}
}

// emit 发事件走的是尽力而为，失败只记日志
func (s *service) emit(ctx context.Context, r domain.Rating, action string, reason string) {
	evt := event.RatingEvent{
		RatingId:        r.ID,
		EvaluatorId:     r.EvaluatorId,
		EvaluatedUserId: r.EvaluatedUserId,
		Kind:            r.Kind.String(),
		Action:          action,
		Reason:          reason,
	}
	if evaluator, err := s.userSvc.Profile(ctx, r.EvaluatorId); err == nil {
		evt.EvaluatorName = evaluator.Name()
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送评价事件失败",
			elog.FieldErr(err),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
}

func (s *service) notifyApprovedByMail(ctx context.Context, r domain.Rating) {
	if s.emailSvc == nil {
		return
	}
	evaluated, err := s.userSvc.Profile(ctx, r.EvaluatedUserId)
	if err != nil || evaluated.Email == "" {
		return
	}
	err = s.emailSvc.SendMail(ctx, email.Mail{
		To:      evaluated.Email,
		Subject: "您收到了一份新的评价",
		Body:    []byte(fmt.Sprintf("您在 %s 维度收到一份评分为 %.1f 的评价，请登录查看。", r.Kind.String(), r.Score)),
	})
	if err != nil {
		s.logger.Error("发送评价邮件失败",
			elog.FieldErr(err),
			elog.Int64("rating", r.ID),
		)
	}
}
