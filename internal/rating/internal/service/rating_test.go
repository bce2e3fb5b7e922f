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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	emailmocks "github.com/neji123/gestion-stagiaires/internal/email/mocks"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/domain"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/repository"
	ratingmocks "github.com/neji123/gestion-stagiaires/internal/rating/mocks"
	"github.com/neji123/gestion-stagiaires/internal/user"
	usermocks "github.com/neji123/gestion-stagiaires/internal/user/mocks"
)

const testMaxScore = 5

var (
	testTutor = user.User{
		Id:        100,
		FirstName: "Sami",
		LastName:  "Ben Salah",
		Email:     "sami@stage.com",
		Role:      user.RoleTutor,
	}
	testIntern = user.User{
		Id:        200,
		FirstName: "Amine",
		LastName:  "Trabelsi",
		Email:     "amine@stage.com",
		Role:      user.RoleIntern,
		TutorId:   100,
	}
	testHR = user.User{
		Id:        300,
		FirstName: "Leila",
		LastName:  "Gharbi",
		Email:     "leila@stage.com",
		Role:      user.RoleHR,
	}
)

func TestService_Create(t *testing.T) {
	testCases := []struct {
		name        string
		mock        func(ctrl *gomock.Controller) (*ratingmocks.MockRatingRepository, *usermocks.MockUserService)
		evaluatorId int64
		rating      domain.Rating
		wantId      int64
		wantErr     error
	}{
		{
			name: "导师给自己的实习生创建评价",
			mock: func(ctrl *gomock.Controller) (*ratingmocks.MockRatingRepository, *usermocks.MockUserService) {
				repo := ratingmocks.NewMockRatingRepository(ctrl)
				userSvc := usermocks.NewMockUserService(ctrl)
				userSvc.EXPECT().Profile(gomock.Any(), int64(100)).Return(testTutor, nil)
				userSvc.EXPECT().Profile(gomock.Any(), int64(200)).Return(testIntern, nil)
				repo.EXPECT().HasAlreadyRated(gomock.Any(), int64(100), int64(200),
					domain.KindTutorToIntern, time.Time{}, time.Time{}).Return(false, nil)
				repo.EXPECT().Create(gomock.Any(), domain.Rating{
					EvaluatorId:     100,
					EvaluatedUserId: 200,
					Kind:            domain.KindTutorToIntern,
					Score:           4,
					Comment:         "很主动",
					Status:          domain.RatingStatusDraft,
				}).Return(int64(1), nil)
				return repo, userSvc
			},
			evaluatorId: 100,
			rating: domain.Rating{
				EvaluatedUserId: 200,
				Kind:            domain.KindTutorToIntern,
				Score:           4,
				Comment:         "很主动",
			},
			wantId: 1,
		},
		{
			name: "不能评价自己",
			mock: func(ctrl *gomock.Controller) (*ratingmocks.MockRatingRepository, *usermocks.MockUserService) {
				return ratingmocks.NewMockRatingRepository(ctrl), usermocks.NewMockUserService(ctrl)
			},
			evaluatorId: 100,
			rating: domain.Rating{
				EvaluatedUserId: 100,
				Kind:            domain.KindTutorToIntern,
				Score:           4,
			},
			wantErr: ErrInvalidRating,
		},
		{
			name: "分数越界",
			mock: func(ctrl *gomock.Controller) (*ratingmocks.MockRatingRepository, *usermocks.MockUserService) {
				return ratingmocks.NewMockRatingRepository(ctrl), usermocks.NewMockUserService(ctrl)
			},
			evaluatorId: 100,
			rating: domain.Rating{
				EvaluatedUserId: 200,
				Kind:            domain.KindTutorToIntern,
				Score:           6,
			},
			wantErr: ErrInvalidRating,
		},
		{
			name: "周期只填了一半",
			mock: func(ctrl *gomock.Controller) (*ratingmocks.MockRatingRepository, *usermocks.MockUserService) {
				return ratingmocks.NewMockRatingRepository(ctrl), usermocks.NewMockUserService(ctrl)
			},
			evaluatorId: 100,
			rating: domain.Rating{
				EvaluatedUserId: 200,
				Kind:            domain.KindTutorToIntern,
				Score:           4,
				PeriodStart:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			},
			wantErr: ErrInvalidRating,
		},
		{
			name: "评价别人家的实习生",
			mock: func(ctrl *gomock.Controller) (*ratingmocks.MockRatingRepository, *usermocks.MockUserService) {
				repo := ratingmocks.NewMockRatingRepository(ctrl)
				userSvc := usermocks.NewMockUserService(ctrl)
				other := testIntern
				other.Id = 201
				other.TutorId = 101
				userSvc.EXPECT().Profile(gomock.Any(), int64(100)).Return(testTutor, nil)
				userSvc.EXPECT().Profile(gomock.Any(), int64(201)).Return(other, nil)
				return repo, userSvc
			},
			evaluatorId: 100,
			rating: domain.Rating{
				EvaluatedUserId: 201,
				Kind:            domain.KindTutorToIntern,
				Score:           4,
			},
			wantErr: ErrUnauthorized,
		},
		{
			name: "同周期重复评价",
			mock: func(ctrl *gomock.Controller) (*ratingmocks.MockRatingRepository, *usermocks.MockUserService) {
				repo := ratingmocks.NewMockRatingRepository(ctrl)
				userSvc := usermocks.NewMockUserService(ctrl)
				userSvc.EXPECT().Profile(gomock.Any(), int64(100)).Return(testTutor, nil)
				userSvc.EXPECT().Profile(gomock.Any(), int64(200)).Return(testIntern, nil)
				repo.EXPECT().HasAlreadyRated(gomock.Any(), int64(100), int64(200),
					domain.KindTutorToIntern, gomock.Any(), gomock.Any()).Return(true, nil)
				return repo, userSvc
			},
			evaluatorId: 100,
			rating: domain.Rating{
				EvaluatedUserId: 200,
				Kind:            domain.KindTutorToIntern,
				Score:           4,
				PeriodStart:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
				PeriodEnd:       time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC),
			},
			wantErr: ErrDuplicateRating,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, userSvc := tc.mock(ctrl)
			svc := NewService(repo, userSvc, ratingmocks.NewMockRatingEventProducer(ctrl), nil, testMaxScore)
			id, err := svc.Create(context.Background(), tc.evaluatorId, tc.rating)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestService_Submit(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (*ratingmocks.MockRatingRepository, *usermocks.MockUserService, *ratingmocks.MockRatingEventProducer)
		id       int64
		callerId int64
		wantErr  error
	}{
		{
			name: "提交成功并发事件",
			mock: func(ctrl *gomock.Controller) (*ratingmocks.MockRatingRepository, *usermocks.MockUserService, *ratingmocks.MockRatingEventProducer) {
				repo := ratingmocks.NewMockRatingRepository(ctrl)
				userSvc := usermocks.NewMockUserService(ctrl)
				producer := ratingmocks.NewMockRatingEventProducer(ctrl)
				repo.EXPECT().GetById(gomock.Any(), int64(1)).Return(domain.Rating{
					ID:              1,
					EvaluatorId:     100,
					EvaluatedUserId: 200,
					Kind:            domain.KindTutorToIntern,
					Status:          domain.RatingStatusDraft,
				}, nil)
				repo.EXPECT().MarkSubmitted(gomock.Any(), int64(1)).Return(nil)
				userSvc.EXPECT().Profile(gomock.Any(), int64(100)).Return(testTutor, nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				return repo, userSvc, producer
			},
			id:       1,
			callerId: 100,
		},
		{
			name: "不是评价人",
			mock: func(ctrl *gomock.Controller) (*ratingmocks.MockRatingRepository, *usermocks.MockUserService, *ratingmocks.MockRatingEventProducer) {
				repo := ratingmocks.NewMockRatingRepository(ctrl)
				repo.EXPECT().GetById(gomock.Any(), int64(1)).Return(domain.Rating{
					ID:          1,
					EvaluatorId: 100,
					Status:      domain.RatingStatusDraft,
				}, nil)
				return repo, usermocks.NewMockUserService(ctrl), ratingmocks.NewMockRatingEventProducer(ctrl)
			},
			id:       1,
			callerId: 999,
			wantErr:  ErrUnauthorized,
		},
		{
			name: "已经不是草稿",
			mock: func(ctrl *gomock.Controller) (*ratingmocks.MockRatingRepository, *usermocks.MockUserService, *ratingmocks.MockRatingEventProducer) {
				repo := ratingmocks.NewMockRatingRepository(ctrl)
				repo.EXPECT().GetById(gomock.Any(), int64(1)).Return(domain.Rating{
					ID:          1,
					EvaluatorId: 100,
					Status:      domain.RatingStatusApproved,
				}, nil)
				repo.EXPECT().MarkSubmitted(gomock.Any(), int64(1)).Return(repository.ErrStateMismatch)
				return repo, usermocks.NewMockUserService(ctrl), ratingmocks.NewMockRatingEventProducer(ctrl)
			},
			id:       1,
			callerId: 100,
			wantErr:  ErrInvalidState,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, userSvc, producer := tc.mock(ctrl)
			svc := NewService(repo, userSvc, producer, nil, testMaxScore)
			err := svc.Submit(context.Background(), tc.id, tc.callerId)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_Approve(t *testing.T) {
	testCases := []struct {
		name       string
		mock       func(ctrl *gomock.Controller) (*ratingmocks.MockRatingRepository, *usermocks.MockUserService, *ratingmocks.MockRatingEventProducer, *emailmocks.MockService)
		approverId int64
		wantErr    error
	}{
		{
			name: "HR 审核通过并邮件通知被评价人",
			mock: func(ctrl *gomock.Controller) (*ratingmocks.MockRatingRepository, *usermocks.MockUserService, *ratingmocks.MockRatingEventProducer, *emailmocks.MockService) {
				repo := ratingmocks.NewMockRatingRepository(ctrl)
				userSvc := usermocks.NewMockUserService(ctrl)
				producer := ratingmocks.NewMockRatingEventProducer(ctrl)
				emailSvc := emailmocks.NewMockService(ctrl)
				userSvc.EXPECT().Profile(gomock.Any(), int64(300)).Return(testHR, nil)
				repo.EXPECT().GetById(gomock.Any(), int64(1)).Return(domain.Rating{
					ID:              1,
					EvaluatorId:     100,
					EvaluatedUserId: 200,
					Kind:            domain.KindTutorToIntern,
					Score:           4,
					Status:          domain.RatingStatusSubmitted,
				}, nil)
				repo.EXPECT().MarkApproved(gomock.Any(), int64(1), int64(300)).Return(nil)
				userSvc.EXPECT().Profile(gomock.Any(), int64(100)).Return(testTutor, nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				userSvc.EXPECT().Profile(gomock.Any(), int64(200)).Return(testIntern, nil)
				emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil)
				return repo, userSvc, producer, emailSvc
			},
			approverId: 300,
		},
		{
			name: "导师无权审核",
			mock: func(ctrl *gomock.Controller) (*ratingmocks.MockRatingRepository, *usermocks.MockUserService, *ratingmocks.MockRatingEventProducer, *emailmocks.MockService) {
				userSvc := usermocks.NewMockUserService(ctrl)
				userSvc.EXPECT().Profile(gomock.Any(), int64(100)).Return(testTutor, nil)
				return ratingmocks.NewMockRatingRepository(ctrl), userSvc,
					ratingmocks.NewMockRatingEventProducer(ctrl), emailmocks.NewMockService(ctrl)
			},
			approverId: 100,
			wantErr:    ErrUnauthorized,
		},
		{
			name: "草稿不能直接审核",
			mock: func(ctrl *gomock.Controller) (*ratingmocks.MockRatingRepository, *usermocks.MockUserService, *ratingmocks.MockRatingEventProducer, *emailmocks.MockService) {
				repo := ratingmocks.NewMockRatingRepository(ctrl)
				userSvc := usermocks.NewMockUserService(ctrl)
				userSvc.EXPECT().Profile(gomock.Any(), int64(300)).Return(testHR, nil)
				repo.EXPECT().GetById(gomock.Any(), int64(1)).Return(domain.Rating{
					ID:          1,
					EvaluatorId: 100,
					Status:      domain.RatingStatusDraft,
				}, nil)
				repo.EXPECT().MarkApproved(gomock.Any(), int64(1), int64(300)).Return(repository.ErrStateMismatch)
				return repo, userSvc, ratingmocks.NewMockRatingEventProducer(ctrl), emailmocks.NewMockService(ctrl)
			},
			approverId: 300,
			wantErr:    ErrInvalidState,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, userSvc, producer, emailSvc := tc.mock(ctrl)
			svc := NewService(repo, userSvc, producer, emailSvc, testMaxScore)
			err := svc.Approve(context.Background(), 1, tc.approverId)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := ratingmocks.NewMockRatingRepository(ctrl)
	userSvc := usermocks.NewMockUserService(ctrl)
	producer := ratingmocks.NewMockRatingEventProducer(ctrl)
	userSvc.EXPECT().Profile(gomock.Any(), int64(300)).Return(testHR, nil)
	repo.EXPECT().GetById(gomock.Any(), int64(1)).Return(domain.Rating{
		ID:              1,
		EvaluatorId:     100,
		EvaluatedUserId: 200,
		Kind:            domain.KindTutorToIntern,
		Comment:         "原评语",
		Status:          domain.RatingStatusSubmitted,
	}, nil)
	// 驳回原因带着审核人名字追加进评语
	repo.EXPECT().MarkRejected(gomock.Any(), int64(1), int64(300),
		"原评语\n[REJECTED by Leila Gharbi: 证据不足]").Return(nil)
	userSvc.EXPECT().Profile(gomock.Any(), int64(100)).Return(testTutor, nil)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewService(repo, userSvc, producer, nil, testMaxScore)
	err := svc.Reject(context.Background(), 1, 300, "证据不足")
	assert.NoError(t, err)
}

func TestService_AddResponse(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) *ratingmocks.MockRatingRepository
		callerId int64
		wantErr  error
	}{
		{
			name: "被评价人回应成功",
			mock: func(ctrl *gomock.Controller) *ratingmocks.MockRatingRepository {
				repo := ratingmocks.NewMockRatingRepository(ctrl)
				repo.EXPECT().GetById(gomock.Any(), int64(1)).Return(domain.Rating{
					ID:              1,
					EvaluatedUserId: 200,
					Status:          domain.RatingStatusApproved,
				}, nil)
				repo.EXPECT().SetResponse(gomock.Any(), int64(1), "谢谢指导").Return(nil)
				return repo
			},
			callerId: 200,
		},
		{
			name: "别人不能替我回应",
			mock: func(ctrl *gomock.Controller) *ratingmocks.MockRatingRepository {
				repo := ratingmocks.NewMockRatingRepository(ctrl)
				repo.EXPECT().GetById(gomock.Any(), int64(1)).Return(domain.Rating{
					ID:              1,
					EvaluatedUserId: 200,
					Status:          domain.RatingStatusApproved,
				}, nil)
				return repo
			},
			callerId: 999,
			wantErr:  ErrUnauthorized,
		},
		{
			name: "没通过审核的评价不能回应",
			mock: func(ctrl *gomock.Controller) *ratingmocks.MockRatingRepository {
				repo := ratingmocks.NewMockRatingRepository(ctrl)
				repo.EXPECT().GetById(gomock.Any(), int64(1)).Return(domain.Rating{
					ID:              1,
					EvaluatedUserId: 200,
					Status:          domain.RatingStatusSubmitted,
				}, nil)
				repo.EXPECT().SetResponse(gomock.Any(), int64(1), "谢谢指导").Return(repository.ErrStateMismatch)
				return repo
			},
			callerId: 200,
			wantErr:  ErrInvalidState,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl), usermocks.NewMockUserService(ctrl),
				ratingmocks.NewMockRatingEventProducer(ctrl), nil, testMaxScore)
			err := svc.AddResponse(context.Background(), 1, tc.callerId, "谢谢指导")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := ratingmocks.NewMockRatingRepository(ctrl)
	repo.EXPECT().GetById(gomock.Any(), int64(1)).Return(domain.Rating{
		ID:          1,
		EvaluatorId: 100,
		Status:      domain.RatingStatusApproved,
	}, nil)
	svc := NewService(repo, usermocks.NewMockUserService(ctrl),
		ratingmocks.NewMockRatingEventProducer(ctrl), nil, testMaxScore)
	// 已通过的评价连评价人自己也删不掉
	err := svc.Delete(context.Background(), 1, 100)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestService_AboutMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := ratingmocks.NewMockRatingRepository(ctrl)
	repo.EXPECT().ByEvaluated(gomock.Any(), int64(200)).Return([]domain.Rating{
		{ID: 1, Status: domain.RatingStatusDraft},
		{ID: 2, Status: domain.RatingStatusSubmitted},
		{ID: 3, Status: domain.RatingStatusApproved},
		{ID: 4, Status: domain.RatingStatusRejected},
	}, nil)
	svc := NewService(repo, usermocks.NewMockUserService(ctrl),
		ratingmocks.NewMockRatingEventProducer(ctrl), nil, testMaxScore)
	rs, err := svc.AboutMe(context.Background(), 200)
	assert.NoError(t, err)
	// 草稿和被驳回的对被评价人不可见
	assert.Equal(t, []int64{2, 3}, []int64{rs[0].ID, rs[1].ID})
	assert.Len(t, rs, 2)
}

func Test_canRate(t *testing.T) {
	otherTutor := testTutor
	otherTutor.Id = 101
	testCases := []struct {
		name      string
		evaluator user.User
		evaluated user.User
		kind      domain.Kind
		want      bool
	}{
		{name: "导师评自己的实习生", evaluator: testTutor, evaluated: testIntern, kind: domain.KindTutorToIntern, want: true},
		{name: "导师评别人的实习生", evaluator: otherTutor, evaluated: testIntern, kind: domain.KindTutorToIntern, want: false},
		{name: "实习生评自己的导师", evaluator: testIntern, evaluated: testTutor, kind: domain.KindInternToTutor, want: true},
		{name: "实习生评别的导师", evaluator: testIntern, evaluated: otherTutor, kind: domain.KindInternToTutor, want: false},
		{name: "HR评任意实习生", evaluator: testHR, evaluated: testIntern, kind: domain.KindHRToIntern, want: true},
		{name: "HR不能按导师口径评实习生", evaluator: testHR, evaluated: testIntern, kind: domain.KindTutorToIntern, want: false},
		{name: "实习生不能评实习生", evaluator: testIntern, evaluated: testIntern, kind: domain.KindHRToIntern, want: false},
		{name: "未知类型一律拒绝", evaluator: testTutor, evaluated: testIntern, kind: domain.KindUnknown, want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, canRate(tc.evaluator, tc.evaluated, tc.kind))
		})
	}
}

func TestService_RatableUsers(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) *usermocks.MockUserService
		uid     int64
		wantRes []user.User
	}{
		{
			name: "导师看到自己名下的实习生",
			mock: func(ctrl *gomock.Controller) *usermocks.MockUserService {
				userSvc := usermocks.NewMockUserService(ctrl)
				userSvc.EXPECT().Profile(gomock.Any(), int64(100)).Return(testTutor, nil)
				userSvc.EXPECT().InternsByTutor(gomock.Any(), int64(100)).Return([]user.User{testIntern}, nil)
				return userSvc
			},
			uid:     100,
			wantRes: []user.User{testIntern},
		},
		{
			name: "实习生只能看到自己的导师",
			mock: func(ctrl *gomock.Controller) *usermocks.MockUserService {
				userSvc := usermocks.NewMockUserService(ctrl)
				userSvc.EXPECT().Profile(gomock.Any(), int64(200)).Return(testIntern, nil)
				userSvc.EXPECT().Profile(gomock.Any(), int64(100)).Return(testTutor, nil)
				return userSvc
			},
			uid:     200,
			wantRes: []user.User{testTutor},
		},
		{
			name: "没分配导师的实习生谁也评不了",
			mock: func(ctrl *gomock.Controller) *usermocks.MockUserService {
				userSvc := usermocks.NewMockUserService(ctrl)
				orphan := testIntern
				orphan.Id = 201
				orphan.TutorId = 0
				userSvc.EXPECT().Profile(gomock.Any(), int64(201)).Return(orphan, nil)
				return userSvc
			},
			uid:     201,
			wantRes: []user.User{},
		},
		{
			name: "HR 看到全部实习生",
			mock: func(ctrl *gomock.Controller) *usermocks.MockUserService {
				userSvc := usermocks.NewMockUserService(ctrl)
				userSvc.EXPECT().Profile(gomock.Any(), int64(300)).Return(testHR, nil)
				userSvc.EXPECT().ListByRole(gomock.Any(), user.RoleIntern).Return([]user.User{testIntern}, nil)
				return userSvc
			},
			uid:     300,
			wantRes: []user.User{testIntern},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(ratingmocks.NewMockRatingRepository(ctrl), tc.mock(ctrl),
				ratingmocks.NewMockRatingEventProducer(ctrl), nil, testMaxScore)
			res, err := svc.RatableUsers(context.Background(), tc.uid)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestService_UnratedUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := ratingmocks.NewMockRatingRepository(ctrl)
	userSvc := usermocks.NewMockUserService(ctrl)
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC)
	rated := testIntern
	unrated := testIntern
	unrated.Id = 201
	userSvc.EXPECT().Profile(gomock.Any(), int64(100)).Return(testTutor, nil).Times(2)
	userSvc.EXPECT().InternsByTutor(gomock.Any(), int64(100)).Return([]user.User{rated, unrated}, nil)
	repo.EXPECT().HasAlreadyRated(gomock.Any(), int64(100), int64(200),
		domain.KindTutorToIntern, start, end).Return(true, nil)
	repo.EXPECT().HasAlreadyRated(gomock.Any(), int64(100), int64(201),
		domain.KindTutorToIntern, start, end).Return(false, nil)

	svc := NewService(repo, userSvc, ratingmocks.NewMockRatingEventProducer(ctrl), nil, testMaxScore)
	res, err := svc.UnratedUsers(context.Background(), 100, start, end)
	assert.NoError(t, err)
	assert.Equal(t, []user.User{unrated}, res)
}
