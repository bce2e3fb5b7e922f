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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/neji123/gestion-stagiaires/internal/rating/internal/domain"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/repository/cache"
	ratingmocks "github.com/neji123/gestion-stagiaires/internal/rating/mocks"
	"github.com/neji123/gestion-stagiaires/internal/user"
	usermocks "github.com/neji123/gestion-stagiaires/internal/user/mocks"
)

func Test_mean(t *testing.T) {
	assert.Equal(t, float64(0), mean(nil))
	assert.Equal(t, 4.0, mean([]domain.Rating{
		{Score: 3},
		{Score: 5},
	}))
}

func Test_distribution(t *testing.T) {
	res := distribution([]domain.Rating{
		{Score: 3.2},
		{Score: 4},
		{Score: 4.8},
		{Score: 0.4},
		{Score: 7},
	}, 5)
	// 分数向上取整落桶，越界的夹到 1 和分数上限
	assert.Equal(t, map[int]int{
		1: 1,
		4: 2,
		5: 2,
	}, res)

	// 上限放宽到十分制时高分不能挤在 5 这个桶里
	res = distribution([]domain.Rating{
		{Score: 7},
		{Score: 9.5},
		{Score: 12},
	}, 10)
	assert.Equal(t, map[int]int{
		7:  1,
		10: 2,
	}, res)
}

func Test_counted(t *testing.T) {
	rs := counted([]domain.Rating{
		{ID: 1, Status: domain.RatingStatusDraft},
		{ID: 2, Status: domain.RatingStatusSubmitted},
		{ID: 3, Status: domain.RatingStatusApproved},
		{ID: 4, Status: domain.RatingStatusRejected},
	})
	require.Len(t, rs, 2)
	assert.Equal(t, int64(2), rs[0].ID)
	assert.Equal(t, int64(3), rs[1].ID)
}

func TestStatsService_Leaderboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := ratingmocks.NewMockRatingRepository(ctrl)
	userSvc := usermocks.NewMockUserService(ctrl)
	statsCache := ratingmocks.NewMockStatsCache(ctrl)

	statsCache.EXPECT().GetLeaderboard(gomock.Any(), user.RoleIntern, 2).
		Return(nil, cache.ErrLeaderboardNotFound)
	userSvc.EXPECT().ListByRole(gomock.Any(), user.RoleIntern).Return([]user.User{
		{Id: 201, FirstName: "Amine", LastName: "Trabelsi", Role: user.RoleIntern},
		{Id: 202, FirstName: "Yosra", LastName: "Mansouri", Role: user.RoleIntern},
		{Id: 203, FirstName: "Karim", LastName: "Jlassi", Role: user.RoleIntern},
	}, nil)
	repo.EXPECT().Counted(gomock.Any()).Return([]domain.Rating{
		// 201 先入榜，202 同分时要排在 201 后面
		{EvaluatedUserId: 201, Kind: domain.KindTutorToIntern, Score: 4},
		{EvaluatedUserId: 202, Kind: domain.KindTutorToIntern, Score: 5},
		{EvaluatedUserId: 203, Kind: domain.KindTutorToIntern, Score: 5},
		{EvaluatedUserId: 201, Kind: domain.KindTutorToIntern, Score: 4},
		{EvaluatedUserId: 202, Kind: domain.KindHRToIntern, Score: 3},
		// 被评价人不是实习生的不计入
		{EvaluatedUserId: 100, Kind: domain.KindInternToTutor, Score: 5},
	}, nil)
	userSvc.EXPECT().FindByIds(gomock.Any(), []int64{203, 201}).Return([]user.User{
		{Id: 201, FirstName: "Amine", LastName: "Trabelsi"},
		{Id: 203, FirstName: "Karim", LastName: "Jlassi"},
	}, nil)
	statsCache.EXPECT().SetLeaderboard(gomock.Any(), user.RoleIntern, 2, gomock.Any()).Return(nil)

	svc := NewStatsService(repo, userSvc, statsCache, 5)
	entries, err := svc.Leaderboard(context.Background(), user.RoleIntern, 2)
	require.NoError(t, err)
	// 202 的均分要把导师和 HR 两类评价一起算进去
	assert.Equal(t, []domain.LeaderboardEntry{
		{UserId: 203, Name: "Karim Jlassi", AverageScore: 5, RatingCount: 1},
		{UserId: 201, Name: "Amine Trabelsi", AverageScore: 4, RatingCount: 2},
	}, entries)
}

func TestStatsService_Leaderboard_crossKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := ratingmocks.NewMockRatingRepository(ctrl)
	userSvc := usermocks.NewMockUserService(ctrl)
	statsCache := ratingmocks.NewMockStatsCache(ctrl)

	statsCache.EXPECT().GetLeaderboard(gomock.Any(), user.RoleIntern, 5).
		Return(nil, cache.ErrLeaderboardNotFound)
	userSvc.EXPECT().ListByRole(gomock.Any(), user.RoleIntern).Return([]user.User{
		{Id: 200, FirstName: "Amine", LastName: "Trabelsi", Role: user.RoleIntern},
	}, nil)
	// 同一个实习生同时收到导师和 HR 的评价
	repo.EXPECT().Counted(gomock.Any()).Return([]domain.Rating{
		{EvaluatedUserId: 200, Kind: domain.KindTutorToIntern, Score: 5},
		{EvaluatedUserId: 200, Kind: domain.KindHRToIntern, Score: 1},
	}, nil)
	userSvc.EXPECT().FindByIds(gomock.Any(), []int64{200}).Return([]user.User{
		{Id: 200, FirstName: "Amine", LastName: "Trabelsi"},
	}, nil)
	statsCache.EXPECT().SetLeaderboard(gomock.Any(), user.RoleIntern, 5, gomock.Any()).Return(nil)

	svc := NewStatsService(repo, userSvc, statsCache, 5)
	entries, err := svc.Leaderboard(context.Background(), user.RoleIntern, 5)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 3.0, entries[0].AverageScore)
	assert.Equal(t, 2, entries[0].RatingCount)
}

func TestStatsService_Leaderboard_cacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	statsCache := ratingmocks.NewMockStatsCache(ctrl)
	cached := []domain.LeaderboardEntry{
		{UserId: 201, Name: "Amine Trabelsi", AverageScore: 4.5, RatingCount: 2},
	}
	statsCache.EXPECT().GetLeaderboard(gomock.Any(), user.RoleTutor, 5).Return(cached, nil)

	svc := NewStatsService(ratingmocks.NewMockRatingRepository(ctrl),
		usermocks.NewMockUserService(ctrl), statsCache, 5)
	entries, err := svc.Leaderboard(context.Background(), user.RoleTutor, 5)
	require.NoError(t, err)
	assert.Equal(t, cached, entries)
}

func TestStatsService_UserStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := ratingmocks.NewMockRatingRepository(ctrl)
	userSvc := usermocks.NewMockUserService(ctrl)
	statsCache := ratingmocks.NewMockStatsCache(ctrl)

	userSvc.EXPECT().Profile(gomock.Any(), int64(100)).Return(testTutor, nil)
	repo.EXPECT().ByEvaluated(gomock.Any(), int64(100)).Return([]domain.Rating{
		{Kind: domain.KindInternToTutor, Score: 4, Status: domain.RatingStatusApproved},
		{Kind: domain.KindInternToTutor, Score: 5, Status: domain.RatingStatusSubmitted},
		// 草稿和被驳回的不进统计口径
		{Kind: domain.KindInternToTutor, Score: 1, Status: domain.RatingStatusRejected},
	}, nil)
	repo.EXPECT().ByEvaluator(gomock.Any(), int64(100)).Return([]domain.Rating{
		{EvaluatedUserId: 200, Kind: domain.KindTutorToIntern, Score: 4, Status: domain.RatingStatusApproved},
		{EvaluatedUserId: 200, Kind: domain.KindTutorToIntern, Score: 2, Status: domain.RatingStatusDraft},
	}, nil)
	// bestIntern 走 rank，给入榜的实习生补名字
	userSvc.EXPECT().FindByIds(gomock.Any(), []int64{200}).Return([]user.User{testIntern}, nil)

	svc := NewStatsService(repo, userSvc, statsCache, 5)
	stats, err := svc.UserStats(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 4.5, stats.AverageReceived)
	assert.Equal(t, 4.0, stats.AverageGiven)
	assert.Equal(t, 3, stats.TotalRatings)
	assert.Equal(t, 1, stats.DraftRatings)
	assert.Equal(t, map[int]int{4: 1, 5: 1}, stats.ScoreDistribution)
	assert.Equal(t, 2, stats.ByKind["InternToTutor"].Count)
	assert.Equal(t, 4.5, stats.ByKind["InternToTutor"].AverageScore)
	require.NotNil(t, stats.BestIntern)
	assert.Equal(t, domain.LeaderboardEntry{
		UserId:       200,
		Name:         "Amine Trabelsi",
		AverageScore: 4,
		RatingCount:  1,
	}, *stats.BestIntern)
}

func TestStatsService_UserStats_hrTopLists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := ratingmocks.NewMockRatingRepository(ctrl)
	userSvc := usermocks.NewMockUserService(ctrl)
	statsCache := ratingmocks.NewMockStatsCache(ctrl)

	userSvc.EXPECT().Profile(gomock.Any(), int64(300)).Return(testHR, nil)
	repo.EXPECT().ByEvaluated(gomock.Any(), int64(300)).Return(nil, nil)
	repo.EXPECT().ByEvaluator(gomock.Any(), int64(300)).Return(nil, nil)
	topTutors := []domain.LeaderboardEntry{
		{UserId: 100, Name: "Sami Ben Salah", AverageScore: 4.8, RatingCount: 3},
	}
	topInterns := []domain.LeaderboardEntry{
		{UserId: 200, Name: "Amine Trabelsi", AverageScore: 4.2, RatingCount: 5},
	}
	// HR 的榜单按角色取，而不是按评价类型
	statsCache.EXPECT().GetLeaderboard(gomock.Any(), user.RoleTutor, 5).Return(topTutors, nil)
	statsCache.EXPECT().GetLeaderboard(gomock.Any(), user.RoleIntern, 5).Return(topInterns, nil)

	svc := NewStatsService(repo, userSvc, statsCache, 5)
	stats, err := svc.UserStats(context.Background(), 300)
	require.NoError(t, err)
	assert.Equal(t, topTutors, stats.TopTutors)
	assert.Equal(t, topInterns, stats.TopInterns)
}

func TestStatsService_AverageFor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := ratingmocks.NewMockRatingRepository(ctrl)
	repo.EXPECT().ByEvaluated(gomock.Any(), int64(200)).Return([]domain.Rating{
		{Kind: domain.KindTutorToIntern, Score: 4, Status: domain.RatingStatusApproved},
		{Kind: domain.KindHRToIntern, Score: 2, Status: domain.RatingStatusApproved},
		{Kind: domain.KindTutorToIntern, Score: 5, Status: domain.RatingStatusSubmitted},
	}, nil).Times(2)

	svc := NewStatsService(repo, usermocks.NewMockUserService(ctrl), ratingmocks.NewMockStatsCache(ctrl), 5)
	avg, err := svc.AverageFor(context.Background(), 200, domain.KindTutorToIntern)
	require.NoError(t, err)
	assert.Equal(t, 4.5, avg)

	all, err := svc.AverageFor(context.Background(), 200, domain.KindUnknown)
	require.NoError(t, err)
	assert.InDelta(t, 11.0/3, all, 0.0001)
}
