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
	"math"
	"sort"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"

	"github.com/neji123/gestion-stagiaires/internal/rating/internal/domain"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/repository"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/repository/cache"
	"github.com/neji123/gestion-stagiaires/internal/user"
)

//go:generate mockgen -source=./stats.go -destination=../../mocks/stats_svc.mock.go -package=ratingmocks StatsService
type StatsService interface {
	UserStats(ctx context.Context, uid int64) (domain.UserStats, error)
	// Leaderboard 按被评价人的角色排名，聚合这个角色收到的全部评价，
	// 不区分评价类型
	Leaderboard(ctx context.Context, role user.Role, topN int) ([]domain.LeaderboardEntry, error)
	AverageFor(ctx context.Context, uid int64, kind domain.Kind) (float64, error)
}

type statsService struct {
	repo     repository.RatingRepository
	userSvc  user.UserService
	cache    cache.StatsCache
	maxScore float64
	logger   *elog.Component
}

func NewStatsService(repo repository.RatingRepository,
	userSvc user.UserService,
	c cache.StatsCache,
	maxScore float64) StatsService {
	return &statsService{
		repo:     repo,
		userSvc:  userSvc,
		cache:    c,
		maxScore: maxScore,
		logger:   elog.DefaultLogger,
	}
}

func (s *statsService) UserStats(ctx context.Context, uid int64) (domain.UserStats, error) {
	u, err := s.userSvc.Profile(ctx, uid)
	if err != nil {
		return domain.UserStats{}, err
	}
	var (
		eg       errgroup.Group
		received []domain.Rating
		given    []domain.Rating
	)
	eg.Go(func() error {
		var err error
		received, err = s.repo.ByEvaluated(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		given, err = s.repo.ByEvaluator(ctx, uid)
		return err
	})
	if err = eg.Wait(); err != nil {
		return domain.UserStats{}, err
	}

	countedReceived := counted(received)
	countedGiven := counted(given)
	drafts := slice.FilterMap(given, func(idx int, src domain.Rating) (domain.Rating, bool) {
		return src, src.Status == domain.RatingStatusDraft
	})

	res := domain.UserStats{
		AverageReceived:   mean(countedReceived),
		AverageGiven:      mean(countedGiven),
		TotalRatings:      len(countedReceived) + len(countedGiven),
		DraftRatings:      len(drafts),
		ScoreDistribution: distribution(countedReceived, s.maxScore),
		ByKind:            byKind(countedReceived),
	}

	switch u.Role {
	case user.RoleTutor:
		best, err := s.bestIntern(ctx, countedGiven)
		if err != nil {
			return domain.UserStats{}, err
		}
		res.BestIntern = best
	case user.RoleHR, user.RoleAdmin:
		res.TopTutors, err = s.Leaderboard(ctx, user.RoleTutor, 5)
		if err != nil {
			return domain.UserStats{}, err
		}
		res.TopInterns, err = s.Leaderboard(ctx, user.RoleIntern, 5)
		if err != nil {
			return domain.UserStats{}, err
		}
	}
	return res, nil
}

func (s *statsService) Leaderboard(ctx context.Context,
	role user.Role, topN int) ([]domain.LeaderboardEntry, error) {
	entries, err := s.cache.GetLeaderboard(ctx, role, topN)
	if err == nil {
		return entries, nil
	}
	// 实习生会同时收到导师和 HR 两类评价，所以不能按评价类型过滤，
	// 只看被评价人是不是这个角色
	us, err := s.userSvc.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	uids := make(map[int64]struct{}, len(us))
	for _, u := range us {
		uids[u.Id] = struct{}{}
	}
	all, err := s.repo.Counted(ctx)
	if err != nil {
		return nil, err
	}
	rs := slice.FilterMap(all, func(idx int, src domain.Rating) (domain.Rating, bool) {
		_, ok := uids[src.EvaluatedUserId]
		return src, ok
	})
	entries, err = s.rank(ctx, rs, topN)
	if err != nil {
		return nil, err
	}
	if err = s.cache.SetLeaderboard(ctx, role, topN, entries); err != nil {
		s.logger.Error("回填排行榜缓存失败", elog.FieldErr(err))
	}
	return entries, nil
}

func (s *statsService) AverageFor(ctx context.Context, uid int64, kind domain.Kind) (float64, error) {
	received, err := s.repo.ByEvaluated(ctx, uid)
	if err != nil {
		return 0, err
	}
	rs := counted(received)
	if kind != domain.KindUnknown {
		rs = slice.FilterMap(rs, func(idx int, src domain.Rating) (domain.Rating, bool) {
			return src, src.Kind == kind
		})
	}
	return mean(rs), nil
}

// bestIntern 导师给出的评价里平均分最高的实习生
func (s *statsService) bestIntern(ctx context.Context,
	countedGiven []domain.Rating) (*domain.LeaderboardEntry, error) {
	rs := slice.FilterMap(countedGiven, func(idx int, src domain.Rating) (domain.Rating, bool) {
		return src, src.Kind == domain.KindTutorToIntern
	})
	entries, err := s.rank(ctx, rs, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// rank 按被评价人聚合，平均分降序。平均分相同的保持首次出现的先后
func (s *statsService) rank(ctx context.Context,
	rs []domain.Rating, topN int) ([]domain.LeaderboardEntry, error) {
	var order []int64
	sums := make(map[int64]float64)
	counts := make(map[int64]int)
	for _, r := range rs {
		if _, ok := counts[r.EvaluatedUserId]; !ok {
			order = append(order, r.EvaluatedUserId)
		}
		sums[r.EvaluatedUserId] += r.Score
		counts[r.EvaluatedUserId]++
	}
	entries := make([]domain.LeaderboardEntry, 0, len(order))
	for _, uid := range order {
		entries = append(entries, domain.LeaderboardEntry{
			UserId:       uid,
			AverageScore: sums[uid] / float64(counts[uid]),
			RatingCount:  counts[uid],
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AverageScore > entries[j].AverageScore
	})
	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	us, err := s.userSvc.FindByIds(ctx, slice.Map(entries, func(idx int, src domain.LeaderboardEntry) int64 {
		return src.UserId
	}))
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(us))
	for _, u := range us {
		names[u.Id] = u.Name()
	}
	for i := range entries {
		entries[i].Name = names[entries[i].UserId]
	}
	return entries, nil
}

func counted(rs []domain.Rating) []domain.Rating {
	return slice.FilterMap(rs, func(idx int, src domain.Rating) (domain.Rating, bool) {
		return src, src.Status.CountsTowardStats()
	})
}

func mean(rs []domain.Rating) float64 {
	if len(rs) == 0 {
		return 0
	}
	var sum float64
	for _, r := range rs {
		sum += r.Score
	}
	return sum / float64(len(rs))
}

// distribution 按分数向上取整落桶，1 到分数上限
func distribution(rs []domain.Rating, maxScore float64) map[int]int {
	top := int(math.Ceil(maxScore))
	if top < 1 {
		top = 1
	}
	res := make(map[int]int)
	for _, r := range rs {
		bucket := int(math.Ceil(r.Score))
		if bucket < 1 {
			bucket = 1
		}
		if bucket > top {
			bucket = top
		}
		res[bucket]++
	}
	return res
}

func byKind(rs []domain.Rating) map[string]domain.KindStats {
	res := make(map[string]domain.KindStats)
	for _, r := range rs {
		key := r.Kind.String()
		ks := res[key]
		ks.Count++
		// 先累加，最后再除
		ks.AverageScore += r.Score
		last := r.SubmittedAt
		if last.IsZero() {
			last = r.Ctime
		}
		if last.After(ks.LastRatedAt) {
			ks.LastRatedAt = last
		}
		res[key] = ks
	}
	for key, ks := range res {
		ks.AverageScore /= float64(ks.Count)
		res[key] = ks
	}
	return res
}
