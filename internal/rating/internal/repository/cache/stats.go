package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"

	"github.com/neji123/gestion-stagiaires/internal/rating/internal/domain"
	"github.com/neji123/gestion-stagiaires/internal/user"
)

const (
	leaderboardExpiration = 10 * time.Minute
)

var (
	ErrLeaderboardNotFound = errors.New("排行榜缓存未命中")
)

//go:generate mockgen -source=./stats.go -destination=../../../mocks/stats_cache.mock.go -package=ratingmocks StatsCache
type StatsCache interface {
	SetLeaderboard(ctx context.Context, role user.Role, limit int, entries []domain.LeaderboardEntry) error
	GetLeaderboard(ctx context.Context, role user.Role, limit int) ([]domain.LeaderboardEntry, error)
}

type statsCache struct {
	ec ecache.Cache
}

func NewStatsCache(ec ecache.Cache) StatsCache {
	return &statsCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "rating:",
		},
	}
}

func (c *statsCache) SetLeaderboard(ctx context.Context,
	role user.Role, limit int, entries []domain.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, "序列化排行榜失败")
	}
	return c.ec.Set(ctx, c.leaderboardKey(role, limit), string(data), leaderboardExpiration)
}

func (c *statsCache) GetLeaderboard(ctx context.Context,
	role user.Role, limit int) ([]domain.LeaderboardEntry, error) {
	val := c.ec.Get(ctx, c.leaderboardKey(role, limit))
	if val.KeyNotFound() {
		return nil, ErrLeaderboardNotFound
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "查询排行榜缓存出错")
	}
	var entries []domain.LeaderboardEntry
	err := json.Unmarshal([]byte(val.Val.(string)), &entries)
	if err != nil {
		return nil, errors.Wrap(err, "反序列化排行榜失败")
	}
	return entries, nil
}

func (c *statsCache) leaderboardKey(role user.Role, limit int) string {
	return fmt.Sprintf("leaderboard:%s:%d", role.String(), limit)
}
