package domain

import "time"

// UserStats 个人评价统计，给仪表盘用
type UserStats struct {
	// 收到和给出的均分都只统计 Submitted/Approved
	AverageReceived float64
	AverageGiven    float64
	TotalRatings    int
	DraftRatings    int
	// ScoreDistribution 收到的分数按向上取整分桶
	ScoreDistribution map[int]int
	ByKind            map[string]KindStats
	// BestIntern 导师视角：自己评过的分数最高的实习生
	BestIntern *LeaderboardEntry
	// TopTutors / TopInterns HR 视角：全平台前五
	TopTutors  []LeaderboardEntry
	TopInterns []LeaderboardEntry
}

type KindStats struct {
	Count        int
	AverageScore float64
	LastRatedAt  time.Time
}

// LeaderboardEntry 排行榜条目，按均分降序，均分相同保持入榜顺序
type LeaderboardEntry struct {
	UserId       int64
	Name         string
	AverageScore float64
	RatingCount  int
}

// Filter 列表查询过滤条件，零值字段表示不过滤
type Filter struct {
	EvaluatorId     int64
	EvaluatedUserId int64
	Kind            Kind
	Status          Status
	MinScore        float64
	MaxScore        float64
	StageReference  string
	FromDate        time.Time
	ToDate          time.Time

	Offset int
	Limit  int
	// SortBy 支持 score/ctime/status/kind，默认 ctime
	SortBy string
	Desc   bool
}
