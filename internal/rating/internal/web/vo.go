package web

import (
	"time"

	"github.com/ecodeclub/ekit/slice"

	"github.com/neji123/gestion-stagiaires/internal/rating/internal/domain"
	"github.com/neji123/gestion-stagiaires/internal/user"
)

type Rating struct {
	Id              int64    `json:"id"`
	EvaluatorId     int64    `json:"evaluatorId"`
	EvaluatedUserId int64    `json:"evaluatedUserId"`
	Kind            string   `json:"kind"`
	Score           float64  `json:"score"`
	Comment         string   `json:"comment"`
	Criteria        Criteria `json:"criteria"`
	Status          string   `json:"status"`
	PeriodStart     int64    `json:"periodStart,omitempty"`
	PeriodEnd       int64    `json:"periodEnd,omitempty"`
	StageReference  string   `json:"stageReference,omitempty"`
	SubmittedAt     int64    `json:"submittedAt,omitempty"`
	ApprovedAt      int64    `json:"approvedAt,omitempty"`
	ApprovedBy      int64    `json:"approvedBy,omitempty"`
	Response        string   `json:"response,omitempty"`
	ResponseDate    int64    `json:"responseDate,omitempty"`
	Utime           int64    `json:"utime"`
}

type Criteria struct {
	Tutor    *domain.TutorCriteria    `json:"tutor,omitempty"`
	Standard *domain.StandardCriteria `json:"standard,omitempty"`
}

func newRating(r domain.Rating) Rating {
	c := domain.DecodeCriteria(r.Kind, r.DetailedScores, r.Score)
	return Rating{
		Id:              r.ID,
		EvaluatorId:     r.EvaluatorId,
		EvaluatedUserId: r.EvaluatedUserId,
		Kind:            r.Kind.String(),
		Score:           r.Score,
		Comment:         r.Comment,
		Criteria:        Criteria{Tutor: c.Tutor, Standard: c.Standard},
		Status:          r.Status.String(),
		PeriodStart:     unixMilliOrZero(r.PeriodStart),
		PeriodEnd:       unixMilliOrZero(r.PeriodEnd),
		StageReference:  r.StageReference,
		SubmittedAt:     unixMilliOrZero(r.SubmittedAt),
		ApprovedAt:      unixMilliOrZero(r.ApprovedAt),
		ApprovedBy:      r.ApprovedByUserId,
		Response:        r.Response,
		ResponseDate:    unixMilliOrZero(r.ResponseDate),
		Utime:           unixMilliOrZero(r.Utime),
	}
}

func newRatings(rs []domain.Rating) []Rating {
	return slice.Map(rs, func(idx int, src domain.Rating) Rating {
		return newRating(src)
	})
}

type RatingList struct {
	Total   int64    `json:"total,omitempty"`
	Ratings []Rating `json:"ratings"`
}

type SaveReq struct {
	Id              int64    `json:"id"`
	EvaluatedUserId int64    `json:"evaluatedUserId"`
	Kind            string   `json:"kind"`
	Score           float64  `json:"score"`
	Comment         string   `json:"comment"`
	Criteria        Criteria `json:"criteria"`
	PeriodStart     int64    `json:"periodStart"`
	PeriodEnd       int64    `json:"periodEnd"`
	StageReference  string   `json:"stageReference"`
}

func (req SaveReq) toDomain() (domain.Rating, error) {
	kind, err := domain.ParseKind(req.Kind)
	if err != nil {
		return domain.Rating{}, err
	}
	detailed, err := domain.EncodeCriteria(kind, domain.Criteria{
		Tutor:    req.Criteria.Tutor,
		Standard: req.Criteria.Standard,
	})
	if err != nil {
		return domain.Rating{}, err
	}
	return domain.Rating{
		ID:              req.Id,
		EvaluatedUserId: req.EvaluatedUserId,
		Kind:            kind,
		Score:           req.Score,
		Comment:         req.Comment,
		DetailedScores:  detailed,
		PeriodStart:     timeOrZero(req.PeriodStart),
		PeriodEnd:       timeOrZero(req.PeriodEnd),
		StageReference:  req.StageReference,
	}, nil
}

type IdReq struct {
	Id int64 `json:"id"`
}

type RespondReq struct {
	Id       int64  `json:"id"`
	Response string `json:"response"`
}

type RejectReq struct {
	Id     int64  `json:"id"`
	Reason string `json:"reason"`
}

type GivenReq struct {
	// Kind 为空表示全部
	Kind string `json:"kind"`
}

type PeriodReq struct {
	PeriodStart int64 `json:"periodStart"`
	PeriodEnd   int64 `json:"periodEnd"`
}

type CanRateReq struct {
	EvaluatedUserId int64  `json:"evaluatedUserId"`
	Kind            string `json:"kind"`
}

type LeaderboardReq struct {
	// Role 被评价人的角色，榜单按角色聚合收到的全部评价
	Role string `json:"role"`
	TopN int    `json:"topN"`
}

type ListReq struct {
	EvaluatorId     int64   `json:"evaluatorId"`
	EvaluatedUserId int64   `json:"evaluatedUserId"`
	Kind            string  `json:"kind"`
	Status          string  `json:"status"`
	MinScore        float64 `json:"minScore"`
	MaxScore        float64 `json:"maxScore"`
	StageReference  string  `json:"stageReference"`
	FromDate        int64   `json:"fromDate"`
	ToDate          int64   `json:"toDate"`
	Offset          int     `json:"offset"`
	Limit           int     `json:"limit"`
	SortBy          string  `json:"sortBy"`
	Desc            bool    `json:"desc"`
}

func (req ListReq) toDomain() (domain.Filter, error) {
	f := domain.Filter{
		EvaluatorId:     req.EvaluatorId,
		EvaluatedUserId: req.EvaluatedUserId,
		MinScore:        req.MinScore,
		MaxScore:        req.MaxScore,
		StageReference:  req.StageReference,
		FromDate:        timeOrZero(req.FromDate),
		ToDate:          timeOrZero(req.ToDate),
		Offset:          req.Offset,
		Limit:           req.Limit,
		SortBy:          req.SortBy,
		Desc:            req.Desc,
	}
	if req.Kind != "" {
		kind, err := domain.ParseKind(req.Kind)
		if err != nil {
			return domain.Filter{}, err
		}
		f.Kind = kind
	}
	if req.Status != "" {
		status, err := domain.ParseStatus(req.Status)
		if err != nil {
			return domain.Filter{}, err
		}
		f.Status = status
	}
	return f, nil
}

type UserStats struct {
	AverageReceived   float64              `json:"averageReceived"`
	AverageGiven      float64              `json:"averageGiven"`
	TotalRatings      int                  `json:"totalRatings"`
	DraftRatings      int                  `json:"draftRatings"`
	ScoreDistribution map[int]int          `json:"scoreDistribution"`
	ByKind            map[string]KindStats `json:"byKind"`
	BestIntern        *LeaderboardEntry    `json:"bestIntern,omitempty"`
	TopTutors         []LeaderboardEntry   `json:"topTutors,omitempty"`
	TopInterns        []LeaderboardEntry   `json:"topInterns,omitempty"`
}

type KindStats struct {
	Count        int     `json:"count"`
	AverageScore float64 `json:"averageScore"`
	LastRatedAt  int64   `json:"lastRatedAt,omitempty"`
}

type LeaderboardEntry struct {
	UserId       int64   `json:"userId"`
	Name         string  `json:"name"`
	AverageScore float64 `json:"averageScore"`
	RatingCount  int     `json:"ratingCount"`
}

func newUserStats(st domain.UserStats) UserStats {
	byKind := make(map[string]KindStats, len(st.ByKind))
	for k, v := range st.ByKind {
		byKind[k] = KindStats{
			Count:        v.Count,
			AverageScore: v.AverageScore,
			LastRatedAt:  unixMilliOrZero(v.LastRatedAt),
		}
	}
	res := UserStats{
		AverageReceived:   st.AverageReceived,
		AverageGiven:      st.AverageGiven,
		TotalRatings:      st.TotalRatings,
		DraftRatings:      st.DraftRatings,
		ScoreDistribution: st.ScoreDistribution,
		ByKind:            byKind,
		TopTutors:         newLeaderboard(st.TopTutors),
		TopInterns:        newLeaderboard(st.TopInterns),
	}
	if st.BestIntern != nil {
		entry := newLeaderboardEntry(*st.BestIntern)
		res.BestIntern = &entry
	}
	return res
}

func newLeaderboard(entries []domain.LeaderboardEntry) []LeaderboardEntry {
	return slice.Map(entries, func(idx int, src domain.LeaderboardEntry) LeaderboardEntry {
		return newLeaderboardEntry(src)
	})
}

func newLeaderboardEntry(e domain.LeaderboardEntry) LeaderboardEntry {
	return LeaderboardEntry{
		UserId:       e.UserId,
		Name:         e.Name,
		AverageScore: e.AverageScore,
		RatingCount:  e.RatingCount,
	}
}

type UserProfile struct {
	Id     int64  `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

type UserList struct {
	Users []UserProfile `json:"users"`
}

func newUserList(us []user.User) UserList {
	return UserList{
		Users: slice.Map(us, func(idx int, src user.User) UserProfile {
			return UserProfile{
				Id:     src.Id,
				Name:   src.Name(),
				Role:   src.Role.String(),
				Avatar: src.Avatar,
			}
		}),
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
