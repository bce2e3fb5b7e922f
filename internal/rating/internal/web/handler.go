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

package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"

	"github.com/neji123/gestion-stagiaires/internal/rating/internal/domain"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/service"
	"github.com/neji123/gestion-stagiaires/internal/user"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc      service.Service
	statsSvc service.StatsService
}

func NewHandler(svc service.Service, statsSvc service.StatsService) *Handler {
	return &Handler{
		svc:      svc,
		statsSvc: statsSvc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	ratings := server.Group("/ratings")
	ratings.POST("/save", ginx.BS[SaveReq](h.Save))
	ratings.POST("/submit", ginx.BS[IdReq](h.Submit))
	ratings.POST("/delete", ginx.BS[IdReq](h.Delete))
	ratings.POST("/detail", ginx.BS[IdReq](h.Detail))
	ratings.POST("/respond", ginx.BS[RespondReq](h.Respond))
	ratings.POST("/mine", ginx.BS[GivenReq](h.Mine))
	ratings.GET("/about-me", ginx.S(h.AboutMe))
	ratings.GET("/drafts", ginx.S(h.Drafts))
	ratings.GET("/awaiting-response", ginx.S(h.AwaitingResponse))
	ratings.POST("/can-rate", ginx.BS[CanRateReq](h.CanRate))
	ratings.GET("/ratable-users", ginx.S(h.RatableUsers))
	ratings.POST("/unrated-users", ginx.BS[PeriodReq](h.UnratedUsers))
	ratings.GET("/stats", ginx.S(h.Stats))
	ratings.POST("/leaderboard", ginx.B[LeaderboardReq](h.Leaderboard))
}

// Save id 为 0 创建草稿，否则更新
func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	r, err := req.toDomain()
	if err != nil {
		return invalidInputResult, err
	}
	uid := sess.Claims().Uid
	if req.Id == 0 {
		id, err := h.svc.Create(ctx, uid, r)
		if err != nil {
			return failure(err), err
		}
		return ginx.Result{Data: id}, nil
	}
	err = h.svc.Update(ctx, uid, r)
	if err != nil {
		return failure(err), err
	}
	return ginx.Result{Data: req.Id}, nil
}

func (h *Handler) Submit(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Submit(ctx, req.Id, sess.Claims().Uid)
	if err != nil {
		return failure(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.Id, sess.Claims().Uid)
	if err != nil {
		return failure(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	r, err := h.svc.Detail(ctx, req.Id, sess.Claims().Uid)
	if err != nil {
		return failure(err), err
	}
	return ginx.Result{Data: newRating(r)}, nil
}

func (h *Handler) Respond(ctx *ginx.Context, req RespondReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.AddResponse(ctx, req.Id, sess.Claims().Uid, req.Response)
	if err != nil {
		return failure(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, req GivenReq, sess session.Session) (ginx.Result, error) {
	kind := domain.KindUnknown
	if req.Kind != "" {
		var err error
		kind, err = domain.ParseKind(req.Kind)
		if err != nil {
			return invalidInputResult, err
		}
	}
	rs, err := h.svc.Given(ctx, sess.Claims().Uid, kind)
	if err != nil {
		return failure(err), err
	}
	return ginx.Result{Data: RatingList{Ratings: newRatings(rs)}}, nil
}

func (h *Handler) AboutMe(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	rs, err := h.svc.AboutMe(ctx, sess.Claims().Uid)
	if err != nil {
		return failure(err), err
	}
	return ginx.Result{Data: RatingList{Ratings: newRatings(rs)}}, nil
}

func (h *Handler) Drafts(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	rs, err := h.svc.Drafts(ctx, sess.Claims().Uid)
	if err != nil {
		return failure(err), err
	}
	return ginx.Result{Data: RatingList{Ratings: newRatings(rs)}}, nil
}

func (h *Handler) AwaitingResponse(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	rs, err := h.svc.AwaitingResponse(ctx, sess.Claims().Uid)
	if err != nil {
		return failure(err), err
	}
	return ginx.Result{Data: RatingList{Ratings: newRatings(rs)}}, nil
}

func (h *Handler) CanRate(ctx *ginx.Context, req CanRateReq, sess session.Session) (ginx.Result, error) {
	kind, err := domain.ParseKind(req.Kind)
	if err != nil {
		return invalidInputResult, err
	}
	ok, err := h.svc.CanRate(ctx, sess.Claims().Uid, req.EvaluatedUserId, kind)
	if err != nil {
		return failure(err), err
	}
	return ginx.Result{Data: ok}, nil
}

func (h *Handler) RatableUsers(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	us, err := h.svc.RatableUsers(ctx, sess.Claims().Uid)
	if err != nil {
		return failure(err), err
	}
	return ginx.Result{Data: newUserList(us)}, nil
}

func (h *Handler) UnratedUsers(ctx *ginx.Context, req PeriodReq, sess session.Session) (ginx.Result, error) {
	us, err := h.svc.UnratedUsers(ctx, sess.Claims().Uid,
		timeOrZero(req.PeriodStart), timeOrZero(req.PeriodEnd))
	if err != nil {
		return failure(err), err
	}
	return ginx.Result{Data: newUserList(us)}, nil
}

func (h *Handler) Stats(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	st, err := h.statsSvc.UserStats(ctx, sess.Claims().Uid)
	if err != nil {
		return failure(err), err
	}
	return ginx.Result{Data: newUserStats(st)}, nil
}

func (h *Handler) Leaderboard(ctx *ginx.Context, req LeaderboardReq) (ginx.Result, error) {
	role, err := user.ParseRole(req.Role)
	if err != nil {
		return invalidInputResult, err
	}
	topN := req.TopN
	if topN <= 0 {
		topN = 5
	}
	entries, err := h.statsSvc.Leaderboard(ctx, role, topN)
	if err != nil {
		return failure(err), err
	}
	return ginx.Result{Data: newLeaderboard(entries)}, nil
}
