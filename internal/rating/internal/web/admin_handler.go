package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"

	"github.com/neji123/gestion-stagiaires/internal/rating/internal/service"
)

// AdminHandler 审核后台，注册在管理端口上
type AdminHandler struct {
	svc      service.Service
	statsSvc service.StatsService
}

func NewAdminHandler(svc service.Service, statsSvc service.StatsService) *AdminHandler {
	return &AdminHandler{
		svc:      svc,
		statsSvc: statsSvc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/ratings/list", ginx.B[ListReq](h.List))
	server.GET("/ratings/pending", ginx.S(h.Pending))
	server.POST("/ratings/approve", ginx.BS[IdReq](h.Approve))
	server.POST("/ratings/reject", ginx.BS[RejectReq](h.Reject))
	server.GET("/ratings/stats", ginx.S(h.Stats))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	f, err := req.toDomain()
	if err != nil {
		return invalidInputResult, err
	}
	rs, total, err := h.svc.List(ctx, f)
	if err != nil {
		return failure(err), err
	}
	return ginx.Result{
		Data: RatingList{
			Total:   total,
			Ratings: newRatings(rs),
		},
	}, nil
}

// Pending 按提交时间排好序的待审核队列
func (h *AdminHandler) Pending(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	rs, err := h.svc.PendingApprovals(ctx, sess.Claims().Uid)
	if err != nil {
		return failure(err), err
	}
	return ginx.Result{Data: RatingList{Ratings: newRatings(rs)}}, nil
}

func (h *AdminHandler) Approve(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Approve(ctx, req.Id, sess.Claims().Uid)
	if err != nil {
		return failure(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Reject(ctx *ginx.Context, req RejectReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Reject(ctx, req.Id, sess.Claims().Uid, req.Reason)
	if err != nil {
		return failure(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

// Stats HR 视角的全局统计，含 Top5 导师和 Top5 实习生
func (h *AdminHandler) Stats(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	st, err := h.statsSvc.UserStats(ctx, sess.Claims().Uid)
	if err != nil {
		return failure(err), err
	}
	return ginx.Result{Data: newUserStats(st)}, nil
}
