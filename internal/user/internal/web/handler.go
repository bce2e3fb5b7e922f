package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"

	"github.com/neji123/gestion-stagiaires/internal/user/internal/domain"
	"github.com/neji123/gestion-stagiaires/internal/user/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
}

func NewHandler(userSvc service.UserService) *Handler {
	return &Handler{
		userSvc: userSvc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
	users.GET("/interns", ginx.S(h.MyInterns))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

// Edit 用户编辑信息
func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	err := h.userSvc.UpdateNonSensitiveInfo(ctx, domain.User{
		Id:         uid,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Avatar:     req.Avatar,
		Department: req.Department,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

// MyInterns 导师名下的实习生
func (h *Handler) MyInterns(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	us, err := h.userSvc.InternsByTutor(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: UserList{Users: newProfiles(us)},
	}, nil
}

func newProfile(u domain.User) Profile {
	return Profile{
		Id:         u.Id,
		SN:         u.SN,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Avatar:     u.Avatar,
		Role:       u.Role.String(),
		TutorId:    u.TutorId,
		Department: u.Department,
	}
}

func newProfiles(us []domain.User) []Profile {
	return slice.Map(us, func(idx int, src domain.User) Profile {
		return newProfile(src)
	})
}
