package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"

	"github.com/neji123/gestion-stagiaires/internal/user/internal/domain"
	"github.com/neji123/gestion-stagiaires/internal/user/internal/errs"
	"github.com/neji123/gestion-stagiaires/internal/user/internal/service"
)

// AdminHandler 用户管理后台，创建账号和按角色查询
type AdminHandler struct {
	svc service.UserService
}

func NewAdminHandler(svc service.UserService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/users/create", ginx.B[CreateUserReq](h.Create))
	server.POST("/users/list", ginx.B[ListByRoleReq](h.ListByRole))
}

func (h *AdminHandler) Create(ctx *ginx.Context, req CreateUserReq) (ginx.Result, error) {
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return ginx.Result{
			Code: errs.InvalidRole.Code,
			Msg:  errs.InvalidRole.Msg,
		}, err
	}
	u, err := h.svc.Create(ctx, domain.User{
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Role:       role,
		TutorId:    req.TutorId,
		Department: req.Department,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *AdminHandler) ListByRole(ctx *ginx.Context, req ListByRoleReq) (ginx.Result, error) {
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return ginx.Result{
			Code: errs.InvalidRole.Code,
			Msg:  errs.InvalidRole.Msg,
		}, err
	}
	us, err := h.svc.ListByRole(ctx, role)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: UserList{Users: newProfiles(us)},
	}, nil
}
