package web

import (
	"errors"

	"github.com/ecodeclub/ginx"

	"github.com/neji123/gestion-stagiaires/internal/rating/internal/errs"
	"github.com/neji123/gestion-stagiaires/internal/rating/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.RatingNotFound.Code,
		Msg:  errs.RatingNotFound.Msg,
	}
	unauthorizedResult = ginx.Result{
		Code: errs.Unauthorized.Code,
		Msg:  errs.Unauthorized.Msg,
	}
	invalidStateResult = ginx.Result{
		Code: errs.InvalidState.Code,
		Msg:  errs.InvalidState.Msg,
	}
	duplicateResult = ginx.Result{
		Code: errs.DuplicateRating.Code,
		Msg:  errs.DuplicateRating.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
)

// failure 把 service 的哨兵错误翻译成前端的错误码
func failure(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrRatingNotFound):
		return notFoundResult
	case errors.Is(err, service.ErrUnauthorized):
		return unauthorizedResult
	case errors.Is(err, service.ErrInvalidState):
		return invalidStateResult
	case errors.Is(err, service.ErrDuplicateRating):
		return duplicateResult
	case errors.Is(err, service.ErrInvalidRating):
		return invalidInputResult
	default:
		return systemErrorResult
	}
}
