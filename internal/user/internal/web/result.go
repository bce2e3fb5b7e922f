package web

import (
	"github.com/ecodeclub/ginx"

	"github.com/neji123/gestion-stagiaires/internal/user/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)
