package errs

var (
	SystemError     = ErrorCode{Code: 518001, Msg: "系统错误"}
	RatingNotFound  = ErrorCode{Code: 518002, Msg: "评价不存在"}
	Unauthorized    = ErrorCode{Code: 518003, Msg: "无权对该用户执行此操作"}
	InvalidState    = ErrorCode{Code: 518004, Msg: "评价状态不允许此操作"}
	DuplicateRating = ErrorCode{Code: 518005, Msg: "该周期内已存在对此用户的评价"}
	InvalidInput    = ErrorCode{Code: 518006, Msg: "非法输入"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
