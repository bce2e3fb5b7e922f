package errs

var (
	SystemError  = ErrorCode{Code: 501001, Msg: "系统错误"}
	UserNotFound = ErrorCode{Code: 501002, Msg: "用户不存在"}
	InvalidRole  = ErrorCode{Code: 501003, Msg: "未知的用户角色"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
