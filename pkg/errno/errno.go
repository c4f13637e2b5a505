package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode          = 0
	ServiceErrCode       = 10001
	ParamErrCode         = 10002
	NotFoundErrCode      = 10003
	ForbiddenErrCode     = 10004
	InvalidOperationCode = 10005
	ValidationErrCode    = 10006
	TokenInvalidErrCode  = 10007
	RedisErrCode         = 10008
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success             = NewErrNo(SuccessCode, "success")
	ServiceErr          = NewErrNo(ServiceErrCode, "service internal error")
	ParamErr            = NewErrNo(ParamErrCode, "wrong parameter")
	NotFoundErr         = NewErrNo(NotFoundErrCode, "resource not found")
	ForbiddenErr        = NewErrNo(ForbiddenErrCode, "access denied")
	InvalidOperationErr = NewErrNo(InvalidOperationCode, "invalid operation")
	ValidationErr       = NewErrNo(ValidationErrCode, "validation failed")
	TokenInvalidErr     = NewErrNo(TokenInvalidErrCode, "token invalid or expired")
	RedisErr            = NewErrNo(RedisErrCode, "redis operation failed")
)

// ConvertErr maps an arbitrary error back onto an ErrNo. Unknown errors
// become ServiceErr carrying the original message.
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	var e ErrNo
	if errors.As(err, &e) {
		return e
	}
	return ServiceErr.WithMessage(err.Error())
}

// IsNotFound reports whether err carries the NotFound code.
func IsNotFound(err error) bool {
	var e ErrNo
	return errors.As(err, &e) && e.ErrCode == NotFoundErrCode
}
