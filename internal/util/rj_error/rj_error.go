package rj_error

import "fmt"

type Code int32

const (
	BadRequestCode           Code = 400
	NotFoundCode             Code = 404
	MethodNotAllowedCode     Code = 405
	UnsupportedMediaTypeCode Code = 415
	InternalErrorCode        Code = 500
)

// ErrStrMap 對應 http status 的錯誤標題, 跟response error欄位一致
var ErrStrMap = map[Code]string{
	BadRequestCode:           "Bad Request",
	NotFoundCode:             "Not Found",
	MethodNotAllowedCode:     "Method not Allowed",
	UnsupportedMediaTypeCode: "Unsupported media type",
	InternalErrorCode:        "Internal Server Error",
}

type AnaError struct {
	Code    Code
	Message string
}

func (e *AnaError) Error() string {
	return e.Message
}

func New(code Code, message string) *AnaError {
	return &AnaError{
		Code:    code,
		Message: message,
	}
}

func Newf(code Code, format string, args ...any) *AnaError {
	return &AnaError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
