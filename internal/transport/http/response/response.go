package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Resp is the envelope of every JSON response.
type Resp struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

// New never leaves data null.
func New(code int, msg string, data any) Resp {
	if data == nil {
		data = struct{}{}
	}
	return Resp{Code: code, Msg: msg, Data: data}
}

func OK(data any) Resp {
	return New(CodeOK, CodeMsgMap[CodeOK], data)
}

// Error builds a failure envelope; an empty customMsg uses the default text
// for code.
func Error(code int, customMsg string) Resp {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	return New(code, msg, struct{}{})
}

// Abort writes a failure envelope with code as the HTTP status and stops the
// handler chain.
func Abort(c *gin.Context, code int, customMsg string) {
	status := code
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	c.AbortWithStatusJSON(status, Error(code, customMsg))
}
