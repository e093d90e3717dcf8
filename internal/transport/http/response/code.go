package response

// Codes follow HTTP semantics; CodeOK is the only non-HTTP value.
const (
	CodeOK                 = 0
	CodeBadRequest         = 400
	CodeUnauthorized       = 401
	CodeForbidden          = 403
	CodeNotFound           = 404
	CodeTooLarge           = 413
	CodeTooManyRequests    = 429
	CodeServerError        = 500
	CodeServiceUnavailable = 503
	CodeTimeout            = 504
)

var CodeMsgMap = map[int]string{
	CodeOK:                 "OK",
	CodeBadRequest:         "Bad Request",
	CodeUnauthorized:       "Unauthorized",
	CodeForbidden:          "Forbidden",
	CodeNotFound:           "Not Found",
	CodeTooLarge:           "Request Entity Too Large",
	CodeTooManyRequests:    "Too Many Requests",
	CodeServerError:        "Internal Server Error",
	CodeServiceUnavailable: "Service Unavailable",
	CodeTimeout:            "Gateway Timeout",
}
