package admin_login

import "net/http"

type PasswordVerifier interface {
	Verify(password string) error
}

type SessionManager interface {
	SetAdmin(w http.ResponseWriter) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
