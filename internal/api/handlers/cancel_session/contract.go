package cancel_session

type SessionService interface {
	Cancel(id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
