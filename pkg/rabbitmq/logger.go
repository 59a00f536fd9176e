package rabbitmq

// Logger — минимальный интерфейс логирования для издателя, чтобы пакет
// не зависел от логгера сервиса.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(err error, msg string, args ...any)
}

// NoopLogger используется, когда логгер не передан.
type NoopLogger struct{}

func NewNoopLogger() *NoopLogger { return &NoopLogger{} }

func (*NoopLogger) Debug(string, ...any)        {}
func (*NoopLogger) Info(string, ...any)         {}
func (*NoopLogger) Error(error, string, ...any) {}
