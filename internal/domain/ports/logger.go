package ports

// Logger é a porta de logging estruturado. args são pares chave/valor.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	// With devolve um logger filho que inclui os campos em toda linha
	With(args ...any) Logger
}
