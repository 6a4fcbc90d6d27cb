package bsearch

type Logger interface {
	Debug() LogEntry
	Info() LogEntry
	Warn() LogEntry
	Err() LogEntry
}

type LogEntry interface {
	Value(key string, value any) LogEntry
	Msg(string)
}
