package logging

const (
	BaseDataDir = "data"
	LogsDir     = "logs"
)

// ProcessName type to ensure valid process names
type ProcessName string

const (
	ServerProcess ProcessName = "server"
	TestProcess   ProcessName = "test"
)

type LoggerConfig struct {
	ProcessName   ProcessName
	IsDevelopment bool
}

func NewDefaultConfig(processName ProcessName) LoggerConfig {
	return LoggerConfig{
		ProcessName:   processName,
		IsDevelopment: true,
	}
}
