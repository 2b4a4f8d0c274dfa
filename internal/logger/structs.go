package logger

// Console implements a console based logger.
type Console struct {
	Enabled          bool `toml:"enabled"`
	UseConsoleWriter bool
}

// Rotation holds the lumberjack settings of one log file.
type Rotation struct {
	File       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// LogFile implements a file based logger.
type LogFile struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`

	AccessLog        string `toml:"access"`
	AccessMaxSize    int    `toml:"accessMaxSize"`
	AccessMaxBackups int    `toml:"accessMaxBackups"`
	AccessMaxAge     int    `toml:"accessMaxAge"`

	ErrorLog        string `toml:"error"`
	ErrorMaxSize    int    `toml:"errorMaxSize"`
	ErrorMaxBackups int    `toml:"errorMaxBackups"`
	ErrorMaxAge     int    `toml:"errorMaxAge"`

	InfoLog        string `toml:"info"`
	InfoMaxSize    int    `toml:"infoMaxSize"`
	InfoMaxBackups int    `toml:"infoMaxBackups"`
	InfoMaxAge     int    `toml:"infoMaxAge"`

	TraceLog        string `toml:"trace"`
	TraceMaxSize    int    `toml:"traceMaxSize"`
	TraceMaxBackups int    `toml:"traceMaxBackups"`
	TraceMaxAge     int    `toml:"traceMaxAge"`

	WarnLog        string `toml:"warn"`
	WarnMaxSize    int    `toml:"warnMaxSize"`
	WarnMaxBackups int    `toml:"warnMaxBackups"`
	WarnMaxAge     int    `toml:"warnMaxAge"`
}

// Access returns the rotation settings of the access log.
func (f LogFile) Access() Rotation {
	return Rotation{File: f.AccessLog, MaxSize: f.AccessMaxSize, MaxBackups: f.AccessMaxBackups, MaxAge: f.AccessMaxAge}
}

// Error returns the rotation settings of the error log.
func (f LogFile) Error() Rotation {
	return Rotation{File: f.ErrorLog, MaxSize: f.ErrorMaxSize, MaxBackups: f.ErrorMaxBackups, MaxAge: f.ErrorMaxAge}
}

// Info returns the rotation settings of the info log.
func (f LogFile) Info() Rotation {
	return Rotation{File: f.InfoLog, MaxSize: f.InfoMaxSize, MaxBackups: f.InfoMaxBackups, MaxAge: f.InfoMaxAge}
}

// Trace returns the rotation settings of the trace log.
func (f LogFile) Trace() Rotation {
	return Rotation{File: f.TraceLog, MaxSize: f.TraceMaxSize, MaxBackups: f.TraceMaxBackups, MaxAge: f.TraceMaxAge}
}

// Warn returns the rotation settings of the warn log.
func (f LogFile) Warn() Rotation {
	return Rotation{File: f.WarnLog, MaxSize: f.WarnMaxSize, MaxBackups: f.WarnMaxBackups, MaxAge: f.WarnMaxAge}
}

// Log implements the logger config.
type Log struct {
	LogLevel string // trace, debug, info, warn, error.

	// EnableAccessLogToConsole if true the web service logs requests to the console.
	// Does not overrule flag Console.Enabled!
	EnableAccessLogToConsole bool
	ReportCaller             bool
	DisableCheckAlive        bool // do not log /checkalive calls

	AppName     string
	ServiceName string

	// Console used mainly for docker and dev.
	Console Console

	// File based logging with rotation.
	File LogFile `toml:"file"`
}
