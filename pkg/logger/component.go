package logger

// ComponentLogger binds every line to one component name. The plugin host
// hands one of these to each plugin as its logger.
type ComponentLogger struct {
	component string
}

func ForComponent(component string) *ComponentLogger {
	return &ComponentLogger{component: component}
}

func (l *ComponentLogger) Component() string {
	return l.component
}

func (l *ComponentLogger) Info(msg string) {
	logMessage(INFO, l.component, msg, nil)
}

func (l *ComponentLogger) Warn(msg string) {
	logMessage(WARN, l.component, msg, nil)
}

func (l *ComponentLogger) Error(msg string) {
	logMessage(ERROR, l.component, msg, nil)
}
