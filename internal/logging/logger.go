package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// LogLevel определяет уровни логирования
type LogLevel int

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// String возвращает строковое представление уровня логирования
func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger пишет сообщения в консоль и в файл с разными минимальными уровнями.
// В консоль по умолчанию попадает INFO и выше, в файл — всё.
type Logger struct {
	consoleLogger   *log.Logger
	fileLogger      *log.Logger
	file            *os.File
	minConsoleLevel LogLevel
	minFileLevel    LogLevel
}

// Глобальный экземпляр логгера
var defaultLogger *Logger

// NewLogger создаёт логгер для компонента с файлом в директории logs/
func NewLogger(component string) (*Logger, error) {
	if err := os.MkdirAll("logs", 0755); err != nil {
		return nil, fmt.Errorf("ошибка создания директории logs: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := filepath.Join("logs", fmt.Sprintf("%s_%s.log", component, timestamp))

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания файла логов: %w", err)
	}

	return &Logger{
		consoleLogger:   log.New(os.Stdout, "", log.LstdFlags),
		fileLogger:      log.New(file, "", log.LstdFlags),
		file:            file,
		minConsoleLevel: INFO,
		minFileLevel:    TRACE,
	}, nil
}

// InitDefaultLogger инициализирует глобальный логгер приложения
func InitDefaultLogger(component string) error {
	logger, err := NewLogger(component)
	if err != nil {
		return err
	}
	defaultLogger = logger
	return nil
}

// CloseDefaultLogger закрывает глобальный логгер
func CloseDefaultLogger() {
	if defaultLogger != nil {
		defaultLogger.Close()
		defaultLogger = nil
	}
}

// Close закрывает файл логгера
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// SetLevels настраивает минимальные уровни для консоли и файла
func (l *Logger) SetLevels(console, file LogLevel) {
	l.minConsoleLevel = console
	l.minFileLevel = file
}

// Log логирует сообщение с указанным уровнем
func (l *Logger) Log(level LogLevel, format string, args ...interface{}) {
	message := fmt.Sprintf("[%s] %s", level.String(), fmt.Sprintf(format, args...))

	if l.fileLogger != nil && level >= l.minFileLevel {
		l.fileLogger.Println(message)
	}
	if l.consoleLogger != nil && level >= l.minConsoleLevel {
		l.consoleLogger.Println(message)
	}
}

// Trace логирует сообщение уровня TRACE
func Trace(format string, args ...interface{}) {
	logMessage(TRACE, format, args...)
}

// Debug логирует сообщение уровня DEBUG
func Debug(format string, args ...interface{}) {
	logMessage(DEBUG, format, args...)
}

// Info логирует сообщение уровня INFO
func Info(format string, args ...interface{}) {
	logMessage(INFO, format, args...)
}

// Warn логирует сообщение уровня WARN
func Warn(format string, args ...interface{}) {
	logMessage(WARN, format, args...)
}

// Error логирует сообщение уровня ERROR
func Error(format string, args ...interface{}) {
	logMessage(ERROR, format, args...)
}

// logMessage внутренняя функция для логирования через глобальный логгер
func logMessage(level LogLevel, format string, args ...interface{}) {
	if defaultLogger == nil {
		return
	}
	defaultLogger.Log(level, format, args...)
}
