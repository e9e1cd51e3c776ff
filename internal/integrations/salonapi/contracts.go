package salonapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Observer получает результат каждого вызова удаленного API (метрики)
type Observer interface {
	ObserveGatewayCall(operation, outcome string, duration time.Duration)
}

type noopObserver struct{}

func (noopObserver) ObserveGatewayCall(string, string, time.Duration) {}
