package billstatus

import "time"

// Scheduler откладывает выполнение callback'а
type Scheduler interface {
	Schedule(after time.Duration, fn func())
}

// TimerScheduler планировщик на time.AfterFunc для production
type TimerScheduler struct{}

// Schedule запускает fn через after
func (TimerScheduler) Schedule(after time.Duration, fn func()) {
	time.AfterFunc(after, fn)
}
