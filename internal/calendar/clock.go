package calendar

import "time"

// Clock единственный источник "сейчас" для определения окна
type Clock interface {
	Now() time.Time
}

// SystemClock читает системное время в заданной таймзоне
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock всегда возвращает один и тот же момент
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
