// internal/state/overlay.go
package state

import (
	"fmt"
	"math"
)

// Overlay - данные для полосы прогресса и подписей поверх кадра.
type Overlay struct {
	Time     float64 // секунды от начала сцены
	Duration float64 // полная длина сцены
	Section  string  // имя текущего Play или Wait
	Paused   bool
	Finished bool
}

// Progress возвращает долю пройденного времени в [0, 1].
func (o Overlay) Progress() float64 {
	if o.Duration <= 0 {
		return 0
	}
	return math.Min(math.Max(o.Time/o.Duration, 0), 1)
}

// Timecode - "m:ss.d / m:ss.d".
func (o Overlay) Timecode() string {
	return formatTime(o.Time) + " / " + formatTime(o.Duration)
}

// Status - строка состояния для правого угла.
func (o Overlay) Status() string {
	switch {
	case o.Finished:
		return "finished  [R] replay"
	case o.Paused:
		return "paused  [space] play  [->] step"
	}
	return "[space] pause  [R] restart"
}

func formatTime(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	m := int(sec) / 60
	return fmt.Sprintf("%d:%04.1f", m, sec-float64(m*60))
}
