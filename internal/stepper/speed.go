package stepper

import "time"

const (
	MinDelay     = 5
	MaxDelay     = 200
	DefaultSpeed = 30
	SpeedStep    = 5
)

// Speed is the raw slider value in [MinDelay, MaxDelay].
//
// The mapping to a tick delay is inverted: delay = MaxDelay - value + MinDelay
// milliseconds, so a higher value animates faster.
type Speed int

func NewSpeed(value int) Speed { return Speed(value).Clamp() }

func (s Speed) Clamp() Speed {
	switch {
	case s < MinDelay:
		return MinDelay
	case s > MaxDelay:
		return MaxDelay
	}
	return s
}

func (s Speed) Delay() time.Duration {
	v := s.Clamp()
	return time.Duration(MaxDelay-int(v)+MinDelay) * time.Millisecond
}

func (s Speed) Faster() Speed { return (s + SpeedStep).Clamp() }
func (s Speed) Slower() Speed { return (s - SpeedStep).Clamp() }
