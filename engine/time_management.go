package engine

import (
	"time"
)

type TimeHandler struct {
	timeForMove      time.Time
	usingCustomDepth bool
}

/*
	- A positive moveTime gives the search a hard deadline.
	- Without one the search runs to the requested depth and the clock is ignored.
*/
func (th *TimeHandler) initTimemanagement(moveTime time.Duration) {
	th.usingCustomDepth = moveTime <= 0
	if !th.usingCustomDepth {
		th.timeForMove = time.Now().Add(moveTime)
	}
}

// TimeStatus reports whether the deadline has passed.
func (th *TimeHandler) TimeStatus() bool {
	return !th.usingCustomDepth && th.timeForMove.Before(time.Now())
}
