package storage

import (
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

// Schedule raises a flag every interval. The flag is consumed with Due from
// the game loop, so saves always run on the update goroutine.
type Schedule struct {
	cron *cron.Cron
	due  atomic.Bool
}

// NewSchedule creates a stopped schedule. Intervals below one second are
// rounded up to one second.
func NewSchedule(interval time.Duration) *Schedule {
	s := &Schedule{cron: cron.New()}
	s.cron.Schedule(cron.Every(interval), cron.FuncJob(s.fire))
	return s
}

func (s *Schedule) fire() {
	s.due.Store(true)
}

func (s *Schedule) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running tick to finish.
func (s *Schedule) Stop() {
	<-s.cron.Stop().Done()
}

// Due reports whether a tick fired since the last call, and clears it.
func (s *Schedule) Due() bool {
	return s.due.Swap(false)
}
