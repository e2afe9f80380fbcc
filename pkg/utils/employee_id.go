package util

import (
	"fmt"
	"sync"
	"time"
)

const EmployeeIDPrefix = "EMP-"

// EmployeeIDGenerator hands out business ids of the form EMP-<unix millis>.
// Ids from one generator are strictly increasing: a call landing in the same
// millisecond as the previous one takes the next millisecond instead.
type EmployeeIDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewEmployeeIDGenerator() *EmployeeIDGenerator {
	return &EmployeeIDGenerator{now: time.Now}
}

// NewEmployeeIDGeneratorWithClock is NewEmployeeIDGenerator with a fixed time source.
func NewEmployeeIDGeneratorWithClock(now func() time.Time) *EmployeeIDGenerator {
	return &EmployeeIDGenerator{now: now}
}

func (g *EmployeeIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return fmt.Sprintf("%s%d", EmployeeIDPrefix, ms)
}
