package board

import (
	"strconv"
	"time"

	"github.com/wifak939/taskboard/internal/models"
)

// IDGenerator hands out task ids that are not yet used on the board
type IDGenerator interface {
	NewID(b *models.Board) models.TaskID
}

// ClockIDs derives ids from the current time in milliseconds since the Unix
// epoch, written in decimal. Two calls within the same millisecond, or a
// timestamp that is already taken on the board, bump the value by one until
// it is free.
type ClockIDs struct {
	// Now defaults to time.Now
	Now  func() time.Time
	last int64
}

// NewClockIDs returns a generator backed by the wall clock
func NewClockIDs() *ClockIDs {
	return &ClockIDs{Now: time.Now}
}

// NewID implements IDGenerator
func (g *ClockIDs) NewID(b *models.Board) models.TaskID {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}

	n := max(now().UnixMilli(), g.last+1)
	for {
		id := models.TaskID(strconv.FormatInt(n, 10))
		if _, _, taken := b.FindTask(id); !taken {
			g.last = n
			return id
		}
		n++
	}
}
