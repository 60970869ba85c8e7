package game

import "time"

type Chart struct {
	Name      string
	Notes     []*Note // sorted by Time
	NoteCount int64

	next int
}

// Due returns the notes whose spawn moment (Time-lead) has been reached
// since the last call and advances past them.
func (c *Chart) Due(now, lead time.Duration) []*Note {
	start := c.next
	for c.next < len(c.Notes) && c.Notes[c.next].Time-lead <= now {
		c.next++
	}
	return c.Notes[start:c.next]
}

func (c *Chart) Rewind() {
	c.next = 0
}

func (c *Chart) Length() time.Duration {
	if len(c.Notes) == 0 {
		return 0
	}
	return c.Notes[len(c.Notes)-1].Time
}
