package universe

type SubscriptionId uint64

type subscription struct {
	id SubscriptionId
	fn func(dt float32)
}

// FrameClock calls every subscriber once per frame with the elapsed
// seconds, in subscription order. It is not safe for concurrent use.
type FrameClock struct {
	next    SubscriptionId
	subs    []subscription
	ticking bool
	dirty   bool
}

func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

func (c *FrameClock) Subscribe(fn func(dt float32)) SubscriptionId {
	c.next++
	c.subs = append(c.subs, subscription{id: c.next, fn: fn})
	return c.next
}

// Unsubscribe removes the subscriber. It may be called from inside a
// subscriber; the removed callback is not invoked again.
func (c *FrameClock) Unsubscribe(id SubscriptionId) bool {
	for i := range c.subs {
		if c.subs[i].id == id && c.subs[i].fn != nil {
			if c.ticking {
				c.subs[i].fn = nil
				c.dirty = true
			} else {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
			}
			return true
		}
	}
	return false
}

func (c *FrameClock) Len() int {
	n := 0
	for _, s := range c.subs {
		if s.fn != nil {
			n++
		}
	}
	return n
}

// Advance runs one tick. Subscribers added during the tick start on the
// next one.
func (c *FrameClock) Advance(dt float32) {
	c.ticking = true
	n := len(c.subs)
	for i := 0; i < n; i++ {
		if fn := c.subs[i].fn; fn != nil {
			fn(dt)
		}
	}
	c.ticking = false

	if c.dirty {
		c.dirty = false
		live := c.subs[:0]
		for _, s := range c.subs {
			if s.fn != nil {
				live = append(live, s)
			}
		}
		c.subs = live
	}
}
