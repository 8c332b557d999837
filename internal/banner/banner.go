// Package banner holds the transient completion message shown after a
// mission is completed.
package banner

import (
	"sync"
	"time"
)

// DefaultTTL is how long a message stays visible.
const DefaultTTL = 3 * time.Second

// Banner shows one message at a time and clears it after a TTL. Showing a
// new message cancels the pending clear of the previous one.
type Banner struct {
	mu       sync.Mutex
	ttl      time.Duration
	text     string
	gen      uint64
	timer    *time.Timer
	onChange func(text string)
}

// New returns a Banner. onChange, if set, is called with the new text after
// every Show and after every clear. It runs on the timer goroutine for
// clears, so it must not call back into the Banner while blocking.
func New(ttl time.Duration, onChange func(text string)) *Banner {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Banner{ttl: ttl, onChange: onChange}
}

// Show replaces the current message and restarts the clear timer.
func (b *Banner) Show(text string) {
	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.gen++
	gen := b.gen
	b.text = text
	b.timer = time.AfterFunc(b.ttl, func() { b.expire(gen) })
	notify := b.onChange
	b.mu.Unlock()

	if notify != nil {
		notify(text)
	}
}

// expire clears the message if it is still the one scheduled as gen. A timer
// that already fired when Stop was called lands here with a stale gen.
func (b *Banner) expire(gen uint64) {
	b.mu.Lock()
	if gen != b.gen {
		b.mu.Unlock()
		return
	}
	b.text = ""
	b.timer = nil
	notify := b.onChange
	b.mu.Unlock()

	if notify != nil {
		notify("")
	}
}

// Text returns the visible message, "" when none.
func (b *Banner) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

// TTL returns the display duration.
func (b *Banner) TTL() time.Duration {
	return b.ttl
}

// Stop cancels the pending clear and keeps the current text.
func (b *Banner) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.gen++
}
