package banner

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recorder struct {
	mu   sync.Mutex
	seen []string
	ch   chan string
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan string, 16)}
}

func (r *recorder) record(text string) {
	r.mu.Lock()
	r.seen = append(r.seen, text)
	r.mu.Unlock()
	r.ch <- text
}

func (r *recorder) waitFor(t *testing.T, want string) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case got := <-r.ch:
			if got == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %q", want)
		}
	}
}

func TestShowClearsAfterTTL(t *testing.T) {
	rec := newRecorder()
	b := New(20*time.Millisecond, rec.record)

	b.Show("Mission completed! +50 XP")
	if got := b.Text(); got != "Mission completed! +50 XP" {
		t.Fatalf("Text()=%q right after Show", got)
	}

	rec.waitFor(t, "")
	if got := b.Text(); got != "" {
		t.Fatalf("Text()=%q after TTL, want empty", got)
	}
}

func TestNewMessageIsNotClearedByOlderTimer(t *testing.T) {
	b := New(200*time.Millisecond, nil)

	b.Show("first")
	time.Sleep(150 * time.Millisecond)
	b.Show("second")

	// The first timer would have fired here.
	time.Sleep(100 * time.Millisecond)
	if got := b.Text(); got != "second" {
		t.Fatalf("Text()=%q, want second to survive the first timer", got)
	}
	b.Stop()
}

func TestStaleExpireIsIgnored(t *testing.T) {
	b := New(time.Hour, nil)
	b.Show("first")
	stale := b.gen
	b.Show("second")

	b.expire(stale)
	if got := b.Text(); got != "second" {
		t.Fatalf("Text()=%q after stale expire, want second", got)
	}
	b.Stop()
}

func TestStopKeepsTextAndCancelsClear(t *testing.T) {
	b := New(10*time.Millisecond, nil)
	b.Show("🎉 Level Up! You're now level 4!")
	b.Stop()

	time.Sleep(30 * time.Millisecond)
	if got := b.Text(); got != "🎉 Level Up! You're now level 4!" {
		t.Fatalf("Text()=%q after Stop, want message kept", got)
	}
}

func TestDefaultTTL(t *testing.T) {
	if got := New(0, nil).TTL(); got != DefaultTTL {
		t.Fatalf("TTL()=%s, want %s", got, DefaultTTL)
	}
}
