package touchgui

import (
	"testing"
	"time"
)

func TestNextTapState(t *testing.T) {
	const long = 500 * time.Millisecond
	tests := []struct {
		name  string
		cur   TapState
		held  time.Duration
		moved bool
		alive bool
		want  TapState
	}{
		{"held briefly", TapNone, 100 * time.Millisecond, false, true, TapNone},
		{"held exactly the duration", TapNone, long, false, true, TapNone},
		{"held past the duration", TapNone, long + time.Millisecond, false, true, TapLong},
		{"held and moved", TapNone, time.Second, true, true, TapNone},
		{"pending short survives new press", TapShort, time.Second, false, true, TapShort},
		{"lifted still", TapNone, 100 * time.Millisecond, false, false, TapShort},
		{"lifted after moving", TapNone, 100 * time.Millisecond, true, false, TapNone},
		{"lifted after long", TapLong, time.Second, false, false, TapNone},
		{"lifted with short pending", TapShort, 100 * time.Millisecond, false, false, TapShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextTapState(tt.cur, tt.held, long, tt.moved, tt.alive)
			if got != tt.want {
				t.Errorf("nextTapState = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTapClassifierShortTap(t *testing.T) {
	clock := newFakeClock()
	c := NewTapClassifier(20, 500*time.Millisecond)

	if !c.Begin(3, Vec2{800, 300}, clock.now()) {
		t.Fatal("first pointer becomes the move pointer")
	}
	clock.advance(100 * time.Millisecond)
	c.Step(clock.now())
	if c.State() != TapNone {
		t.Fatalf("state while held = %v", c.State())
	}
	if !c.End(3, clock.now()) {
		t.Fatal("End of the move pointer should report true")
	}
	if c.State() != TapShort {
		t.Errorf("state = %v, want short", c.State())
	}
	if c.Position() != (Vec2{800, 300}) {
		t.Errorf("position survives release, got %v", c.Position())
	}
	c.Consume()
	if c.State() != TapNone {
		t.Error("Consume resets the state")
	}
}

func TestTapClassifierLongTap(t *testing.T) {
	clock := newFakeClock()
	c := NewTapClassifier(20, 500*time.Millisecond)
	c.Begin(1, Vec2{800, 300}, clock.now())

	clock.advance(600 * time.Millisecond)
	c.Step(clock.now())
	if c.State() != TapLong {
		t.Fatalf("state = %v, want long", c.State())
	}
	c.End(1, clock.now())
	if c.State() != TapNone {
		t.Errorf("releasing a long tap yields none, got %v", c.State())
	}
}

func TestTapClassifierDrag(t *testing.T) {
	clock := newFakeClock()
	c := NewTapClassifier(20, 500*time.Millisecond)
	c.Begin(1, Vec2{800, 300}, clock.now())

	d, ok := c.Move(1, Vec2{810, 300}, 100)
	if !ok || d != (Vec2{10, 0}) {
		t.Fatalf("Move = %v, %v", d, ok)
	}
	if c.Moved() {
		t.Fatal("within threshold is not moved")
	}
	d, _ = c.Move(1, Vec2{830, 300}, 900)
	if d != (Vec2{20, 0}) {
		t.Errorf("delta is relative to the previous position, got %v", d)
	}
	if !c.Moved() {
		t.Fatal("past threshold is moved")
	}
	c.Move(1, Vec2{800, 300}, 0)
	clock.advance(time.Second)
	c.Step(clock.now())
	c.End(1, clock.now())
	if c.State() != TapNone {
		t.Errorf("a drag that returned home is still not a tap, got %v", c.State())
	}
}

func TestTapClassifierSinglePointer(t *testing.T) {
	clock := newFakeClock()
	c := NewTapClassifier(20, 500*time.Millisecond)
	c.Begin(1, Vec2{}, clock.now())

	if c.Begin(2, Vec2{}, clock.now()) {
		t.Error("a second pointer must not replace the move pointer")
	}
	if _, ok := c.Move(2, Vec2{5, 5}, 50); ok {
		t.Error("moves of other pointers are ignored")
	}
	if c.End(2, clock.now()) {
		t.Error("End of another pointer reports false")
	}
	if id, ok := c.Pointer(); !ok || id != 1 {
		t.Errorf("Pointer = %v, %v", id, ok)
	}
}
