package touchgui

import (
	"testing"
	"time"
)

type click struct {
	button MouseButton
	down   bool
}

type clickLog []click

func (l *clickLog) emit(b MouseButton, down bool) {
	*l = append(*l, click{b, down})
}

func shortTap(c *TapClassifier, clock *fakeClock) {
	c.Begin(1, Vec2{800, 300}, clock.now())
	clock.advance(50 * time.Millisecond)
	c.End(1, clock.now())
}

func TestContextControlsShortTapClick(t *testing.T) {
	tests := []struct {
		mode   InteractionMode
		button MouseButton
	}{
		{ShortDigLongPlace, MouseButtonLeft},
		{LongDigShortPlace, MouseButtonRight},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			clock := newFakeClock()
			tap := NewTapClassifier(20, 500*time.Millisecond)
			cc := NewContextControls(50 * time.Millisecond)
			var log clickLog

			shortTap(tap, clock)
			cc.Apply(tap, tt.mode, clock.now(), log.emit)
			if len(log) != 1 || log[0] != (click{tt.button, true}) {
				t.Fatalf("clicks = %v", log)
			}
			if tap.State() != TapNone {
				t.Error("short tap is consumed once the click is scheduled")
			}

			clock.advance(49 * time.Millisecond)
			cc.Apply(tap, tt.mode, clock.now(), log.emit)
			if len(log) != 1 {
				t.Fatalf("still pressed before the click ends, clicks = %v", log)
			}

			clock.advance(time.Millisecond)
			cc.Apply(tap, tt.mode, clock.now(), log.emit)
			if len(log) != 2 || log[1] != (click{tt.button, false}) {
				t.Fatalf("clicks = %v, want release after 50ms", log)
			}
		})
	}
}

func TestContextControlsLongTapHold(t *testing.T) {
	clock := newFakeClock()
	tap := NewTapClassifier(20, 500*time.Millisecond)
	cc := NewContextControls(50 * time.Millisecond)
	var log clickLog

	tap.Begin(1, Vec2{800, 300}, clock.now())
	clock.advance(600 * time.Millisecond)
	tap.Step(clock.now())

	cc.Apply(tap, ShortDigLongPlace, clock.now(), log.emit)
	if len(log) != 1 || log[0] != (click{MouseButtonRight, true}) {
		t.Fatalf("long tap places, clicks = %v", log)
	}
	clock.advance(time.Second)
	cc.Apply(tap, ShortDigLongPlace, clock.now(), log.emit)
	if len(log) != 1 || !cc.PlacePressed() {
		t.Fatal("long tap holds while the pointer is down")
	}

	tap.End(1, clock.now())
	cc.Apply(tap, ShortDigLongPlace, clock.now(), log.emit)
	if len(log) != 2 || log[1] != (click{MouseButtonRight, false}) {
		t.Fatalf("lifting ends the hold, clicks = %v", log)
	}
}

func TestContextControlsModeSwitchAbortsClick(t *testing.T) {
	clock := newFakeClock()
	tap := NewTapClassifier(20, 500*time.Millisecond)
	cc := NewContextControls(50 * time.Millisecond)
	var log clickLog

	shortTap(tap, clock)
	cc.Apply(tap, ShortDigLongPlace, clock.now(), log.emit)
	clock.advance(10 * time.Millisecond)
	cc.Apply(tap, LongDigShortPlace, clock.now(), log.emit)

	want := clickLog{{MouseButtonLeft, true}, {MouseButtonLeft, false}}
	if len(log) != 2 || log[0] != want[0] || log[1] != want[1] {
		t.Fatalf("clicks = %v, want %v", log, want)
	}
	if cc.DigPressed() || cc.PlacePressed() {
		t.Error("nothing stays pressed after a mode switch")
	}
}

func TestContextControlsModeSwitchDuringLongTap(t *testing.T) {
	clock := newFakeClock()
	tap := NewTapClassifier(20, 500*time.Millisecond)
	cc := NewContextControls(50 * time.Millisecond)
	var log clickLog

	tap.Begin(1, Vec2{800, 300}, clock.now())
	clock.advance(600 * time.Millisecond)
	tap.Step(clock.now())
	cc.Apply(tap, ShortDigLongPlace, clock.now(), log.emit)
	cc.Apply(tap, LongDigShortPlace, clock.now(), log.emit)

	if !cc.DigPressed() || cc.PlacePressed() {
		t.Errorf("long tap follows the new mapping, dig %v place %v", cc.DigPressed(), cc.PlacePressed())
	}
}

func TestContextControlsFastSecondTap(t *testing.T) {
	clock := newFakeClock()
	tap := NewTapClassifier(20, 500*time.Millisecond)
	cc := NewContextControls(50 * time.Millisecond)
	var log clickLog

	shortTap(tap, clock)
	cc.Apply(tap, ShortDigLongPlace, clock.now(), log.emit)
	clock.advance(20 * time.Millisecond)
	tap.Begin(2, Vec2{800, 300}, clock.now())
	tap.End(2, clock.now())

	// First click is still down, so it is released and the tap kept.
	cc.Apply(tap, ShortDigLongPlace, clock.now(), log.emit)
	if tap.State() != TapShort {
		t.Fatalf("second tap should stay pending, got %v", tap.State())
	}
	cc.Apply(tap, ShortDigLongPlace, clock.now(), log.emit)

	want := clickLog{{MouseButtonLeft, true}, {MouseButtonLeft, false}, {MouseButtonLeft, true}}
	if len(log) != len(want) {
		t.Fatalf("clicks = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("clicks = %v, want %v", log, want)
		}
	}
}

func TestContextControlsUnknownModePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewContextControls(time.Millisecond).Apply(NewTapClassifier(20, time.Second), InteractionMode(5), time.Now(), nil)
}
