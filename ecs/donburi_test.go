package ecs

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/touchgui"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiReceiver(t *testing.T) {
	world := donburi.NewWorld()
	recv := NewDonburiReceiver(world)
	if recv == nil {
		t.Fatal("NewDonburiReceiver returned nil")
	}
}

func TestDonburiReceiver_OnEvent(t *testing.T) {
	world := donburi.NewWorld()
	recv := NewDonburiReceiver(world)

	var received []touchgui.Event
	InputEventType.Subscribe(world, func(w donburi.World, e touchgui.Event) {
		received = append(received, e)
	})

	recv.OnEvent(touchgui.Event{Type: touchgui.EventKeyDown, Key: ebiten.KeySpace})
	recv.OnEvent(touchgui.Event{
		Type:   touchgui.EventMouseDown,
		Button: touchgui.MouseButtonRight,
		X:      100,
		Y:      200,
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before ProcessEvents, got %d", len(received))
	}
	InputEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != touchgui.EventKeyDown || e.Key != ebiten.KeySpace {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Button != touchgui.MouseButtonRight || e.X != 100 || e.Y != 200 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiReceiver_FromGUI(t *testing.T) {
	world := donburi.NewWorld()
	keys := map[string]ebiten.Key{"jump": ebiten.KeySpace}
	gui := touchgui.New(touchgui.DefaultConfig(), keyMap(keys), NewDonburiReceiver(world), nil)
	defer gui.Close()

	var got []touchgui.Event
	InputEventType.Subscribe(world, func(w donburi.World, e touchgui.Event) {
		got = append(got, e)
	})

	r, ok := gui.Panel().Rect(touchgui.ButtonJump)
	if !ok {
		t.Fatal("jump button missing")
	}
	x, y := r.X+r.Width/2, r.Y+r.Height/2
	gui.HandleEvent(touchgui.TouchEvent{ID: 1, X: x, Y: y, Phase: touchgui.PhaseDown})
	gui.HandleEvent(touchgui.TouchEvent{ID: 1, X: x, Y: y, Phase: touchgui.PhaseUp})
	events.ProcessAllEvents(world)

	if len(got) != 2 || got[0].Type != touchgui.EventKeyDown || got[1].Type != touchgui.EventKeyUp {
		t.Fatalf("expected key down/up, got %+v", got)
	}
}

func TestDonburiReceiver_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	recv := NewDonburiReceiver(world)

	var count1, count2 int
	InputEventType.Subscribe(world, func(w donburi.World, e touchgui.Event) {
		count1++
	})
	InputEventType.Subscribe(world, func(w donburi.World, e touchgui.Event) {
		count2++
	})

	recv.OnEvent(touchgui.Event{Type: touchgui.EventKeyUp})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

type keyMap map[string]ebiten.Key

func (k keyMap) ResolveKey(action string) (ebiten.Key, bool) {
	key, ok := k[action]
	return key, ok
}
