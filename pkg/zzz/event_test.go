package zzz

import "testing"

func TestEventTypeValuesAreStable(t *testing.T) {
	cases := map[EventType]int{
		EventUnknown:        0,
		EventWindowMoved:    1,
		EventWindowResized:  2,
		EventWindowClosed:   3,
		EventButtonPressed:  10,
		EventScrolled:       15,
		EventKeyPressed:     16,
		EventKeyRepeated:    17,
		EventKeyReleased:    18,
		EventCodepointInput: 19,
		EventFileDropped:    22,
		EventScaleChanged:   27,
	}
	for ty, want := range cases {
		if int(ty) != want {
			t.Fatalf("%v: expected value %d, got %d", ty, want, int(ty))
		}
	}
}

func TestEventTypeString(t *testing.T) {
	for ty := EventUnknown; ty <= EventScaleChanged; ty++ {
		if eventTypeNames[ty] == "" {
			t.Fatalf("event type %d has no name", int(ty))
		}
	}
	if got := EventKeyReleased.String(); got != "KeyReleased" {
		t.Fatalf("unexpected name: %q", got)
	}
	if got := EventType(99).String(); got != "EventType(99)" {
		t.Fatalf("unexpected name for out of range type: %q", got)
	}
}

func TestKeyString(t *testing.T) {
	cases := []struct {
		key  Key
		want string
	}{
		{KeyA, "A"},
		{Key7, "7"},
		{KeyF12, "F12"},
		{KeyKP3, "KP3"},
		{KeyRightAlt, "RightAlt"},
		{KeyUnknown, "Unknown"},
		{Key(1000), "Key(1000)"},
	}
	for _, tc := range cases {
		if got := tc.key.String(); got != tc.want {
			t.Errorf("Key(%d).String() = %q, want %q", int(tc.key), got, tc.want)
		}
	}
}

func TestModString(t *testing.T) {
	if got := (ModShift | ModAlt | ModNumLock).String(); got != "Shift|Alt|NumLock" {
		t.Fatalf("unexpected mods: %q", got)
	}
	if got := Mod(0).String(); got != "0" {
		t.Fatalf("unexpected empty mods: %q", got)
	}
	if !(ModShift | ModControl).Has(ModControl) {
		t.Fatal("expected Control bit")
	}
}

func TestIsKey(t *testing.T) {
	for _, ty := range []EventType{EventKeyPressed, EventKeyRepeated, EventKeyReleased} {
		if !ty.IsKey() {
			t.Fatalf("%v should be a key event", ty)
		}
	}
	if EventButtonPressed.IsKey() {
		t.Fatal("button event reported as key event")
	}
}
