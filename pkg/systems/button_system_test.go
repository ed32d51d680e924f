package systems

import (
	"testing"

	"github.com/decker502/funclaw/pkg/components"
)

func TestIsPointInButton(t *testing.T) {
	b := components.NewButton(10, 20, 100, 50, "", nil)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 60, 45, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"left of button", 9, 45, false},
		{"below button", 60, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isPointInButton(tt.x, tt.y, b); got != tt.want {
				t.Errorf("isPointInButton(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestApplyPointersStates(t *testing.T) {
	tests := []struct {
		name        string
		pointer     Pointer
		wantState   components.UIState
		wantClicked bool
	}{
		{"outside", Pointer{X: 500, Y: 500}, components.UINormal, false},
		{"hover", Pointer{X: 50, Y: 30}, components.UIHovered, false},
		{"pressed", Pointer{X: 50, Y: 30, Pressed: true}, components.UIClicked, false},
		{"released inside", Pointer{X: 50, Y: 30, Released: true}, components.UIHovered, true},
		{"released outside", Pointer{X: 500, Y: 30, Released: true}, components.UINormal, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clicks := 0
			b := components.NewButton(0, 0, 100, 60, "CATCH!", func() { clicks++ })

			got := ApplyPointers([]*components.Button{b}, []Pointer{tt.pointer})

			if b.State != tt.wantState {
				t.Errorf("State = %s, want %s", b.State, tt.wantState)
			}
			if got != tt.wantClicked || (clicks == 1) != tt.wantClicked {
				t.Errorf("clicked = %v (clicks=%d), want %v", got, clicks, tt.wantClicked)
			}
		})
	}
}

func TestApplyPointersDisabled(t *testing.T) {
	clicks := 0
	b := components.NewButton(0, 0, 100, 60, "CATCHING...", func() { clicks++ })
	b.Enabled = false

	ApplyPointers([]*components.Button{b}, []Pointer{{X: 10, Y: 10, Released: true}})

	if clicks != 0 {
		t.Error("disabled button must not fire")
	}
	if b.State != components.UIDisabled {
		t.Errorf("State = %s, want disabled", b.State)
	}
}

func TestApplyPointersFiresOncePerFrame(t *testing.T) {
	clicks := 0
	b := components.NewButton(0, 0, 100, 60, "RESET", func() { clicks++ })

	// 鼠标和触点同一帧在按钮内释放
	pointers := []Pointer{
		{X: 10, Y: 10, Released: true},
		{X: 20, Y: 20, Released: true},
	}
	ApplyPointers([]*components.Button{b}, pointers)

	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestApplyPointersMultipleButtons(t *testing.T) {
	var hit []string
	catch := components.NewButton(0, 0, 100, 60, "CATCH!", func() { hit = append(hit, "catch") })
	reset := components.NewButton(120, 0, 100, 60, "RESET", func() { hit = append(hit, "reset") })

	ApplyPointers([]*components.Button{catch, reset}, []Pointer{{X: 150, Y: 30, Released: true}})

	if len(hit) != 1 || hit[0] != "reset" {
		t.Errorf("hit = %v, want [reset]", hit)
	}
	if catch.State != components.UINormal {
		t.Errorf("catch State = %s, want normal", catch.State)
	}
}
