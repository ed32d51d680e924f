package tween

import (
	"math"
	"testing"
	"time"
)

const epsilon = 0.01

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestTweenLinear(t *testing.T) {
	completed := 0
	tw := New(0, 100, time.Second, CurveLinear).OnComplete(func() { completed++ })

	if v := tw.Update(0.5); !approxEqual(v, 50) {
		t.Errorf("after 0.5s got %.3f, want 50", v)
	}
	if completed != 0 {
		t.Errorf("completed early")
	}

	if v := tw.Update(0.6); v != 100 {
		t.Errorf("after finish got %.3f, want exactly 100", v)
	}
	if completed != 1 {
		t.Errorf("completion fired %d times, want 1", completed)
	}
	if tw.Running() {
		t.Error("tween should not be running after finish")
	}

	// 结束后继续 Update 不再触发回调
	tw.Update(1)
	if completed != 1 {
		t.Errorf("completion fired %d times after extra update, want 1", completed)
	}
}

func TestTweenEaseInOut(t *testing.T) {
	ease := New(0, 100, time.Second, CurveEaseInOut)
	linear := New(0, 100, time.Second, CurveLinear)

	e := ease.Update(0.25)
	l := linear.Update(0.25)
	if e >= l {
		t.Errorf("easeInOut at 25%% (%.3f) should lag linear (%.3f)", e, l)
	}
	if !approxEqual(e, 12.5) {
		t.Errorf("easeInOut at 25%% = %.3f, want 12.5", e)
	}
}

func TestTweenHalt(t *testing.T) {
	completed := false
	tw := New(10, 110, 2*time.Second, CurveLinear).OnComplete(func() { completed = true })
	tw.Update(0.5)

	v := tw.Halt()
	if !approxEqual(v, 35) {
		t.Errorf("Halt() = %.3f, want 35", v)
	}
	if tw.Running() {
		t.Error("tween still running after Halt")
	}

	if got := tw.Update(5); got != v {
		t.Errorf("halted tween moved to %.3f", got)
	}
	if completed {
		t.Error("Halt must not fire completion")
	}
}

func TestTweenZeroDuration(t *testing.T) {
	completed := false
	tw := New(0, 42, 0, CurveLinear).OnComplete(func() { completed = true })
	if tw.Value() != 0 {
		t.Errorf("initial value %.3f, want 0", tw.Value())
	}
	if v := tw.Update(0); v != 42 || !completed {
		t.Errorf("zero-duration tween: value %.3f completed %v", v, completed)
	}
}

func TestCurveString(t *testing.T) {
	if CurveLinear.String() != "linear" || CurveEaseInOut.String() != "easeInOut" {
		t.Error("unexpected curve names")
	}
}
