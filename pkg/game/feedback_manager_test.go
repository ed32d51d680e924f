package game

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/funclaw/pkg/claw"
)

// newSilentFeedbackManager 创建不播放声音、记录震动的反馈管理器
func newSilentFeedbackManager(sm *SettingsManager) (*FeedbackManager, *[]ebiten.VibrateOptions) {
	var vibrations []ebiten.VibrateOptions
	fm := NewFeedbackManager(nil, sm)
	fm.vibrate = func(opts *ebiten.VibrateOptions) {
		vibrations = append(vibrations, *opts)
	}
	return fm, &vibrations
}

func TestFeedbackManagerVibrates(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	fm, vibrations := newSilentFeedbackManager(sm)

	cues := []claw.Cue{claw.CueLight, claw.CueMedium, claw.CueSuccess, claw.CueWarning}
	for _, cue := range cues {
		if err := fm.Fire(cue); err != nil {
			t.Errorf("Fire(%s) error: %v", cue, err)
		}
	}

	if len(*vibrations) != len(cues) {
		t.Fatalf("got %d vibrations, want %d", len(*vibrations), len(cues))
	}
	if (*vibrations)[2].Magnitude != 1.0 {
		t.Errorf("success magnitude = %v, want 1.0", (*vibrations)[2].Magnitude)
	}
	if (*vibrations)[0].Duration >= (*vibrations)[3].Duration {
		t.Error("light cue should be shorter than warning cue")
	}
}

func TestFeedbackManagerHapticsDisabled(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	sm.SetHapticsEnabled(false)
	fm, vibrations := newSilentFeedbackManager(sm)

	if err := fm.Fire(claw.CueSuccess); err != nil {
		t.Errorf("Fire error: %v", err)
	}
	if len(*vibrations) != 0 {
		t.Errorf("vibrated %d times with haptics disabled", len(*vibrations))
	}
}

func TestFeedbackManagerUnknownCue(t *testing.T) {
	fm, vibrations := newSilentFeedbackManager(nil)
	if err := fm.Fire(claw.Cue(99)); err == nil {
		t.Error("expected error for unknown cue")
	}
	if len(*vibrations) != 0 {
		t.Error("unknown cue must not vibrate")
	}
}

func TestFeedbackManagerImplementsFeedback(t *testing.T) {
	var _ claw.Feedback = NewFeedbackManager(nil, nil)
}

func TestSynthesizeTones(t *testing.T) {
	pcm := SynthesizeTones(48000, []float64{440, 880}, 10*time.Millisecond)
	// 2 个音 * 480 采样 * 2 声道 * 2 字节
	if len(pcm) != 2*480*4 {
		t.Errorf("pcm length = %d, want %d", len(pcm), 2*480*4)
	}
	// 第一个采样为 0（sin(0)）
	if pcm[0] != 0 || pcm[1] != 0 {
		t.Errorf("first sample = %v, want silence", pcm[:2])
	}

	if got := SynthesizeTones(48000, nil, 10*time.Millisecond); len(got) != 0 {
		t.Errorf("no tones produced %d bytes", len(got))
	}
}
