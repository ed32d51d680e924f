package game

import (
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/funclaw/pkg/claw"
)

// FeedbackSampleRate 提示音采样率，与 audio.NewContext 保持一致
const FeedbackSampleRate = 48000

// CueProfile 一种反馈提示的震动和提示音参数
type CueProfile struct {
	Vibration time.Duration // 震动时长
	Magnitude float64       // 震动强度 0.0 ~ 1.0
	Tones     []float64     // 依次播放的音高（Hz）
	ToneLen   time.Duration // 每个音的时长
}

// cueProfiles 各提示的参数
var cueProfiles = map[claw.Cue]CueProfile{
	claw.CueLight:   {Vibration: 10 * time.Millisecond, Magnitude: 0.3, Tones: []float64{880}, ToneLen: 40 * time.Millisecond},
	claw.CueMedium:  {Vibration: 20 * time.Millisecond, Magnitude: 0.6, Tones: []float64{660}, ToneLen: 60 * time.Millisecond},
	claw.CueSuccess: {Vibration: 40 * time.Millisecond, Magnitude: 1.0, Tones: []float64{784, 1046}, ToneLen: 90 * time.Millisecond},
	claw.CueWarning: {Vibration: 80 * time.Millisecond, Magnitude: 0.8, Tones: []float64{330, 220}, ToneLen: 110 * time.Millisecond},
}

// FeedbackManager 反馈管理器（实现 claw.Feedback）
// 职责：
//   - 把提示映射为设备震动（ebiten.Vibrate，仅移动端生效）
//   - 播放合成的短提示音（ebiten/v2/audio）
//   - 读取 SettingsManager 中的开关和音量
//
// 所有操作都是尽力而为：任何一步失败都只返回错误，不影响游戏状态
type FeedbackManager struct {
	settingsManager *SettingsManager
	audioContext    *audio.Context
	players         map[claw.Cue]*audio.Player
	vibrate         func(*ebiten.VibrateOptions)
}

// NewFeedbackManager 创建反馈管理器
//
// 参数：
//   - ctx: 音频上下文，为 nil 时不播放提示音
//   - sm: 设置管理器，为 nil 时使用默认设置
func NewFeedbackManager(ctx *audio.Context, sm *SettingsManager) *FeedbackManager {
	return &FeedbackManager{
		settingsManager: sm,
		audioContext:    ctx,
		players:         make(map[claw.Cue]*audio.Player),
		vibrate:         ebiten.Vibrate,
	}
}

// settings 返回当前设置
func (fm *FeedbackManager) settings() *GameSettings {
	if fm.settingsManager != nil {
		return fm.settingsManager.GetSettings()
	}
	return DefaultSettings()
}

// Fire 发出一个反馈提示
func (fm *FeedbackManager) Fire(cue claw.Cue) error {
	profile, ok := cueProfiles[cue]
	if !ok {
		return fmt.Errorf("unknown feedback cue: %d", cue)
	}

	settings := fm.settings()

	if settings.HapticsEnabled && fm.vibrate != nil {
		fm.vibrate(&ebiten.VibrateOptions{
			Duration:  profile.Vibration,
			Magnitude: profile.Magnitude,
		})
	}

	if !settings.SoundEnabled || fm.audioContext == nil {
		return nil
	}

	player := fm.getPlayer(cue, profile)
	player.SetVolume(settings.SoundVolume)
	if err := player.Rewind(); err != nil {
		return fmt.Errorf("failed to rewind %s cue: %w", cue, err)
	}
	player.Play()
	return nil
}

// getPlayer 获取或创建提示音播放器
func (fm *FeedbackManager) getPlayer(cue claw.Cue, profile CueProfile) *audio.Player {
	if player, exists := fm.players[cue]; exists {
		return player
	}

	pcm := SynthesizeTones(FeedbackSampleRate, profile.Tones, profile.ToneLen)
	player := fm.audioContext.NewPlayerFromBytes(pcm)
	fm.players[cue] = player
	log.Printf("[FeedbackManager] Synthesized %s cue (%d bytes)", cue, len(pcm))
	return player
}

// SynthesizeTones 依次合成若干个正弦音，输出 16 位小端立体声 PCM
// 每个音带线性淡出，避免结尾爆音
func SynthesizeTones(sampleRate int, tones []float64, toneLen time.Duration) []byte {
	samplesPerTone := int(float64(sampleRate) * toneLen.Seconds())
	buf := make([]byte, 0, len(tones)*samplesPerTone*4)

	for _, hz := range tones {
		for i := 0; i < samplesPerTone; i++ {
			envelope := 1.0 - float64(i)/float64(samplesPerTone)
			v := math.Sin(2*math.Pi*hz*float64(i)/float64(sampleRate)) * envelope * 0.5
			s := uint16(int16(v * math.MaxInt16))
			// 左右声道相同
			buf = binary.LittleEndian.AppendUint16(buf, s)
			buf = binary.LittleEndian.AppendUint16(buf, s)
		}
	}
	return buf
}
