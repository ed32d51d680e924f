package claw

// Cue 反馈提示类型（震动/音效）
type Cue int

const (
	// CueLight 轻触（重置）
	CueLight Cue = iota
	// CueMedium 中等力度（开始抓取）
	CueMedium
	// CueSuccess 抓到物品
	CueSuccess
	// CueWarning 没抓到
	CueWarning
)

// String 返回提示名称
func (c Cue) String() string {
	switch c {
	case CueLight:
		return "light"
	case CueMedium:
		return "medium"
	case CueSuccess:
		return "success"
	case CueWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Feedback 反馈协作者
// 调用方只关心是否出错，错误只会被记录，不影响游戏状态
type Feedback interface {
	Fire(cue Cue) error
}

// FeedbackFunc 函数适配器
type FeedbackFunc func(cue Cue) error

// Fire 实现 Feedback
func (f FeedbackFunc) Fire(cue Cue) error {
	return f(cue)
}

// NopFeedback 不做任何事的反馈实现（无头运行和测试使用）
type NopFeedback struct{}

// Fire 实现 Feedback
func (NopFeedback) Fire(Cue) error {
	return nil
}
