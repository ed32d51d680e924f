//go:build !mobile

package utils

import "testing"

// TestIsMobile_Desktop 测试桌面端编译时 IsMobile() 默认返回 false
func TestIsMobile_Desktop(t *testing.T) {
	t.Setenv("FUNCLAW_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}
}

// TestIsMobile_Emulate 测试环境变量强制启用移动模式
func TestIsMobile_Emulate(t *testing.T) {
	t.Setenv("FUNCLAW_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("IsMobile() should return true when emulating")
	}
}

// TestEnsureStorageDir_Desktop 测试非 Android 平台无需准备存储目录
func TestEnsureStorageDir_Desktop(t *testing.T) {
	if err := EnsureStorageDir(); err != nil {
		t.Errorf("EnsureStorageDir() error: %v", err)
	}
	if got := GetStoragePath(); got != "" {
		t.Errorf("GetStoragePath() = %q, want empty", got)
	}
}
