//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureStorageDir 确保 Android 上设置存储目录存在并可写
// gdata 在 Android 上把数据写到 /data/data/{package}/ 下，但不会预先创建子目录，
// 因此必须在 gdata.Open 之前调用。
//
// 返回：
//   - error: 如果创建目录失败返回错误
func EnsureStorageDir() error {
	if _, err := detectAndroidApp(); err != nil {
		return fmt.Errorf("failed to detect Android app: %w", err)
	}

	dir := filepath.Join(GetStoragePath(), settingsDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("settings directory %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// settingsDirName gdata 在应用目录下使用的子目录
const settingsDirName = "saves"

// detectAndroidApp 从 /proc/self/cmdline 读取应用包名
// cmdline 以 NUL 分隔参数，包名是第一个参数
func detectAndroidApp() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}

	name := strings.TrimSpace(strings.SplitN(string(data), "\x00", 2)[0])
	if name == "" {
		return "", fmt.Errorf("got empty package name from /proc/self/cmdline")
	}
	return name, nil
}

// GetStoragePath 获取 Android 应用数据目录，检测失败时返回空字符串
func GetStoragePath() string {
	app, err := detectAndroidApp()
	if err != nil {
		return ""
	}
	return filepath.Join("/data/data", app)
}
