package embedded

import (
	"testing"
	"testing/fstest"
)

// newTestFS 构造测试用的数据文件系统
func newTestFS() fstest.MapFS {
	return fstest.MapFS{
		"data/claw.yaml":    &fstest.MapFile{Data: []byte("itemCount: 10\n")},
		"data/catalog.yaml": &fstest.MapFile{Data: []byte("demos: []\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(newTestFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
}

// TestNotInitialized 测试未初始化时各接口返回错误
func TestNotInitialized(t *testing.T) {
	Init(nil)

	if _, err := Open("data/claw.yaml"); err == nil {
		t.Error("Expected error when calling Open() before Init()")
	} else if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}

	if _, err := ReadFile("data/claw.yaml"); err == nil {
		t.Error("Expected error when calling ReadFile() before Init()")
	}

	if Exists("data/claw.yaml") {
		t.Error("Expected Exists() to return false before Init()")
	}

	if _, err := Glob("data/*.yaml"); err == nil {
		t.Error("Expected error when calling Glob() before Init()")
	}
}

// TestReadFile 测试读取文件和路径标准化
func TestReadFile(t *testing.T) {
	Init(newTestFS())
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "plain path", path: "data/claw.yaml", want: "itemCount: 10\n"},
		{name: "dot prefix", path: "./data/claw.yaml", want: "itemCount: 10\n"},
		{name: "unknown prefix", path: "assets/claw.yaml", wantErr: true},
		{name: "missing file", path: "data/missing.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ReadFile(%q) expected error", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%q) error: %v", tt.path, err)
			}
			if string(data) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, data, tt.want)
			}
		})
	}
}

// TestExistsAndGlob 测试 Exists 和 Glob
func TestExistsAndGlob(t *testing.T) {
	Init(newTestFS())
	defer Init(nil)

	if !Exists("data/catalog.yaml") {
		t.Error("Expected data/catalog.yaml to exist")
	}
	if Exists("data/nope.yaml") {
		t.Error("Expected data/nope.yaml to not exist")
	}

	matches, err := Glob("data/*.yaml")
	if err != nil {
		t.Fatalf("Glob error: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Glob matched %d files, want 2", len(matches))
	}
}
