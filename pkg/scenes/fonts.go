package scenes

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts 所有场景共用的字体
type Fonts struct {
	Title   *text.GoTextFace // 页面标题
	Heading *text.GoTextFace // 卡片标题
	Body    *text.GoTextFace // 正文、分数
	Small   *text.GoTextFace // 说明文字
	Button  *text.GoTextFace // 操作按钮
}

// LoadFonts 加载内置的 Go 字体
func LoadFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}

	return &Fonts{
		Title:   &text.GoTextFace{Source: bold, Size: 28},
		Heading: &text.GoTextFace{Source: bold, Size: 20},
		Body:    &text.GoTextFace{Source: bold, Size: 16},
		Small:   &text.GoTextFace{Source: regular, Size: 14},
		Button:  &text.GoTextFace{Source: bold, Size: 22},
	}, nil
}
