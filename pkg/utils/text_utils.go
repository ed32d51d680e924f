// Package utils 提供与平台和文字排版相关的通用工具函数
package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行），空文本返回 nil
//
// 换行规则:
//   - 在空白处断行，连续空白折叠为一个空格
//   - 单个单词超过最大宽度时按字符强制断行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	words := strings.Fields(textStr)
	if len(words) == 0 {
		return nil
	}
	if font == nil || maxWidth <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measureTextWidth(candidate, font) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
		}
		pieces := breakWord(word, font, maxWidth)
		lines = append(lines, pieces[:len(pieces)-1]...)
		current = pieces[len(pieces)-1]
	}

	return append(lines, current)
}

// breakWord 把超宽单词按字符拆成多段，最后一段可能仍有剩余宽度
func breakWord(word string, font *text.GoTextFace, maxWidth float64) []string {
	var pieces []string
	current := ""
	for _, r := range word {
		test := current + string(r)
		if current != "" && measureTextWidth(test, font) > maxWidth {
			pieces = append(pieces, current)
			current = string(r)
			continue
		}
		current = test
	}
	return append(pieces, current)
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	width, _ := text.Measure(textStr, font, 0)
	return width
}
