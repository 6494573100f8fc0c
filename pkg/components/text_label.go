package components

import "image/color"

// TextLabelComponent 多行文字标签
//
// Lines 是已经换行好的文字，按左对齐绘制；
// 文字块整体以 PositionComponent 为中心。
type TextLabelComponent struct {
	Text     string
	Lines    []string
	Color    color.RGBA
	FontSize float64
	Z        int
}
