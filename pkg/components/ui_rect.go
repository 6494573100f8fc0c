package components

import "image/color"

// UIRectComponent 纯色矩形 UI 元素
//
// 锚点在右下角：PositionComponent 给出矩形右下角的屏幕坐标，
// 矩形向左、向上展开。
type UIRectComponent struct {
	Width  float64
	Height float64
	Color  color.RGBA
	Z      int // 绘制顺序，越大越靠上
}
