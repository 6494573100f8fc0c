package components

import "image/color"

// WallComponent 墙面瓷砖状态
//
// 瓷砖按行存储，原点在左下角：下标 = y*Width + x。
// 颜色只在分数变化时重新计算。
type WallComponent struct {
	Width   int
	Height  int
	Tiles   []color.RGBA
	IsDigit []bool // 瓷砖是否属于分数数字

	Pattern     []int // 5x5 图案中每格的调色板下标
	Palette     []color.RGBA
	NumberColor color.RGBA
	Score       int // 上次绘制的分数，-1 表示尚未绘制
}

// TileAt 返回瓷砖颜色，越界时返回零值
func (w *WallComponent) TileAt(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= w.Width || y >= w.Height {
		return color.RGBA{}
	}
	return w.Tiles[y*w.Width+x]
}
