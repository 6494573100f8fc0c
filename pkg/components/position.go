package components

// PositionComponent 存储实体的屏幕坐标（像素，Y 轴向下）
//
// 子实体（卡片文字、粒子发射器）的坐标由层级系统根据父实体和局部偏移计算，
// 不要直接修改。
type PositionComponent struct {
	X float64
	Y float64
}
