package components

// ParticleComponent 单个粒子的运行时状态
//
// 粒子是发射器的子实体，位置保存在 ParentComponent 的偏移中（相对发射器的局部坐标），
// 因此发射器随卡片移动时粒子跟随移动。
// 寿命由 LifetimeComponent 管理，颜色按寿命进度在 StartColor 和 EndColor 之间线性插值。
type ParticleComponent struct {
	VelocityX float64 // 像素/秒
	VelocityY float64
	Size      float64

	StartColor [4]float64
	EndColor   [4]float64
}

// ColorAt 返回寿命进度 t（0-1）时的颜色 RGBA
func (p *ParticleComponent) ColorAt(t float64) [4]float64 {
	var c [4]float64
	for i := range c {
		c[i] = p.StartColor[i] + (p.EndColor[i]-p.StartColor[i])*t
	}
	return c
}
