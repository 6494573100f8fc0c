package components

import "github.com/decker502/lightroom/pkg/ecs"

// EmitterComponent 一次性粒子爆发发射器
//
// 粒子在以发射器为圆心、Radius 为半径的圆周上生成，沿半径方向向外飞出。
// 粒子是发射器的子实体，使用相对发射器的局部坐标，因此发射器移动时粒子跟随移动。
type EmitterComponent struct {
	Count      int        // 一次爆发的粒子数量
	Radius     float64    // 生成圆半径（像素）
	Speed      float64    // 沿半径向外的速度（像素/秒）
	Lifetime   float64    // 粒子生命周期（秒）
	Size       float64    // 粒子边长（像素）
	StartColor [4]float64 // 出生时颜色 RGBA（0-1）
	EndColor   [4]float64 // 消亡时颜色 RGBA（0-1）

	Fired     bool           // 是否已经爆发
	Particles []ecs.EntityID // 本发射器生成的粒子
}
