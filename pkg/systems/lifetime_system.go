package systems

import (
	"github.com/decker502/lightroom/pkg/components"
	"github.com/decker502/lightroom/pkg/ecs"
)

// LifetimeSystem 累加短命实体（目前是卡片粒子）的存活时间，到期后回收
//
// 卡片本身不走这里，它的寿命由 AchievementSystem 按墙钟时间判断。
type LifetimeSystem struct {
	em *ecs.EntityManager
}

// NewLifetimeSystem 创建生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{em: em}
}

// Update 推进 deltaTime 秒
func (s *LifetimeSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.em) {
		// 父卡片本帧已过期，粒子随之删除，不再计时
		if s.em.IsMarkedForDestroy(id) {
			continue
		}

		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.em, id)
		lifetime.CurrentLifetime += deltaTime
		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
		}
		if lifetime.IsExpired {
			DestroyRecursive(s.em, id)
		}
	}
}
