package systems

import (
	"log"
	"math"

	"github.com/decker502/lightroom/pkg/components"
	"github.com/decker502/lightroom/pkg/ecs"
)

// ParticleSystem 管理成就卡片的粒子爆发
//
// 分两个阶段处理：
//  1. 尚未爆发的发射器一次性生成全部粒子
//  2. 所有粒子按速度移动（局部坐标）
//
// 粒子的寿命由 LifetimeSystem 管理，位置由 HierarchySystem 换算为屏幕坐标。
type ParticleSystem struct {
	entityManager *ecs.EntityManager
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(em *ecs.EntityManager) *ParticleSystem {
	return &ParticleSystem{entityManager: em}
}

// Update 处理发射器和粒子
func (s *ParticleSystem) Update(deltaTime float64) {
	s.updateEmitters()
	s.updateParticles(deltaTime)
}

// updateEmitters 让尚未爆发的发射器生成粒子
func (s *ParticleSystem) updateEmitters() {
	emitters := ecs.GetEntitiesWith2[*components.EmitterComponent, *components.PositionComponent](s.entityManager)

	for _, id := range emitters {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		emitter, _ := ecs.GetComponent[*components.EmitterComponent](s.entityManager, id)
		if emitter.Fired {
			continue
		}
		s.burst(id, emitter)
	}
}

// burst 在圆周上均匀生成粒子，沿半径方向向外飞出
func (s *ParticleSystem) burst(emitterID ecs.EntityID, emitter *components.EmitterComponent) {
	emitterPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, emitterID)
	children, ok := ecs.GetComponent[*components.ChildrenComponent](s.entityManager, emitterID)
	if !ok {
		children = &components.ChildrenComponent{}
		ecs.AddComponent(s.entityManager, emitterID, children)
	}

	for i := 0; i < emitter.Count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(emitter.Count)
		dirX, dirY := math.Cos(angle), math.Sin(angle)
		offsetX, offsetY := dirX*emitter.Radius, dirY*emitter.Radius

		particleID := s.entityManager.CreateEntity()
		ecs.AddComponent(s.entityManager, particleID, &components.PositionComponent{
			X: emitterPos.X + offsetX,
			Y: emitterPos.Y + offsetY,
		})
		ecs.AddComponent(s.entityManager, particleID, &components.ParentComponent{
			Parent:  emitterID,
			OffsetX: offsetX,
			OffsetY: offsetY,
		})
		ecs.AddComponent(s.entityManager, particleID, &components.ParticleComponent{
			VelocityX:  dirX * emitter.Speed,
			VelocityY:  dirY * emitter.Speed,
			Size:       emitter.Size,
			StartColor: emitter.StartColor,
			EndColor:   emitter.EndColor,
		})
		ecs.AddComponent(s.entityManager, particleID, &components.LifetimeComponent{
			MaxLifetime: emitter.Lifetime,
		})

		children.Children = append(children.Children, particleID)
		emitter.Particles = append(emitter.Particles, particleID)
	}

	emitter.Fired = true
	log.Printf("[ParticleSystem] Emitter %d fired %d particles", emitterID, emitter.Count)
}

// updateParticles 按速度移动粒子的局部偏移
func (s *ParticleSystem) updateParticles(deltaTime float64) {
	particles := ecs.GetEntitiesWith2[*components.ParticleComponent, *components.ParentComponent](s.entityManager)

	for _, id := range particles {
		particle, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		parent, _ := ecs.GetComponent[*components.ParentComponent](s.entityManager, id)

		parent.OffsetX += particle.VelocityX * deltaTime
		parent.OffsetY += particle.VelocityY * deltaTime
	}
}
