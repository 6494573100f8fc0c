package systems

import (
	"math"
	"testing"
	"time"

	"github.com/decker502/lightroom/pkg/components"
	"github.com/decker502/lightroom/pkg/ecs"
	"github.com/decker502/lightroom/pkg/entities"
)

// spawnTestCard 创建一张带粒子发射器的卡片并返回发射器ID
func spawnTestCard(t *testing.T, em *ecs.EntityManager) (cardID, emitterID ecs.EntityID) {
	t.Helper()
	cardID, err := entities.NewAchievementCardEntity(em, testCardStyle(), 1280, 720, 1, "A", time.Now())
	if err != nil {
		t.Fatalf("NewAchievementCardEntity failed: %v", err)
	}
	emitters := ecs.GetEntitiesWith1[*components.EmitterComponent](em)
	if len(emitters) != 1 {
		t.Fatalf("Expected 1 emitter, got %d", len(emitters))
	}
	return cardID, emitters[0]
}

func TestParticleBurst(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewParticleSystem(em)
	_, emitterID := spawnTestCard(t, em)

	system.Update(0)

	emitter, _ := ecs.GetComponent[*components.EmitterComponent](em, emitterID)
	if !emitter.Fired {
		t.Fatal("Emitter should be fired")
	}
	if len(emitter.Particles) != 30 {
		t.Fatalf("Particles: got %d, want 30", len(emitter.Particles))
	}

	// 所有粒子都在半径为卡片高度一半的圆周上
	for _, id := range emitter.Particles {
		parent, _ := ecs.GetComponent[*components.ParentComponent](em, id)
		if parent.Parent != emitterID {
			t.Errorf("Particle %d parent: got %d, want %d", id, parent.Parent, emitterID)
		}
		r := math.Hypot(parent.OffsetX, parent.OffsetY)
		if !almostEqual(r, 50) {
			t.Errorf("Particle %d radius: got %v, want 50", id, r)
		}

		particle, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		if !almostEqual(math.Hypot(particle.VelocityX, particle.VelocityY), 20) {
			t.Errorf("Particle %d speed: got %v, want 20", id, math.Hypot(particle.VelocityX, particle.VelocityY))
		}

		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
		if !ok || lifetime.MaxLifetime != 5 {
			t.Errorf("Particle %d lifetime missing or wrong", id)
		}
	}

	children, _ := ecs.GetComponent[*components.ChildrenComponent](em, emitterID)
	if len(children.Children) != 30 {
		t.Errorf("Emitter children: got %d, want 30", len(children.Children))
	}
}

func TestParticleBurstOnlyOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewParticleSystem(em)
	spawnTestCard(t, em)

	system.Update(0.016)
	system.Update(0.016)

	if got := len(ecs.GetEntitiesWith1[*components.ParticleComponent](em)); got != 30 {
		t.Errorf("Particle count after two updates: got %d, want 30", got)
	}
}

func TestParticleMovesOutward(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewParticleSystem(em)
	_, emitterID := spawnTestCard(t, em)

	system.Update(0)
	system.Update(0.5)

	emitter, _ := ecs.GetComponent[*components.EmitterComponent](em, emitterID)
	parent, _ := ecs.GetComponent[*components.ParentComponent](em, emitter.Particles[0])

	// 第一个粒子沿 +X 方向：50 + 20*0.5
	if !almostEqual(parent.OffsetX, 60) || !almostEqual(parent.OffsetY, 0) {
		t.Errorf("Particle 0 offset: got (%v, %v), want (60, 0)", parent.OffsetX, parent.OffsetY)
	}
}

func TestParticlesDestroyedWithCard(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewParticleSystem(em)
	cardID, _ := spawnTestCard(t, em)

	system.Update(0)
	DestroyRecursive(em, cardID)
	em.RemoveMarkedEntities()

	if em.EntityCount() != 0 {
		t.Errorf("EntityCount after destroying card: got %d, want 0", em.EntityCount())
	}
}

func TestParticleFollowsCard(t *testing.T) {
	em := ecs.NewEntityManager()
	particles := NewParticleSystem(em)
	hierarchy := NewHierarchySystem(em)
	cardID, emitterID := spawnTestCard(t, em)

	particles.Update(0)
	hierarchy.Update(0)

	cardPos, _ := ecs.GetComponent[*components.PositionComponent](em, cardID)
	cardPos.Y -= 100
	hierarchy.Update(0)

	emitter, _ := ecs.GetComponent[*components.EmitterComponent](em, emitterID)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, emitter.Particles[0])

	// 卡片右下角从槽位 -1 的 (1280, 820) 上移 100，中心偏移 (-150, -50)，粒子偏移 (50, 0)
	if !almostEqual(pos.X, 1180) || !almostEqual(pos.Y, 670) {
		t.Errorf("Particle position: got (%v, %v), want (1180, 670)", pos.X, pos.Y)
	}
}
