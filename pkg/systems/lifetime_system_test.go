package systems

import (
	"testing"

	"github.com/decker502/lightroom/pkg/components"
	"github.com/decker502/lightroom/pkg/ecs"
)

func TestLifetimeUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	// 创建测试实体
	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{
		MaxLifetime:     10.0,
		CurrentLifetime: 0,
		IsExpired:       false,
	})

	// 模拟5秒更新
	system.Update(5.0)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if lifetime.CurrentLifetime != 5.0 {
		t.Errorf("Expected CurrentLifetime=5.0, got %f", lifetime.CurrentLifetime)
	}
	if lifetime.IsExpired {
		t.Error("Entity should not be expired yet")
	}
	if em.IsMarkedForDestroy(id) {
		t.Error("Entity should not be marked for destroy")
	}
}

func TestLifetimeExpiration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 10.0})

	// 模拟超过最大生命周期
	system.Update(12.0)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !lifetime.IsExpired {
		t.Error("Entity should be expired")
	}

	em.RemoveMarkedEntities()
	if em.EntityExists(id) {
		t.Error("Expired entity should be removed")
	}
}

func TestLifetimeMultipleEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	shortID := em.CreateEntity()
	em.AddComponent(shortID, &components.LifetimeComponent{MaxLifetime: 1.0})
	longID := em.CreateEntity()
	em.AddComponent(longID, &components.LifetimeComponent{MaxLifetime: 5.0})

	system.Update(2.0)
	em.RemoveMarkedEntities()

	if em.EntityExists(shortID) {
		t.Error("Short-lived entity should be removed")
	}
	if !em.EntityExists(longID) {
		t.Error("Long-lived entity should still exist")
	}
}

// 已被标记删除的实体（卡片过期带走的粒子）不再计时
func TestLifetimeSkipsMarkedEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 10.0})
	em.DestroyEntity(id)

	system.Update(1.0)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if lifetime.CurrentLifetime != 0 {
		t.Errorf("Expected marked entity to keep lifetime 0, got %f", lifetime.CurrentLifetime)
	}
}
