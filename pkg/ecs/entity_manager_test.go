package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testCardComponent struct {
	Index int
}

type testLabelComponent struct {
	Text string
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}

	if em.EntityCount() != 2 {
		t.Errorf("EntityCount should be 2, got %d", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testCardComponent{Index: 3})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testCardComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	if comp.(*testCardComponent).Index != 3 {
		t.Errorf("Component data mismatch, expected 3, got %d", comp.(*testCardComponent).Index)
	}

	// 泛型版本应返回同一个指针
	typed, ok := GetComponent[*testCardComponent](em, id)
	if !ok {
		t.Fatal("Generic GetComponent should find the component")
	}
	if typed != comp {
		t.Error("Generic GetComponent should return the same instance")
	}
}

func TestGetComponentMissing(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if _, ok := GetComponent[*testLabelComponent](em, id); ok {
		t.Error("Missing component should not be found")
	}
	if _, ok := GetComponent[*testLabelComponent](em, EntityID(999)); ok {
		t.Error("Unknown entity should not have components")
	}
}

// 同类型组件再次添加时替换旧实例
func TestAddComponentReplacesSameType(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	first := &testCardComponent{}
	second := &testCardComponent{}
	em.AddComponent(id, first)
	em.AddComponent(id, second)

	got, ok := GetComponent[*testCardComponent](em, id)
	if !ok || got != second {
		t.Error("Second AddComponent should replace the first instance")
	}
	if len(GetEntitiesWith1[*testCardComponent](em)) != 1 {
		t.Error("Replacing a component should not duplicate the entity in queries")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testCardComponent{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.EntityExists(id) {
		t.Error("Entity should still exist before cleanup")
	}
	if !em.IsMarkedForDestroy(id) {
		t.Error("Entity should be marked for destroy")
	}

	// 清理后实体消失
	em.RemoveMarkedEntities()
	if em.EntityExists(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.IsMarkedForDestroy(id) {
		t.Error("Destroy list should be cleared after cleanup")
	}
}

func TestDestroyEntityTwice(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 同一实体重复标记不应出错
	em.DestroyEntity(id)
	em.DestroyEntity(id)
	em.RemoveMarkedEntities()

	if em.EntityCount() != 0 {
		t.Errorf("Expected 0 entities, got %d", em.EntityCount())
	}
}

func TestGetEntitiesWithOrdered(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testCardComponent{Index: i})
		if i%2 == 0 {
			em.AddComponent(id, &testLabelComponent{})
			ids = append(ids, id)
		}
	}

	both := GetEntitiesWith2[*testCardComponent, *testLabelComponent](em)
	if len(both) != len(ids) {
		t.Fatalf("Expected %d entities, got %d", len(ids), len(both))
	}
	for i := range ids {
		if both[i] != ids[i] {
			t.Errorf("Entity %d: expected ID %d, got %d", i, ids[i], both[i])
		}
	}

	all := GetEntitiesWith1[*testCardComponent](em)
	if len(all) != 20 {
		t.Errorf("Expected 20 entities, got %d", len(all))
	}
}

func BenchmarkGetEntitiesWith_Generic(b *testing.B) {
	em := NewEntityManager()
	for i := 0; i < 1000; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testCardComponent{Index: i})
		em.AddComponent(id, &testLabelComponent{})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*testCardComponent, *testLabelComponent](em)
	}
}
