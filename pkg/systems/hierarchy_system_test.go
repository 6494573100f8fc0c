package systems

import (
	"testing"

	"github.com/decker502/lightroom/pkg/components"
	"github.com/decker502/lightroom/pkg/ecs"
)

// createParentChild 创建一个父实体和一个带偏移的子实体
func createParentChild(em *ecs.EntityManager) (parentID, childID ecs.EntityID) {
	parentID = em.CreateEntity()
	em.AddComponent(parentID, &components.PositionComponent{X: 100, Y: 200})

	childID = em.CreateEntity()
	em.AddComponent(childID, &components.PositionComponent{})
	em.AddComponent(childID, &components.ParentComponent{Parent: parentID, OffsetX: -10, OffsetY: 5})

	em.AddComponent(parentID, &components.ChildrenComponent{Children: []ecs.EntityID{childID}})
	return parentID, childID
}

func TestHierarchyFollowsParent(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewHierarchySystem(em)
	parentID, childID := createParentChild(em)

	system.Update(0.016)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, childID)
	if pos.X != 90 || pos.Y != 205 {
		t.Errorf("Child position: got (%v, %v), want (90, 205)", pos.X, pos.Y)
	}

	// 移动父实体
	parentPos, _ := ecs.GetComponent[*components.PositionComponent](em, parentID)
	parentPos.Y = 100
	system.Update(0.016)

	if pos.Y != 105 {
		t.Errorf("Child Y after parent moved: got %v, want 105", pos.Y)
	}
}

func TestHierarchyNestedChildren(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewHierarchySystem(em)
	_, childID := createParentChild(em)

	grandchildID := em.CreateEntity()
	em.AddComponent(grandchildID, &components.PositionComponent{})
	em.AddComponent(grandchildID, &components.ParentComponent{Parent: childID, OffsetX: 1, OffsetY: 1})
	em.AddComponent(childID, &components.ChildrenComponent{Children: []ecs.EntityID{grandchildID}})

	// 按ID升序处理，父实体先于子实体更新，一帧即可传递到孙实体
	system.Update(0.016)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, grandchildID)
	if pos.X != 91 || pos.Y != 206 {
		t.Errorf("Grandchild position: got (%v, %v), want (91, 206)", pos.X, pos.Y)
	}
}

func TestHierarchyOrphanDestroyed(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewHierarchySystem(em)
	parentID, childID := createParentChild(em)

	em.DestroyEntity(parentID)
	em.RemoveMarkedEntities()

	system.Update(0.016)
	if !em.IsMarkedForDestroy(childID) {
		t.Error("Orphaned child should be marked for destroy")
	}
}

func TestDestroyRecursive(t *testing.T) {
	em := ecs.NewEntityManager()
	parentID, childID := createParentChild(em)

	grandchildID := em.CreateEntity()
	em.AddComponent(grandchildID, &components.ParentComponent{Parent: childID})
	em.AddComponent(childID, &components.ChildrenComponent{Children: []ecs.EntityID{grandchildID}})

	unrelatedID := em.CreateEntity()

	DestroyRecursive(em, parentID)
	// 重复调用不会重复标记
	DestroyRecursive(em, parentID)
	em.RemoveMarkedEntities()

	for _, id := range []ecs.EntityID{parentID, childID, grandchildID} {
		if em.EntityExists(id) {
			t.Errorf("Entity %d should be destroyed", id)
		}
	}
	if !em.EntityExists(unrelatedID) {
		t.Error("Unrelated entity should not be destroyed")
	}
}

func TestDestroyRecursiveCycle(t *testing.T) {
	em := ecs.NewEntityManager()
	a := em.CreateEntity()
	b := em.CreateEntity()
	em.AddComponent(a, &components.ChildrenComponent{Children: []ecs.EntityID{b}})
	em.AddComponent(b, &components.ChildrenComponent{Children: []ecs.EntityID{a}})

	DestroyRecursive(em, a)
	em.RemoveMarkedEntities()

	if em.EntityCount() != 0 {
		t.Errorf("EntityCount: got %d, want 0", em.EntityCount())
	}
}
