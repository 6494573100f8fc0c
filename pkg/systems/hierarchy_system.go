package systems

import (
	"github.com/decker502/lightroom/pkg/components"
	"github.com/decker502/lightroom/pkg/ecs"
)

// HierarchySystem 根据父实体位置更新子实体位置
//
// 子实体位置 = 父实体位置 + 偏移。父实体总是先于子实体创建，
// 按实体ID升序处理即可保证父实体先更新。
// 父实体已被删除或标记删除时，子实体一并删除。
type HierarchySystem struct {
	entityManager *ecs.EntityManager
}

// NewHierarchySystem 创建层级系统
func NewHierarchySystem(em *ecs.EntityManager) *HierarchySystem {
	return &HierarchySystem{entityManager: em}
}

// Update 更新所有子实体的位置
func (s *HierarchySystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.ParentComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}

		parent, _ := ecs.GetComponent[*components.ParentComponent](s.entityManager, id)
		if !s.entityManager.EntityExists(parent.Parent) || s.entityManager.IsMarkedForDestroy(parent.Parent) {
			DestroyRecursive(s.entityManager, id)
			continue
		}

		parentPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, parent.Parent)
		if !ok {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		pos.X = parentPos.X + parent.OffsetX
		pos.Y = parentPos.Y + parent.OffsetY
	}
}

// DestroyRecursive 标记实体及其所有后代待删除
func DestroyRecursive(em *ecs.EntityManager, id ecs.EntityID) {
	visited := make(map[ecs.EntityID]bool)
	destroyRecursive(em, id, visited)
}

func destroyRecursive(em *ecs.EntityManager, id ecs.EntityID, visited map[ecs.EntityID]bool) {
	if visited[id] {
		return
	}
	visited[id] = true

	if children, ok := ecs.GetComponent[*components.ChildrenComponent](em, id); ok {
		for _, child := range children.Children {
			destroyRecursive(em, child, visited)
		}
	}

	if em.EntityExists(id) && !em.IsMarkedForDestroy(id) {
		em.DestroyEntity(id)
	}
}
