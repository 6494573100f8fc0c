package components

import "github.com/decker502/lightroom/pkg/ecs"

// ParentComponent 指向父实体
// 子实体的位置 = 父实体位置 + (OffsetX, OffsetY)
type ParentComponent struct {
	Parent  ecs.EntityID
	OffsetX float64
	OffsetY float64
}

// ChildrenComponent 记录实体的直接子实体
// 销毁父实体时会递归销毁所有子实体
type ChildrenComponent struct {
	Children []ecs.EntityID
}
