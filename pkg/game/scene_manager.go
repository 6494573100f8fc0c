package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 持有当前场景，App 的 Update/Draw 都转发给它
type SceneManager struct {
	current Scene
}

// NewSceneManager 创建没有活动场景的管理器，需要调用 SwitchTo 设置初始场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换到新场景，下一帧开始生效
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.current = scene
}

// GetCurrentScene 返回当前场景，可能为 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.current
}

// SaveOnExit 窗口关闭时调用
// 当前场景不需要保存（或没有场景）时返回 true
func (sm *SceneManager) SaveOnExit() bool {
	saveable, ok := sm.current.(Saveable)
	if !ok {
		return true
	}
	return saveable.SaveOnExit()
}

func (sm *SceneManager) Update(deltaTime float64) {
	if sm.current == nil {
		return
	}
	sm.current.Update(deltaTime)
}

func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.current == nil {
		return
	}
	sm.current.Draw(screen)
}
