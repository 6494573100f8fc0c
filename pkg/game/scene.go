package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 是 SceneManager 驱动的场景
//
// 房间目前只有一个场景，接口保留给后续的菜单或设置页。
type Scene interface {
	// Update 推进一帧，deltaTime 以秒为单位
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
}

// Saveable 由需要在窗口关闭时持久化的场景实现
// 房间场景用它写回声音和全屏设置
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败，程序仍会正常退出
	SaveOnExit() bool
}
