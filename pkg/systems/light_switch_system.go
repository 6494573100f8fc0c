package systems

import (
	"log"

	"github.com/decker502/lightroom/pkg/components"
	"github.com/decker502/lightroom/pkg/config"
	"github.com/decker502/lightroom/pkg/ecs"
	"github.com/decker502/lightroom/pkg/game"
	"github.com/decker502/lightroom/pkg/input"
)

// LightSwitchSystem 电灯开关系统
//
// 中键释放时拨动开关：灯在 0 和 LightOnIlluminance 之间切换，分数加一。
// 第一次拨动和达到里程碑次数时各触发一个成就。
// 中键按住期间开关按钮陷进墙里。
type LightSwitchSystem struct {
	entityManager *ecs.EntityManager
	state         *game.RoomState
	input         *input.State
	texts         config.AchievementTexts
}

// NewLightSwitchSystem 创建电灯开关系统
func NewLightSwitchSystem(em *ecs.EntityManager, state *game.RoomState, in *input.State, texts config.AchievementTexts) *LightSwitchSystem {
	return &LightSwitchSystem{
		entityManager: em,
		state:         state,
		input:         in,
		texts:         texts,
	}
}

// Update 处理本帧的开关输入
func (s *LightSwitchSystem) Update(deltaTime float64) {
	frame := s.input.Frame()

	depth := 0.0
	if frame.Pressed(input.MouseButtonMiddle) {
		depth = config.SwitchPressDepth
	}
	for _, id := range ecs.GetEntitiesWith1[*components.LightSwitchComponent](s.entityManager) {
		sw, _ := ecs.GetComponent[*components.LightSwitchComponent](s.entityManager, id)
		sw.Depth = depth
	}

	if !frame.JustReleased(input.MouseButtonMiddle) {
		return
	}

	on := false
	for _, id := range ecs.GetEntitiesWith1[*components.LightComponent](s.entityManager) {
		light, _ := ecs.GetComponent[*components.LightComponent](s.entityManager, id)
		if light.IsOn() {
			light.Illuminance = 0
		} else {
			light.Illuminance = config.LightOnIlluminance
		}
		on = light.IsOn()
	}

	score := s.state.IncrementScore()
	log.Printf("[LightSwitchSystem] Switch toggled: on=%v, score=%d", on, score)

	if score == 1 {
		s.state.Achievements.Enqueue(s.texts.LightsOn)
	}
	if score == s.texts.CookiesThreshold {
		s.state.Achievements.Enqueue(s.texts.Cookies)
	}
}
