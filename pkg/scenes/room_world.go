package scenes

import (
	"fmt"
	"log"
	"time"

	"github.com/decker502/lightroom/pkg/config"
	"github.com/decker502/lightroom/pkg/ecs"
	"github.com/decker502/lightroom/pkg/entities"
	"github.com/decker502/lightroom/pkg/game"
	"github.com/decker502/lightroom/pkg/input"
	"github.com/decker502/lightroom/pkg/systems"
	"github.com/decker502/lightroom/pkg/utils"
)

// WorldOptions 创建房间世界所需的参数
type WorldOptions struct {
	Config   *config.RoomConfig
	Style    entities.CardStyle   // 卡片外观（桌面端像素，终端端字符单元格）
	Viewport systems.ViewportFunc // 卡片堆叠所在视口
	Sound    systems.SoundPlayer  // 可为 nil
	Now      func() time.Time     // 为 nil 时使用 time.Now
	Seed     uint64               // 墙面图案种子，0 表示使用配置中的种子
	Wrap     *utils.WrapCache     // 可为 nil，每帧结束时清理过期条目
}

// RoomWorld 房间的实体和系统
//
// 桌面场景和终端前端共用：调用方每帧提供一份输入批次，
// Step 按固定顺序运行所有系统。
type RoomWorld struct {
	entityManager *ecs.EntityManager
	state         *game.RoomState
	input         *input.State
	wrap          *utils.WrapCache

	lightSwitch  *systems.LightSwitchSystem
	temperature  *systems.LightTemperatureSystem
	clock        *systems.ClockSystem
	wall         *systems.WallSystem
	achievements *systems.AchievementSystem
	particles    *systems.ParticleSystem
	hierarchy    *systems.HierarchySystem
	lifetime     *systems.LifetimeSystem
}

// NewRoomWorld 创建房间实体和系统
func NewRoomWorld(opts WorldOptions) (*RoomWorld, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("room config cannot be nil")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	seed := opts.Seed
	if seed == 0 {
		seed = opts.Config.Wall.Seed
	}

	em := ecs.NewEntityManager()
	state := game.NewRoomState(opts.Config.Achievements.Meta, now())
	in := input.NewState()

	if err := entities.NewRoomEntities(em, opts.Config, seed); err != nil {
		return nil, fmt.Errorf("failed to create room entities: %w", err)
	}

	font, err := systems.LoadDigitFont(systems.DefaultDigitFontPath)
	if err != nil {
		return nil, err
	}

	texts := opts.Config.Achievements
	achievements := systems.NewAchievementSystem(em, state.Achievements, opts.Style,
		opts.Config.Card.SlideDuration, opts.Viewport, opts.Sound, opts.Config.Card.Sound)

	w := &RoomWorld{
		entityManager: em,
		state:         state,
		input:         in,
		wrap:          opts.Wrap,
		lightSwitch:   systems.NewLightSwitchSystem(em, state, in, texts),
		temperature:   systems.NewLightTemperatureSystem(em, state.Achievements, in, texts.Colorful),
		clock:         systems.NewClockSystem(em, state.Achievements, state.StartupTime, texts.TimeFlies),
		wall:          systems.NewWallSystem(em, state, font),
		achievements:  achievements,
		particles:     systems.NewParticleSystem(em),
		hierarchy:     systems.NewHierarchySystem(em),
		lifetime:      systems.NewLifetimeSystem(em),
	}
	w.clock.SetClock(now)
	w.achievements.SetClock(now)

	log.Printf("[RoomWorld] Room created (seed=%d, entities=%d)", seed, em.EntityCount())
	return w, nil
}

// Step 运行一帧
//
// 顺序：输入 → 生产者（开关、调光、时钟、墙面）→ 成就动画 → 粒子 → 层级 → 生命周期 → 清理
func (w *RoomWorld) Step(frame input.Frame, deltaTime float64) {
	w.input.Set(frame)

	w.lightSwitch.Update(deltaTime)
	w.temperature.Update(deltaTime)
	w.clock.Update(deltaTime)
	w.wall.Update(deltaTime)

	w.achievements.Update(deltaTime)
	w.particles.Update(deltaTime)
	w.hierarchy.Update(deltaTime)
	w.lifetime.Update(deltaTime)

	w.entityManager.RemoveMarkedEntities()

	if w.wrap != nil {
		w.wrap.Prune()
	}
}

// EntityManager 返回实体管理器（渲染用）
func (w *RoomWorld) EntityManager() *ecs.EntityManager {
	return w.entityManager
}

// State 返回房间状态
func (w *RoomWorld) State() *game.RoomState {
	return w.state
}
