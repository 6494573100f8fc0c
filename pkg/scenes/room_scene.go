package scenes

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/lightroom/pkg/config"
	"github.com/decker502/lightroom/pkg/entities"
	"github.com/decker502/lightroom/pkg/game"
	"github.com/decker502/lightroom/pkg/input"
	"github.com/decker502/lightroom/pkg/systems"
	"github.com/decker502/lightroom/pkg/utils"
)

// RoomScene 桌面端房间场景
//
// 中键拨动开关，滚轮调光，M 键静音。
// 成就卡片在屏幕右下角堆叠。
type RoomScene struct {
	world    *RoomWorld
	source   input.Source
	render   *systems.RenderSystem
	settings *game.SettingsManager
}

// NewRoomScene 创建房间场景
//
// 参数：
//   - rm: 资源管理器（字体）
//   - audioManager: 成就音效播放，可为 nil
//   - settings: 用户设置（静音开关），可为 nil
//   - cfg: 房间配置
func NewRoomScene(rm *game.ResourceManager, audioManager *game.AudioManager, settings *game.SettingsManager, cfg *config.RoomConfig) (*RoomScene, error) {
	face, err := rm.LoadDefaultFont(cfg.Card.FontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load card font: %w", err)
	}

	return newRoomScene(face, audioManager, settings, cfg, input.NewEbitenSource(), time.Now)
}

// newRoomScene 使用给定的字体、输入来源和时钟创建场景
func newRoomScene(face text.Face, audioManager *game.AudioManager, settings *game.SettingsManager, cfg *config.RoomConfig, source input.Source, now func() time.Time) (*RoomScene, error) {
	cardLifetime := time.Duration(cfg.Card.Lifetime * float64(time.Second))
	wrap := utils.NewWrapCache(cardLifetime, measureWith(face))

	var sound systems.SoundPlayer
	if audioManager != nil {
		sound = audioManager
	}

	width, height := float64(cfg.Window.Width), float64(cfg.Window.Height)
	world, err := NewRoomWorld(WorldOptions{
		Config:   cfg,
		Style:    entities.CardStyleFromConfig(cfg, wrap.Wrap),
		Viewport: func() (float64, float64) { return width, height },
		Sound:    sound,
		Now:      now,
		Wrap:     wrap,
	})
	if err != nil {
		return nil, err
	}

	return &RoomScene{
		world:    world,
		source:   source,
		render:   systems.NewRenderSystem(world.EntityManager(), face),
		settings: settings,
	}, nil
}

// measureWith 返回用字体测量文字宽度的函数
// 没有字体时按字符数估算
func measureWith(face text.Face) utils.MeasureFunc {
	if face == nil {
		return utils.RuneWidth
	}
	return func(s string) float64 {
		return text.Advance(s, face)
	}
}

// Update 更新场景
func (s *RoomScene) Update(deltaTime float64) {
	if s.settings != nil && inpututil.IsKeyJustPressed(ebiten.KeyM) {
		enabled := s.settings.ToggleSound()
		log.Printf("[RoomScene] Sound enabled: %v", enabled)
	}

	s.world.Step(s.source.Poll(), deltaTime)
}

// Draw 绘制场景
func (s *RoomScene) Draw(screen *ebiten.Image) {
	s.render.Draw(screen)
}

// SaveOnExit 退出时保存用户设置
func (s *RoomScene) SaveOnExit() bool {
	if s.settings == nil {
		return true
	}
	if err := s.settings.Save(); err != nil {
		log.Printf("[RoomScene] Failed to save settings: %v", err)
		return false
	}
	return true
}

// World 返回房间世界
func (s *RoomScene) World() *RoomWorld {
	return s.world
}
