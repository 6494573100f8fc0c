package entities

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/decker502/lightroom/pkg/components"
	"github.com/decker502/lightroom/pkg/config"
	"github.com/decker502/lightroom/pkg/ecs"
)

// NewWallEntity 创建墙面实体
//
// 图案在创建时由种子决定，之后不再变化；瓷砖颜色由墙面系统在分数变化时计算。
//
// 参数:
//   - em: 实体管理器
//   - palette: 图案颜色，最后一个颜色出现概率较低
//   - numberColor: 分数数字颜色
//   - seed: 图案随机种子
func NewWallEntity(em *ecs.EntityManager, palette []color.RGBA, numberColor color.RGBA, seed uint64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if len(palette) == 0 {
		return 0, fmt.Errorf("wall palette cannot be empty")
	}

	tileCount := config.WallTilesX * config.WallTilesY

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.WallComponent{
		Width:       config.WallTilesX,
		Height:      config.WallTilesY,
		Tiles:       make([]color.RGBA, tileCount),
		IsDigit:     make([]bool, tileCount),
		Pattern:     NewWallPattern(len(palette), seed),
		Palette:     palette,
		NumberColor: numberColor,
		Score:       -1,
	})

	return id, nil
}

// NewWallPattern 生成 5x5 图案，每格为调色板下标
//
// 先在 [0, 2n-1) 中取随机数再对 n 取模，
// 因此最后一个颜色只有其他颜色一半的出现概率。
func NewWallPattern(paletteSize int, seed uint64) []int {
	rng := rand.New(rand.NewPCG(seed, seed))
	size := config.WallPatternSize * config.WallPatternSize
	pattern := make([]int, size)

	for i := range pattern {
		pattern[i] = int(rng.Uint64()%uint64(paletteSize*2-1)) % paletteSize
	}
	return pattern
}

// NewLightEntity 创建顶灯实体（初始为关灯）
func NewLightEntity(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.LightComponent{
		Illuminance: 0,
		Color:       color.RGBA{255, 255, 255, 255},
	})
	return id
}

// NewLightSwitchEntity 创建电灯开关实体（位于世界原点）
func NewLightSwitchEntity(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.LightSwitchComponent{})
	return id
}

// NewDimmerEntity 创建调光旋钮实体
func NewDimmerEntity(em *ecs.EntityManager, initialValue float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.ColorTemperatureComponent{
		Value: initialValue,
	})
	return id
}

// NewClockEntities 创建时钟的时针和分针实体
func NewClockEntities(em *ecs.EntityManager) (hourID, minuteID ecs.EntityID) {
	hourID = em.CreateEntity()
	ecs.AddComponent(em, hourID, &components.ClockHandComponent{
		Kind:   components.ClockHandHour,
		Length: config.ClockHourHandLength,
	})

	minuteID = em.CreateEntity()
	ecs.AddComponent(em, minuteID, &components.ClockHandComponent{
		Kind:   components.ClockHandMinute,
		Length: config.ClockMinuteHandLength,
	})

	return hourID, minuteID
}

// NewRoomEntities 按房间配置创建墙面、灯、开关、调光旋钮和时钟
// seed 为 0 时使用随机种子
func NewRoomEntities(em *ecs.EntityManager, cfg *config.RoomConfig, seed uint64) error {
	if seed == 0 {
		seed = rand.Uint64()
	}

	if _, err := NewWallEntity(em, cfg.WallPalette(), cfg.WallNumberColor(), seed); err != nil {
		return fmt.Errorf("failed to create wall: %w", err)
	}

	NewLightEntity(em)
	NewLightSwitchEntity(em)
	NewDimmerEntity(em, config.DimmerInitialValue)
	NewClockEntities(em)

	return nil
}
