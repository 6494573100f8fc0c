package entities

import (
	"fmt"
	"image/color"
	"time"

	"github.com/decker502/lightroom/pkg/components"
	"github.com/decker502/lightroom/pkg/config"
	"github.com/decker502/lightroom/pkg/ecs"
)

// 卡片各部分的绘制顺序：背景、粒子、文字
const (
	CardZ     = 100
	ParticleZ = 101
	CardTextZ = 102
)

// WrapFunc 把文字按最大宽度换行
type WrapFunc func(text string, maxWidth float64) []string

// ParticleStyle 卡片粒子爆发的外观
type ParticleStyle struct {
	Count      int
	Speed      float64
	Lifetime   float64
	Size       float64
	StartColor [4]float64
	EndColor   [4]float64
}

// CardStyle 成就卡片的外观
//
// 桌面端以像素为单位，终端端以字符单元格为单位，
// 动画系统只关心 Height（每个堆叠槽位的高度）和 Lifetime。
type CardStyle struct {
	Width     float64
	Height    float64
	Padding   float64 // 文字左右留白
	Color     color.RGBA
	TextColor color.RGBA
	FontSize  float64
	Lifetime  float64 // 卡片存活时间（秒）

	Particles ParticleStyle
	Wrap      WrapFunc // 为 nil 时不换行
}

// CardStyleFromConfig 根据房间配置创建桌面端卡片外观
func CardStyleFromConfig(cfg *config.RoomConfig, wrap WrapFunc) CardStyle {
	return CardStyle{
		Width:     cfg.Card.Width,
		Height:    cfg.Card.Height,
		Padding:   cfg.Card.Padding,
		Color:     cfg.CardColor(),
		TextColor: cfg.CardTextColor(),
		FontSize:  cfg.Card.FontSize,
		Lifetime:  cfg.Card.Lifetime,
		Particles: ParticleStyle{
			Count:      cfg.Particles.Count,
			Speed:      cfg.Particles.Speed,
			Lifetime:   cfg.Particles.Lifetime,
			Size:       cfg.Particles.Size,
			StartColor: cfg.Particles.StartColor,
			EndColor:   cfg.Particles.EndColor,
		},
		Wrap: wrap,
	}
}

// CardPosition 计算卡片右下角的屏幕坐标
// 卡片贴着视口右边缘；槽位 0 贴着底边，槽位越大越靠上
func CardPosition(viewportW, viewportH, cardHeight, slot float64) (x, y float64) {
	return viewportW, viewportH - slot*cardHeight
}

// NewAchievementCardEntity 创建成就卡片实体
//
// 卡片由三个实体组成：
//   - 卡片本体（矩形背景），初始位于槽位 -1，即刚好在屏幕底边下方
//   - 文字标签子实体，位于卡片中心
//   - 粒子发射器子实体，位于卡片中心，下一次粒子系统更新时爆发
//
// 参数:
//   - em: 实体管理器
//   - style: 卡片外观
//   - viewportW, viewportH: 视口尺寸
//   - index: 显示序号
//   - text: 成就文字
//   - now: 生成时刻
//
// 返回:
//   - ecs.EntityID: 卡片本体的实体ID
//   - error: 参数无效时返回错误
func NewAchievementCardEntity(em *ecs.EntityManager, style CardStyle, viewportW, viewportH float64, index int, text string, now time.Time) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if style.Width <= 0 || style.Height <= 0 {
		return 0, fmt.Errorf("invalid card size %.1fx%.1f", style.Width, style.Height)
	}

	const initialSlot = -1.0
	x, y := CardPosition(viewportW, viewportH, style.Height, initialSlot)

	cardID := em.CreateEntity()
	ecs.AddComponent(em, cardID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, cardID, &components.AchievementCardComponent{
		Text:      text,
		Index:     index,
		SpawnTime: now,
		Lifetime:  style.Lifetime,
		StackSlot: initialSlot,
	})
	ecs.AddComponent(em, cardID, &components.UIRectComponent{
		Width:  style.Width,
		Height: style.Height,
		Color:  style.Color,
		Z:      CardZ,
	})

	// 子实体相对卡片右下角的偏移：卡片中心
	centerX := -style.Width / 2
	centerY := -style.Height / 2

	labelID := em.CreateEntity()
	ecs.AddComponent(em, labelID, &components.PositionComponent{X: x + centerX, Y: y + centerY})
	ecs.AddComponent(em, labelID, &components.ParentComponent{Parent: cardID, OffsetX: centerX, OffsetY: centerY})
	ecs.AddComponent(em, labelID, &components.TextLabelComponent{
		Text:     text,
		Lines:    wrapLabel(style, text),
		Color:    style.TextColor,
		FontSize: style.FontSize,
		Z:        CardTextZ,
	})

	children := []ecs.EntityID{labelID}

	if style.Particles.Count > 0 {
		emitterID := em.CreateEntity()
		ecs.AddComponent(em, emitterID, &components.PositionComponent{X: x + centerX, Y: y + centerY})
		ecs.AddComponent(em, emitterID, &components.ParentComponent{Parent: cardID, OffsetX: centerX, OffsetY: centerY})
		ecs.AddComponent(em, emitterID, &components.EmitterComponent{
			Count:      style.Particles.Count,
			Radius:     style.Height / 2,
			Speed:      style.Particles.Speed,
			Lifetime:   style.Particles.Lifetime,
			Size:       style.Particles.Size,
			StartColor: style.Particles.StartColor,
			EndColor:   style.Particles.EndColor,
		})
		ecs.AddComponent(em, emitterID, &components.ChildrenComponent{})
		children = append(children, emitterID)
	}

	ecs.AddComponent(em, cardID, &components.ChildrenComponent{Children: children})

	return cardID, nil
}

// wrapLabel 在卡片宽度减去留白的范围内换行
func wrapLabel(style CardStyle, text string) []string {
	if style.Wrap == nil {
		return []string{text}
	}
	maxWidth := style.Width - 2*style.Padding
	if maxWidth <= 0 {
		maxWidth = style.Width
	}
	return style.Wrap(text, maxWidth)
}
