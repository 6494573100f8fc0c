package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/lightroom/pkg/components"
	"github.com/decker502/lightroom/pkg/config"
	"github.com/decker502/lightroom/pkg/ecs"
	"github.com/decker502/lightroom/pkg/entities"
	"github.com/decker502/lightroom/pkg/utils"
)

// AmbientLight 关灯时仍然可见的环境光比例
const AmbientLight = 0.15

// LabelLineSpacing 行高相对字号的倍数
const LabelLineSpacing = 1.2

// 房间物件的固有颜色（未受光照）
var (
	backgroundColor   = color.RGBA{0x10, 0x10, 0x14, 0xFF}
	switchPlateColor  = color.RGBA{0xF2, 0xEE, 0xE6, 0xFF}
	switchButtonColor = color.RGBA{0xDD, 0xD8, 0xCE, 0xFF}
	dimmerKnobColor   = color.RGBA{0x55, 0x55, 0x55, 0xFF}
	clockFaceColor    = color.RGBA{0xFA, 0xFA, 0xFA, 0xFF}
	clockHandColor    = color.RGBA{0x20, 0x20, 0x20, 0xFF}
)

// uiKind UI 元素类型
type uiKind int

const (
	uiRect uiKind = iota
	uiLabel
	uiParticle
)

// uiDrawable 待绘制的 UI 元素
type uiDrawable struct {
	id   ecs.EntityID
	kind uiKind
	z    int
}

// RenderSystem 渲染房间和成就卡片
//
// 先绘制受灯光影响的房间（墙面、开关、调光旋钮、时钟），
// 再按 Z 顺序绘制不受灯光影响的 UI（卡片背景、文字、粒子）。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	face          text.Face // 为 nil 时不绘制文字
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, face text.Face) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		face:          face,
	}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	light := s.currentLight()
	screen.Fill(backgroundColor)

	s.drawWall(screen, w, h, light)
	s.drawSwitch(screen, w, h, light)
	s.drawClock(screen, w, h, light)
	s.drawUI(screen)
}

// currentLight 返回顶灯组件，没有顶灯时视为关灯
func (s *RenderSystem) currentLight() *components.LightComponent {
	for _, id := range ecs.GetEntitiesWith1[*components.LightComponent](s.entityManager) {
		light, _ := ecs.GetComponent[*components.LightComponent](s.entityManager, id)
		return light
	}
	return &components.LightComponent{}
}

// ShadeColor 计算物体在当前灯光下的颜色
// 每个通道 = 固有颜色 × (环境光 + 灯光颜色)，开灯时才有灯光贡献
func ShadeColor(c color.RGBA, light *components.LightComponent) color.RGBA {
	lr, lg, lb := 0.0, 0.0, 0.0
	if light != nil && light.IsOn() {
		lr = float64(light.Color.R) / 255
		lg = float64(light.Color.G) / 255
		lb = float64(light.Color.B) / 255
	}

	shade := func(v uint8, l float64) uint8 {
		f := utils.Clamp(AmbientLight+l, 0, 1)
		return uint8(math.Round(float64(v) * f))
	}
	return color.RGBA{
		R: shade(c.R, lr),
		G: shade(c.G, lg),
		B: shade(c.B, lb),
		A: c.A,
	}
}

// drawWall 绘制墙面瓷砖
func (s *RenderSystem) drawWall(screen *ebiten.Image, w, h int, light *components.LightComponent) {
	tilePixels := config.TileSize * config.PixelsPerUnit(h)

	for _, id := range ecs.GetEntitiesWith1[*components.WallComponent](s.entityManager) {
		wall, _ := ecs.GetComponent[*components.WallComponent](s.entityManager, id)
		if wall.Score < 0 {
			continue
		}

		for ty := 0; ty < wall.Height; ty++ {
			for tx := 0; tx < wall.Width; tx++ {
				wx, wy := config.TileWorldPosition(tx, ty)
				sx, sy := config.WorldToScreen(wx, wy, w, h)
				if sx+tilePixels < 0 || sx-tilePixels > float64(w) || sy+tilePixels < 0 || sy-tilePixels > float64(h) {
					continue
				}
				vector.DrawFilledRect(screen,
					float32(sx-tilePixels/2), float32(sy-tilePixels/2),
					float32(tilePixels), float32(tilePixels),
					ShadeColor(wall.TileAt(tx, ty), light), false)
			}
		}
	}
}

// drawSwitch 绘制开关面板、按钮和调光旋钮
func (s *RenderSystem) drawSwitch(screen *ebiten.Image, w, h int, light *components.LightComponent) {
	ppu := config.PixelsPerUnit(h)
	cx, cy := config.WorldToScreen(0, 0, w, h)

	vector.DrawFilledRect(screen,
		float32(cx-config.SwitchPlateHalfWidth*ppu), float32(cy-config.SwitchPlateHalfHeight*ppu),
		float32(2*config.SwitchPlateHalfWidth*ppu), float32(2*config.SwitchPlateHalfHeight*ppu),
		ShadeColor(switchPlateColor, light), true)

	for _, id := range ecs.GetEntitiesWith1[*components.LightSwitchComponent](s.entityManager) {
		sw, _ := ecs.GetComponent[*components.LightSwitchComponent](s.entityManager, id)
		// 按下时按钮陷进墙里，看起来略小
		radius := config.SwitchButtonRadius * (1 + sw.Depth) * ppu
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius), ShadeColor(switchButtonColor, light), true)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ColorTemperatureComponent](s.entityManager) {
		dimmer, _ := ecs.GetComponent[*components.ColorTemperatureComponent](s.entityManager, id)
		kx, ky := config.WorldToScreen(dimmer.KnobOffset[0], dimmer.KnobOffset[1], w, h)
		vector.DrawFilledCircle(screen, float32(kx), float32(ky), float32(config.DimmerKnobRadius*ppu), ShadeColor(dimmerKnobColor, light), true)
	}
}

// drawClock 绘制表盘和指针
func (s *RenderSystem) drawClock(screen *ebiten.Image, w, h int, light *components.LightComponent) {
	ppu := config.PixelsPerUnit(h)
	cx, cy := config.WorldToScreen(config.ClockCenterX, config.ClockCenterY, w, h)

	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(config.ClockRadius*ppu), ShadeColor(clockFaceColor, light), true)

	handColor := ShadeColor(clockHandColor, light)
	for _, id := range ecs.GetEntitiesWith1[*components.ClockHandComponent](s.entityManager) {
		hand, _ := ecs.GetComponent[*components.ClockHandComponent](s.entityManager, id)
		dx, dy := ClockHandTip(hand.Angle, hand.Length*ppu)

		width := float32(0.02 * ppu)
		if hand.Kind == components.ClockHandHour {
			width = float32(0.035 * ppu)
		}
		vector.StrokeLine(screen, float32(cx), float32(cy), float32(cx+dx), float32(cy+dy), width, handColor, true)
	}
}

// ClockHandTip 指针末端相对表盘中心的屏幕偏移（Y 轴向下）
// 角度从 12 点方向顺时针计算
func ClockHandTip(angle, length float64) (dx, dy float64) {
	return math.Sin(angle) * length, -math.Cos(angle) * length
}

// collectUI 收集所有 UI 元素并按 Z 排序
func (s *RenderSystem) collectUI() []uiDrawable {
	items := make([]uiDrawable, 0)

	for _, id := range ecs.GetEntitiesWith2[*components.UIRectComponent, *components.PositionComponent](s.entityManager) {
		rect, _ := ecs.GetComponent[*components.UIRectComponent](s.entityManager, id)
		items = append(items, uiDrawable{id: id, kind: uiRect, z: rect.Z})
	}
	for _, id := range ecs.GetEntitiesWith2[*components.TextLabelComponent, *components.PositionComponent](s.entityManager) {
		label, _ := ecs.GetComponent[*components.TextLabelComponent](s.entityManager, id)
		items = append(items, uiDrawable{id: id, kind: uiLabel, z: label.Z})
	}
	for _, id := range ecs.GetEntitiesWith3[*components.ParticleComponent, *components.LifetimeComponent, *components.PositionComponent](s.entityManager) {
		items = append(items, uiDrawable{id: id, kind: uiParticle, z: entities.ParticleZ})
	}

	// Z 相同时按实体ID（创建顺序）绘制
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].z != items[j].z {
			return items[i].z < items[j].z
		}
		return items[i].id < items[j].id
	})
	return items
}

// drawUI 按 Z 顺序绘制 UI 元素
func (s *RenderSystem) drawUI(screen *ebiten.Image) {
	for _, item := range s.collectUI() {
		switch item.kind {
		case uiRect:
			s.drawRect(screen, item.id)
		case uiLabel:
			s.drawLabel(screen, item.id)
		case uiParticle:
			s.drawParticle(screen, item.id)
		}
	}
}

// drawRect 绘制右下角锚定的矩形
func (s *RenderSystem) drawRect(screen *ebiten.Image, id ecs.EntityID) {
	rect, _ := ecs.GetComponent[*components.UIRectComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

	vector.DrawFilledRect(screen,
		float32(pos.X-rect.Width), float32(pos.Y-rect.Height),
		float32(rect.Width), float32(rect.Height),
		rect.Color, false)
}

// drawLabel 绘制多行文字，文字块以位置为中心
func (s *RenderSystem) drawLabel(screen *ebiten.Image, id ecs.EntityID) {
	if s.face == nil {
		return
	}
	label, _ := ecs.GetComponent[*components.TextLabelComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

	lineHeight := label.FontSize * LabelLineSpacing
	blockWidth := 0.0
	for _, line := range label.Lines {
		blockWidth = math.Max(blockWidth, text.Advance(line, s.face))
	}

	startX := pos.X - blockWidth/2
	startY := pos.Y - float64(len(label.Lines))*lineHeight/2

	for i, line := range label.Lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(startX, startY+float64(i)*lineHeight)
		op.ColorScale.ScaleWithColor(label.Color)
		text.Draw(screen, line, s.face, op)
	}
}

// drawParticle 绘制以位置为中心的方形粒子
func (s *RenderSystem) drawParticle(screen *ebiten.Image, id ecs.EntityID) {
	particle, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

	c := particle.ColorAt(lifetime.Progress())
	clr := color.NRGBA{
		R: uint8(utils.Clamp(c[0], 0, 1) * 255),
		G: uint8(utils.Clamp(c[1], 0, 1) * 255),
		B: uint8(utils.Clamp(c[2], 0, 1) * 255),
		A: uint8(utils.Clamp(c[3], 0, 1) * 255),
	}

	half := particle.Size / 2
	vector.DrawFilledRect(screen, float32(pos.X-half), float32(pos.Y-half), float32(particle.Size), float32(particle.Size), clr, false)
}
