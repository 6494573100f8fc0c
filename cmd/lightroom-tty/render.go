package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/lightroom/pkg/components"
	"github.com/decker502/lightroom/pkg/config"
	"github.com/decker502/lightroom/pkg/ecs"
	"github.com/decker502/lightroom/pkg/entities"
	"github.com/decker502/lightroom/pkg/systems"
)

// 终端里的卡片尺寸（字符单元格）
const (
	cardCellsWide = 28
	cardCellsHigh = 3
	cardPadding   = 1
)

// particleRune 粒子字符
const particleRune = '*'

// rgbStyle 把颜色转换为 tcell 背景样式
func rgbStyle(bg color.RGBA) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
}

// rgbColor 把颜色转换为 tcell 颜色
func rgbColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// drawRoom 绘制整个房间
func drawRoom(screen tcell.Screen, em *ecs.EntityManager, score int) {
	screen.Clear()
	w, h := screen.Size()

	light := currentLight(em)
	drawWall(screen, em, w, h, light)
	drawStatus(screen, em, score, light)
	drawCardRects(screen, em)
	drawParticles(screen, em)
	drawCardLabels(screen, em)
}

// currentLight 返回顶灯组件
func currentLight(em *ecs.EntityManager) *components.LightComponent {
	for _, id := range ecs.GetEntitiesWith1[*components.LightComponent](em) {
		light, _ := ecs.GetComponent[*components.LightComponent](em, id)
		return light
	}
	return &components.LightComponent{}
}

// drawWall 每块瓷砖占一个单元格，墙面右对齐以保证分数可见
func drawWall(screen tcell.Screen, em *ecs.EntityManager, w, h int, light *components.LightComponent) {
	for _, id := range ecs.GetEntitiesWith1[*components.WallComponent](em) {
		wall, _ := ecs.GetComponent[*components.WallComponent](em, id)
		if wall.Score < 0 {
			continue
		}

		startX := max(0, wall.Width-w)
		for ty := 0; ty < wall.Height && ty < h; ty++ {
			for tx := startX; tx < wall.Width; tx++ {
				style := rgbStyle(systems.ShadeColor(wall.TileAt(tx, ty), light))
				screen.SetContent(tx-startX, h-1-ty, ' ', nil, style)
			}
		}
	}
}

// drawStatus 在第一行显示开关、调光和时钟状态
func drawStatus(screen tcell.Screen, em *ecs.EntityManager, score int, light *components.LightComponent) {
	state := "OFF"
	if light.IsOn() {
		state = "ON"
	}

	dimmer := 0.0
	for _, id := range ecs.GetEntitiesWith1[*components.ColorTemperatureComponent](em) {
		c, _ := ecs.GetComponent[*components.ColorTemperatureComponent](em, id)
		dimmer = c.Value
	}

	hour, minute := 0.0, 0.0
	for _, id := range ecs.GetEntitiesWith1[*components.ClockHandComponent](em) {
		hand, _ := ecs.GetComponent[*components.ClockHandComponent](em, id)
		if hand.Kind == components.ClockHandHour {
			hour = hand.Angle / (2 * math.Pi) * 12
		} else {
			minute = hand.Angle / (2 * math.Pi) * 60
		}
	}

	status := fmt.Sprintf(" Light %-3s | Switches %d | Dimmer %3.0f%% (%.0fK) | Clock %02.0f:%02.0f | space: toggle, +/-: dim, q: quit ",
		state, score, dimmer*100, systems.DimmerTemperature(dimmer), hour, minute)
	drawText(screen, 0, 0, status, tcell.StyleDefault.Reverse(true))
}

// drawCardRects 绘制成就卡片背景（右下角锚定）
func drawCardRects(screen tcell.Screen, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith2[*components.UIRectComponent, *components.PositionComponent](em) {
		rect, _ := ecs.GetComponent[*components.UIRectComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		right := int(math.Round(pos.X))
		bottom := int(math.Round(pos.Y))
		style := rgbStyle(rect.Color)
		for y := bottom - int(rect.Height); y < bottom; y++ {
			for x := right - int(rect.Width); x < right; x++ {
				screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
}

// drawCardLabels 在卡片背景上绘制文字，覆盖粒子
func drawCardLabels(screen tcell.Screen, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith2[*components.TextLabelComponent, *components.PositionComponent](em) {
		label, _ := ecs.GetComponent[*components.TextLabelComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		blockWidth := 0
		for _, line := range label.Lines {
			blockWidth = max(blockWidth, utf8.RuneCountInString(line))
		}
		x := int(math.Round(pos.X - float64(blockWidth)/2))
		y := int(math.Round(pos.Y - float64(len(label.Lines))/2))

		parentColor := backgroundOf(em, id)
		style := rgbStyle(parentColor).Foreground(rgbColor(label.Color)).Bold(true)
		for i, line := range label.Lines {
			drawText(screen, x, y+i, line, style)
		}
	}
}

// backgroundOf 返回文字所在卡片的背景颜色
func backgroundOf(em *ecs.EntityManager, labelID ecs.EntityID) color.RGBA {
	parent, ok := ecs.GetComponent[*components.ParentComponent](em, labelID)
	if !ok {
		return color.RGBA{}
	}
	rect, ok := ecs.GetComponent[*components.UIRectComponent](em, parent.Parent)
	if !ok {
		return color.RGBA{}
	}
	return rect.Color
}

// drawParticles 在粒子位置绘制字符，颜色随寿命变淡
func drawParticles(screen tcell.Screen, em *ecs.EntityManager) {
	ids := ecs.GetEntitiesWith3[*components.ParticleComponent, *components.LifetimeComponent, *components.PositionComponent](em)
	for _, id := range ids {
		particle, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		c := particle.ColorAt(lifetime.Progress())
		fg := color.RGBA{
			R: uint8(c[0] * c[3] * 255),
			G: uint8(c[1] * c[3] * 255),
			B: uint8(c[2] * c[3] * 255),
			A: 255,
		}

		x, y := int(math.Round(pos.X)), int(math.Round(pos.Y))
		_, _, style, _ := screen.GetContent(x, y)
		screen.SetContent(x, y, particleRune, nil, style.Foreground(rgbColor(fg)))
	}
}

// drawText 从 (x, y) 开始写一行文字
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(strings.TrimRight(s, "\n")) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// minTerminalSize 能完整显示分数的最小终端尺寸
func minTerminalSize() (w, h int) {
	return config.DigitTopRightX + 2, config.DigitTopRightY + 2
}

// terminalCardStyle 以字符单元格为单位的卡片外观
// 颜色和寿命沿用房间配置，粒子更少更快
func terminalCardStyle(cfg *config.RoomConfig, wrap entities.WrapFunc) entities.CardStyle {
	style := entities.CardStyleFromConfig(cfg, wrap)
	style.Width = cardCellsWide
	style.Height = cardCellsHigh
	style.Padding = cardPadding
	style.FontSize = 1
	style.Particles.Count = 12
	style.Particles.Speed = 4
	style.Particles.Lifetime = 1.5
	style.Particles.Size = 1
	return style
}
