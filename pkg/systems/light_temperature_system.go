package systems

import (
	"image/color"
	"log"
	"math"
	"time"

	"golang.org/x/time/rate"

	"github.com/decker502/lightroom/pkg/achievement"
	"github.com/decker502/lightroom/pkg/components"
	"github.com/decker502/lightroom/pkg/config"
	"github.com/decker502/lightroom/pkg/ecs"
	"github.com/decker502/lightroom/pkg/input"
	"github.com/decker502/lightroom/pkg/utils"
)

// 色温换算的有效范围（开尔文）
const (
	minColorTemperature = 1000.0
	maxColorTemperature = 40000.0
)

// 黑体辐射拟合系数：rgb = a/(T+b) + c
// 以 6500K 为界分为两段
var (
	warmCoefficients = [3][3]float64{
		{0, -2902.1955373783176, -8257.7997278925690},
		{0, 1669.5803561666639, 2575.2827530017594},
		{1, 1.3302673723350029, 1.8993753891711275},
	}
	coolCoefficients = [3][3]float64{
		{1745.0425298314172, 1216.6168361476490, -8257.7997278925690},
		{-2666.3474220535695, -2173.1012343082230, 2575.2827530017594},
		{0.55995389139931482, 0.70381203140554553, 1.8993753891711275},
	}
)

// LightTemperatureSystem 调光旋钮系统
//
// 每个滚轮事件改变调光值，调光值决定旋钮转角和灯光色温。
// 第一次使用旋钮时触发一个成就。
type LightTemperatureSystem struct {
	entityManager *ecs.EntityManager
	queue         *achievement.Queue
	input         *input.State
	colorfulText  string

	// 触控板每帧会产生大量像素滚动事件，日志需要限流
	pixelLogLimiter *rate.Limiter
}

// NewLightTemperatureSystem 创建调光旋钮系统
func NewLightTemperatureSystem(em *ecs.EntityManager, queue *achievement.Queue, in *input.State, colorfulText string) *LightTemperatureSystem {
	return &LightTemperatureSystem{
		entityManager:   em,
		queue:           queue,
		input:           in,
		colorfulText:    colorfulText,
		pixelLogLimiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// Update 处理本帧的滚轮事件并刷新灯光颜色
func (s *LightTemperatureSystem) Update(deltaTime float64) {
	scrolls := s.input.Frame().Scrolls()

	for _, id := range ecs.GetEntitiesWith1[*components.ColorTemperatureComponent](s.entityManager) {
		dimmer, _ := ecs.GetComponent[*components.ColorTemperatureComponent](s.entityManager, id)

		for _, ev := range scrolls {
			if s.queue.MarkDimmerUsed() {
				s.queue.Enqueue(s.colorfulText)
			}
			dimmer.Value += s.scrollAmount(ev) * config.DimmerScrollStep
		}
		dimmer.Value = utils.Clamp(dimmer.Value, 0, 1)

		dimmer.KnobAngle = KnobAngle(dimmer.Value)
		dimmer.KnobOffset = [2]float64{
			config.DimmerOrbitRadius * math.Cos(dimmer.KnobAngle),
			config.DimmerOrbitRadius * math.Sin(dimmer.KnobAngle),
		}

		lightColor := ColorTemperatureToRGBA(DimmerTemperature(dimmer.Value))
		for _, lightID := range ecs.GetEntitiesWith1[*components.LightComponent](s.entityManager) {
			light, _ := ecs.GetComponent[*components.LightComponent](s.entityManager, lightID)
			light.Color = lightColor
		}
	}
}

// scrollAmount 把滚动事件换算为行数
func (s *LightTemperatureSystem) scrollAmount(ev input.Event) float64 {
	if ev.Unit == input.ScrollPixel {
		if s.pixelLogLimiter.Allow() {
			log.Printf("[LightTemperatureSystem] Pixel scroll: %.2f", ev.ScrollY)
		}
		return ev.ScrollY * config.DimmerPixelScrollScale
	}
	return ev.ScrollY
}

// KnobAngle 调光值对应的旋钮转角（弧度）
func KnobAngle(value float64) float64 {
	return 2 * math.Pi * value * config.DimmerMaxTurn
}

// DimmerTemperature 调光值对应的色温（开尔文）
func DimmerTemperature(value float64) float64 {
	return config.ColorTemperatureMin + value*config.ColorTemperatureRange
}

// ColorTemperatureToRGB 把色温换算为线性 RGB（0-1）
//
// 低于 1000K 时向白色平滑过渡；色温先被限制在 [1000, 40000] 内。
func ColorTemperatureToRGB(temperature float64) [3]float64 {
	t := utils.Clamp(temperature, minColorTemperature, maxColorTemperature)

	coefficients := warmCoefficients
	if t > 6500 {
		coefficients = coolCoefficients
	}

	var rgb [3]float64
	blend := utils.Smoothstep(minColorTemperature, 0, t)
	for i := range rgb {
		a := coefficients[0][i]
		b := coefficients[1][i]
		c := coefficients[2][i]
		v := utils.Clamp(a/(t+b)+c, 0, 1)
		rgb[i] = utils.Lerp(v, 1, blend)
	}
	return rgb
}

// ColorTemperatureToRGBA 把色温换算为 8 位颜色
func ColorTemperatureToRGBA(temperature float64) color.RGBA {
	rgb := ColorTemperatureToRGB(temperature)
	return color.RGBA{
		R: uint8(math.Round(rgb[0] * 255)),
		G: uint8(math.Round(rgb[1] * 255)),
		B: uint8(math.Round(rgb[2] * 255)),
		A: 255,
	}
}
