package systems

import (
	"image/color"
	"strings"
	"time"

	"github.com/decker502/lightroom/pkg/entities"
	"github.com/decker502/lightroom/pkg/input"
)

// fakeClock 可手动推进的时钟
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2023, 10, 14, 12, 0, 0, 0, time.Local)}
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(seconds float64) {
	c.t = c.t.Add(time.Duration(seconds * float64(time.Second)))
}

// fakeSoundPlayer 记录播放过的音效
type fakeSoundPlayer struct {
	played []string
}

func (p *fakeSoundPlayer) PlaySound(soundID string) bool {
	p.played = append(p.played, soundID)
	return true
}

// testViewport 测试用视口尺寸
func testViewport() (float64, float64) {
	return 1280, 720
}

// testCardStyle 测试用卡片外观
func testCardStyle() entities.CardStyle {
	return entities.CardStyle{
		Width:     300,
		Height:    100,
		Padding:   10,
		Color:     color.RGBA{0x23, 0x2D, 0x3F, 0xFF},
		TextColor: color.RGBA{0xFF, 0xF0, 0xCE, 0xFF},
		FontSize:  20,
		Lifetime:  5,
		Particles: entities.ParticleStyle{
			Count:      30,
			Speed:      20,
			Lifetime:   5,
			Size:       10,
			StartColor: [4]float64{1, 0.9, 1, 1},
			EndColor:   [4]float64{0.5, 0.5, 1, 0},
		},
		Wrap: func(text string, maxWidth float64) []string {
			return strings.Fields(text)
		},
	}
}

// inputWith 创建包含给定事件的输入状态
func inputWith(events []input.Event, pressed ...input.MouseButton) *input.State {
	state := input.NewState()
	state.Set(input.NewFrame(events, pressed...))
	return state
}

// middleClick 中键按下并释放
func middleClick() []input.Event {
	return []input.Event{
		{Kind: input.EventButtonPressed, Button: input.MouseButtonMiddle},
		{Kind: input.EventButtonReleased, Button: input.MouseButtonMiddle},
	}
}
