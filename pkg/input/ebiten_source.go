package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenButtons 需要跟踪的鼠标按键及其 ebiten 映射
var ebitenButtons = []struct {
	button MouseButton
	ebiten ebiten.MouseButton
}{
	{MouseButtonLeft, ebiten.MouseButtonLeft},
	{MouseButtonMiddle, ebiten.MouseButtonMiddle},
	{MouseButtonRight, ebiten.MouseButtonRight},
}

// EbitenSource 从 Ebitengine 读取输入
//
// 触摸设备没有中键，因此一次触摸（按下到抬起）被视为中键点击，
// 移动端也能拨动开关。
type EbitenSource struct{}

// NewEbitenSource 创建 Ebitengine 输入来源
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// Poll 收集本帧的输入事件
func (s *EbitenSource) Poll() Frame {
	events := make([]Event, 0, 4)
	pressed := make([]MouseButton, 0, 1)

	for _, b := range ebitenButtons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			events = append(events, Event{Kind: EventButtonPressed, Button: b.button})
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			events = append(events, Event{Kind: EventButtonReleased, Button: b.button})
		}
		if ebiten.IsMouseButtonPressed(b.ebiten) {
			pressed = append(pressed, b.button)
		}
	}

	// 触摸映射为中键
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		events = append(events, Event{Kind: EventButtonPressed, Button: MouseButtonMiddle})
	}
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		events = append(events, Event{Kind: EventButtonReleased, Button: MouseButtonMiddle})
	}
	if len(ebiten.AppendTouchIDs(nil)) > 0 {
		pressed = append(pressed, MouseButtonMiddle)
	}

	// 空格键与终端版一致，也按中键处理
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		events = append(events, Event{Kind: EventButtonPressed, Button: MouseButtonMiddle})
	}
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		events = append(events, Event{Kind: EventButtonReleased, Button: MouseButtonMiddle})
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		pressed = append(pressed, MouseButtonMiddle)
	}

	// Ebitengine 只提供滚动量，不区分单位，统一按行处理
	if _, dy := ebiten.Wheel(); dy != 0 {
		events = append(events, Event{Kind: EventScroll, ScrollY: dy, Unit: ScrollLine})
	}

	return NewFrame(events, pressed...)
}
