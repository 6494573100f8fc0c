// Package input 把各平台的输入事件整理成每帧一份的不可变批次
//
// 桌面端（ebiten）和终端端（tcell）各自实现 Source，
// 场景每帧调用一次 Poll，把结果交给 State，各系统只读取 State 中当前帧的批次，
// 批次不会跨帧缓存。
package input

// MouseButton 鼠标按键
type MouseButton int

const (
	// MouseButtonLeft 左键
	MouseButtonLeft MouseButton = iota
	// MouseButtonMiddle 中键（拨动电灯开关）
	MouseButtonMiddle
	// MouseButtonRight 右键
	MouseButtonRight
)

// String 返回按键名称（用于日志）
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonMiddle:
		return "Middle"
	case MouseButtonRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// EventKind 事件类型
type EventKind int

const (
	// EventButtonPressed 按键按下
	EventButtonPressed EventKind = iota
	// EventButtonReleased 按键释放
	EventButtonReleased
	// EventScroll 滚轮滚动
	EventScroll
)

// ScrollUnit 滚动量的单位
type ScrollUnit int

const (
	// ScrollLine 以"行"为单位（普通鼠标滚轮）
	ScrollLine ScrollUnit = iota
	// ScrollPixel 以像素为单位（触控板等高精度设备）
	ScrollPixel
)

// Event 单个输入事件
type Event struct {
	Kind    EventKind
	Button  MouseButton // 仅按键事件有效
	ScrollY float64     // 仅滚动事件有效，正值表示向上
	Unit    ScrollUnit  // 仅滚动事件有效
}

// Frame 一帧的输入批次
// 创建后不可修改
type Frame struct {
	events  []Event
	pressed [3]bool
}

// NewFrame 创建输入批次
//
// 参数：
//   - events: 本帧发生的事件（按发生顺序）
//   - pressed: 本帧结束时仍处于按下状态的按键
func NewFrame(events []Event, pressed ...MouseButton) Frame {
	f := Frame{events: make([]Event, len(events))}
	copy(f.events, events)
	for _, b := range pressed {
		if b >= 0 && int(b) < len(f.pressed) {
			f.pressed[b] = true
		}
	}
	return f
}

// Events 返回本帧事件的副本
func (f Frame) Events() []Event {
	out := make([]Event, len(f.events))
	copy(out, f.events)
	return out
}

// Len 返回本帧事件数量
func (f Frame) Len() int {
	return len(f.events)
}

// Pressed 按键在本帧结束时是否处于按下状态
func (f Frame) Pressed(b MouseButton) bool {
	if b < 0 || int(b) >= len(f.pressed) {
		return false
	}
	return f.pressed[b]
}

// JustReleased 按键是否在本帧被释放
func (f Frame) JustReleased(b MouseButton) bool {
	return f.has(EventButtonReleased, b)
}

// JustPressed 按键是否在本帧被按下
func (f Frame) JustPressed(b MouseButton) bool {
	return f.has(EventButtonPressed, b)
}

// Scrolls 返回本帧所有滚动事件
func (f Frame) Scrolls() []Event {
	out := make([]Event, 0)
	for _, ev := range f.events {
		if ev.Kind == EventScroll {
			out = append(out, ev)
		}
	}
	return out
}

func (f Frame) has(kind EventKind, b MouseButton) bool {
	for _, ev := range f.events {
		if ev.Kind == kind && ev.Button == b {
			return true
		}
	}
	return false
}

// Source 输入来源
// Poll 每帧调用一次，返回自上次调用以来的全部事件
type Source interface {
	Poll() Frame
}

// State 保存当前帧的输入批次，供各系统读取
type State struct {
	current Frame
}

// NewState 创建空的输入状态
func NewState() *State {
	return &State{}
}

// Set 替换当前帧批次（上一帧的事件被丢弃）
func (s *State) Set(f Frame) {
	s.current = f
}

// Frame 返回当前帧批次
func (s *State) Frame() Frame {
	return s.current
}
