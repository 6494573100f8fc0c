package input

import (
	"github.com/gdamore/tcell/v2"
)

// tcellButtons 需要跟踪的鼠标按键及其 tcell 映射
var tcellButtons = []struct {
	button MouseButton
	mask   tcell.ButtonMask
}{
	{MouseButtonLeft, tcell.ButtonPrimary},
	{MouseButtonMiddle, tcell.ButtonMiddle},
	{MouseButtonRight, tcell.ButtonSecondary},
}

// TcellSource 把终端事件整理成输入批次
//
// tcell 的鼠标事件只报告当前按下的按键，按下和释放由前后两次状态比较得出。
// 没有鼠标的终端可以用空格代替中键点击，用 +/- 代替滚轮。
type TcellSource struct {
	events  []Event
	buttons tcell.ButtonMask
}

// NewTcellSource 创建终端输入来源
func NewTcellSource() *TcellSource {
	return &TcellSource{events: make([]Event, 0, 8)}
}

// Push 记录一个终端事件
// 返回 false 表示事件与房间无关（由调用方处理，例如退出键）
func (s *TcellSource) Push(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		s.pushMouse(ev)
		return true
	case *tcell.EventKey:
		return s.pushKey(ev)
	}
	return false
}

func (s *TcellSource) pushMouse(ev *tcell.EventMouse) {
	mask := ev.Buttons()

	if mask&tcell.WheelUp != 0 {
		s.events = append(s.events, Event{Kind: EventScroll, ScrollY: 1, Unit: ScrollLine})
	}
	if mask&tcell.WheelDown != 0 {
		s.events = append(s.events, Event{Kind: EventScroll, ScrollY: -1, Unit: ScrollLine})
	}

	var current tcell.ButtonMask
	for _, b := range tcellButtons {
		now := mask&b.mask != 0
		was := s.buttons&b.mask != 0
		switch {
		case now && !was:
			s.events = append(s.events, Event{Kind: EventButtonPressed, Button: b.button})
		case !now && was:
			s.events = append(s.events, Event{Kind: EventButtonReleased, Button: b.button})
		}
		if now {
			current |= b.mask
		}
	}
	s.buttons = current
}

func (s *TcellSource) pushKey(ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyRune {
		return false
	}

	switch ev.Rune() {
	case ' ':
		s.events = append(s.events,
			Event{Kind: EventButtonPressed, Button: MouseButtonMiddle},
			Event{Kind: EventButtonReleased, Button: MouseButtonMiddle},
		)
	case '+', '=':
		s.events = append(s.events, Event{Kind: EventScroll, ScrollY: 1, Unit: ScrollLine})
	case '-', '_':
		s.events = append(s.events, Event{Kind: EventScroll, ScrollY: -1, Unit: ScrollLine})
	default:
		return false
	}
	return true
}

// Poll 返回自上次调用以来的全部事件并清空缓冲
func (s *TcellSource) Poll() Frame {
	pressed := make([]MouseButton, 0, 1)
	for _, b := range tcellButtons {
		if s.buttons&b.mask != 0 {
			pressed = append(pressed, b.button)
		}
	}

	frame := NewFrame(s.events, pressed...)
	s.events = s.events[:0]
	return frame
}
