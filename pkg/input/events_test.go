package input

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameQueries(t *testing.T) {
	f := NewFrame([]Event{
		{Kind: EventButtonPressed, Button: MouseButtonLeft},
		{Kind: EventScroll, ScrollY: 1, Unit: ScrollLine},
		{Kind: EventButtonReleased, Button: MouseButtonMiddle},
		{Kind: EventScroll, ScrollY: -3, Unit: ScrollPixel},
	}, MouseButtonLeft)

	require.Equal(t, 4, f.Len())
	require.True(t, f.JustPressed(MouseButtonLeft))
	require.False(t, f.JustReleased(MouseButtonLeft))
	require.True(t, f.JustReleased(MouseButtonMiddle))
	require.True(t, f.Pressed(MouseButtonLeft))
	require.False(t, f.Pressed(MouseButtonMiddle))
	require.False(t, f.Pressed(MouseButton(42)))

	scrolls := f.Scrolls()
	require.Len(t, scrolls, 2)
	require.Equal(t, ScrollPixel, scrolls[1].Unit)
	require.Equal(t, -3.0, scrolls[1].ScrollY)
}

func TestFrameIsImmutable(t *testing.T) {
	events := []Event{{Kind: EventButtonReleased, Button: MouseButtonMiddle}}
	f := NewFrame(events)

	events[0].Button = MouseButtonLeft
	require.True(t, f.JustReleased(MouseButtonMiddle))

	out := f.Events()
	out[0].Kind = EventScroll
	require.True(t, f.JustReleased(MouseButtonMiddle))
}

func TestStateReplacesPreviousFrame(t *testing.T) {
	s := NewState()
	require.Equal(t, 0, s.Frame().Len())

	s.Set(NewFrame([]Event{{Kind: EventScroll, ScrollY: 1}}))
	require.Equal(t, 1, s.Frame().Len())

	s.Set(NewFrame(nil))
	require.Equal(t, 0, s.Frame().Len())
}

func TestMouseButtonString(t *testing.T) {
	require.Equal(t, "Middle", MouseButtonMiddle.String())
	require.Equal(t, "Unknown", MouseButton(9).String())
}
