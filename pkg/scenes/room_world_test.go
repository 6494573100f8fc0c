package scenes

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/decker502/lightroom/pkg/components"
	"github.com/decker502/lightroom/pkg/config"
	"github.com/decker502/lightroom/pkg/ecs"
	"github.com/decker502/lightroom/pkg/entities"
	"github.com/decker502/lightroom/pkg/input"
)

// testClock 可手动推进的时钟
type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time {
	return c.t
}

// recordingSound 记录播放过的音效
type recordingSound struct {
	played []string
}

func (r *recordingSound) PlaySound(id string) bool {
	r.played = append(r.played, id)
	return true
}

func newTestWorld(t *testing.T) (*RoomWorld, *testClock, *recordingSound) {
	t.Helper()
	cfg := config.MustDefaultRoomConfig()
	clock := &testClock{t: time.Date(2023, 10, 14, 20, 15, 0, 0, time.Local)}
	sound := &recordingSound{}

	style := entities.CardStyleFromConfig(cfg, func(text string, maxWidth float64) []string {
		return strings.Fields(text)
	})
	world, err := NewRoomWorld(WorldOptions{
		Config:   cfg,
		Style:    style,
		Viewport: func() (float64, float64) { return 1280, 720 },
		Sound:    sound,
		Now:      clock.Now,
		Seed:     42,
	})
	require.NoError(t, err)
	return world, clock, sound
}

// tick 推进时钟并运行一帧
func tick(world *RoomWorld, clock *testClock, events ...input.Event) {
	clock.t = clock.t.Add(time.Second / 60)
	world.Step(input.NewFrame(events), 1.0/60)
}

func cardTexts(world *RoomWorld) []string {
	em := world.EntityManager()
	texts := make([]string, 0)
	for _, id := range ecs.GetEntitiesWith1[*components.AchievementCardComponent](em) {
		card, _ := ecs.GetComponent[*components.AchievementCardComponent](em, id)
		texts = append(texts, card.Text)
	}
	return texts
}

func TestNewRoomWorldRequiresConfig(t *testing.T) {
	_, err := NewRoomWorld(WorldOptions{})
	require.Error(t, err)
}

func TestRoomWorldLightsOnFlow(t *testing.T) {
	world, clock, sound := newTestWorld(t)

	tick(world, clock,
		input.Event{Kind: input.EventButtonPressed, Button: input.MouseButtonMiddle},
		input.Event{Kind: input.EventButtonReleased, Button: input.MouseButtonMiddle},
	)

	require.Equal(t, 1, world.State().Score)
	require.Equal(t, []string{"Lights on"}, cardTexts(world))
	require.Equal(t, []string{"SOUND_ACHIEVEMENT"}, sound.played)

	// 粒子在同一帧爆发
	particles := ecs.GetEntitiesWith1[*components.ParticleComponent](world.EntityManager())
	require.Len(t, particles, 30)

	// 一秒后元成就出现
	for i := 0; i < 61; i++ {
		tick(world, clock)
	}
	require.ElementsMatch(t, []string{"Lights on", "Got it!"}, cardTexts(world))
}

func TestRoomWorldCardsExpire(t *testing.T) {
	world, clock, _ := newTestWorld(t)
	em := world.EntityManager()
	before := em.EntityCount()

	tick(world, clock,
		input.Event{Kind: input.EventButtonReleased, Button: input.MouseButtonMiddle},
	)
	require.Greater(t, em.EntityCount(), before)

	// 7 秒后两张卡片都已过期，粒子也被清理
	for i := 0; i < 7*60; i++ {
		tick(world, clock)
	}
	require.Empty(t, cardTexts(world))
	require.Equal(t, before, em.EntityCount())
}

func TestRoomWorldDimmerAndClock(t *testing.T) {
	world, clock, _ := newTestWorld(t)

	tick(world, clock, input.Event{Kind: input.EventScroll, ScrollY: 1, Unit: input.ScrollLine})
	require.True(t, world.State().Achievements.DimmerUsed())
	require.Equal(t, []string{"So colorful *_*"}, cardTexts(world))

	// 跨过分钟边界触发"时间飞逝"
	clock.t = clock.t.Add(time.Minute)
	tick(world, clock)
	require.True(t, world.State().Achievements.TimeFliesShown())
}
