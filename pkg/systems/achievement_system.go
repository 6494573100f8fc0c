package systems

import (
	"log"
	"math"
	"time"

	"github.com/decker502/lightroom/pkg/achievement"
	"github.com/decker502/lightroom/pkg/components"
	"github.com/decker502/lightroom/pkg/ecs"
	"github.com/decker502/lightroom/pkg/entities"
)

// SoundPlayer 播放一次性音效
// 由 game.AudioManager 实现；终端端用响铃实现
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// ViewportFunc 返回当前视口尺寸（卡片坐标单位）
type ViewportFunc func() (width, height float64)

// AchievementSystem 成就卡片堆叠动画系统
//
// 每帧按顺序执行：
//  1. 过期：存活超过寿命的卡片连同子实体一起删除，同时记录最新卡片的年龄
//  2. 滑动：最新卡片出现后的第一秒内，整个堆叠处于负偏移（从屏幕下方滑入）
//  3. 重新定位：槽位 = 滑动偏移 + 已晋升数量 - 卡片序号
//  4. 晋升：没有卡片在滑动时，从队列取出一个请求生成新卡片
//
// 每帧最多晋升一个请求，因此多个成就会一个接一个地滑入。
type AchievementSystem struct {
	entityManager *ecs.EntityManager
	queue         *achievement.Queue
	style         entities.CardStyle
	slideDuration float64 // 最新卡片滑入时间（秒）
	viewport      ViewportFunc
	sound         SoundPlayer // 可为 nil
	soundID       string
	now           func() time.Time
}

// NewAchievementSystem 创建成就卡片动画系统
//
// 参数：
//   - em: 实体管理器
//   - queue: 成就队列
//   - style: 卡片外观
//   - slideDuration: 最新卡片滑入时间（秒）
//   - viewport: 视口尺寸
//   - sound: 晋升时播放音效，可为 nil
//   - soundID: 音效资源ID
func NewAchievementSystem(em *ecs.EntityManager, queue *achievement.Queue, style entities.CardStyle, slideDuration float64, viewport ViewportFunc, sound SoundPlayer, soundID string) *AchievementSystem {
	return &AchievementSystem{
		entityManager: em,
		queue:         queue,
		style:         style,
		slideDuration: slideDuration,
		viewport:      viewport,
		sound:         sound,
		soundID:       soundID,
		now:           time.Now,
	}
}

// SetClock 替换时钟（测试用）
func (s *AchievementSystem) SetClock(now func() time.Time) {
	s.now = now
}

// Update 执行一帧的过期、滑动、定位和晋升
func (s *AchievementSystem) Update(deltaTime float64) {
	now := s.now()
	promoted := s.queue.PromotedCount()

	// 1. 过期
	cards := ecs.GetEntitiesWith2[*components.AchievementCardComponent, *components.PositionComponent](s.entityManager)
	survivors := make([]ecs.EntityID, 0, len(cards))
	newestAge := 0.0
	hasNewest := false

	for _, id := range cards {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		card, _ := ecs.GetComponent[*components.AchievementCardComponent](s.entityManager, id)
		age := now.Sub(card.SpawnTime).Seconds()

		// 即使最新卡片本帧过期，也先记录它的年龄
		if card.Index == promoted {
			newestAge = age
			hasNewest = true
		}

		if age > card.Lifetime {
			DestroyRecursive(s.entityManager, id)
			log.Printf("[AchievementSystem] Card #%d expired: %q", card.Index, card.Text)
			continue
		}
		survivors = append(survivors, id)
	}

	// 2. 滑动
	slide := SlideOffset(newestAge, hasNewest, s.slideDuration)

	// 3. 重新定位
	viewportW, viewportH := s.viewport()
	for _, id := range survivors {
		card, _ := ecs.GetComponent[*components.AchievementCardComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		card.StackSlot = StackSlot(slide, promoted, card.Index)
		pos.X, pos.Y = entities.CardPosition(viewportW, viewportH, s.style.Height, card.StackSlot)
	}

	// 4. 晋升
	if slide < 0 {
		return
	}
	req, index, ok := s.queue.Promote()
	if !ok {
		return
	}

	if _, err := entities.NewAchievementCardEntity(s.entityManager, s.style, viewportW, viewportH, index, req.Text, now); err != nil {
		log.Printf("[AchievementSystem] Failed to spawn card #%d: %v", index, err)
		return
	}
	log.Printf("[AchievementSystem] Achievement #%d unlocked: %q (pending: %d)", index, req.Text, s.queue.Len())

	if s.sound != nil {
		s.sound.PlaySound(s.soundID)
	}
}

// SlideOffset 计算整个堆叠的滑动偏移
// 没有最新卡片时为 0；最新卡片出现后的 duration 秒内从 -1 线性增加到 0
func SlideOffset(newestAge float64, hasNewest bool, duration float64) float64 {
	if !hasNewest || duration <= 0 {
		return 0
	}
	return math.Min(0, (newestAge-duration)/duration)
}

// StackSlot 计算卡片的堆叠槽位
// 最新卡片位于 slide，每个更早的卡片再往上一个槽位
func StackSlot(slide float64, promoted, index int) float64 {
	return slide + float64(promoted-index)
}
