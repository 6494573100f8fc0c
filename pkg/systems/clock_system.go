package systems

import (
	"log"
	"math"
	"time"

	"github.com/decker502/lightroom/pkg/achievement"
	"github.com/decker502/lightroom/pkg/components"
	"github.com/decker502/lightroom/pkg/ecs"
)

// ClockSystem 墙上时钟系统
// 指针跟随本地时间；本地时间的分钟与启动时不同时触发一次"时间飞逝"成就
type ClockSystem struct {
	entityManager *ecs.EntityManager
	queue         *achievement.Queue
	startup       time.Time
	timeFliesText string
	now           func() time.Time
}

// NewClockSystem 创建时钟系统
func NewClockSystem(em *ecs.EntityManager, queue *achievement.Queue, startup time.Time, timeFliesText string) *ClockSystem {
	return &ClockSystem{
		entityManager: em,
		queue:         queue,
		startup:       startup,
		timeFliesText: timeFliesText,
		now:           time.Now,
	}
}

// SetClock 替换时钟（测试用）
func (s *ClockSystem) SetClock(now func() time.Time) {
	s.now = now
}

// Update 更新指针角度并检查"时间飞逝"成就
func (s *ClockSystem) Update(deltaTime float64) {
	now := s.now().Local()

	for _, id := range ecs.GetEntitiesWith1[*components.ClockHandComponent](s.entityManager) {
		hand, _ := ecs.GetComponent[*components.ClockHandComponent](s.entityManager, id)
		switch hand.Kind {
		case components.ClockHandHour:
			hand.Angle = HourHandAngle(now.Hour())
		case components.ClockHandMinute:
			hand.Angle = MinuteHandAngle(now.Minute())
		}
	}

	if now.Minute() != s.startup.Local().Minute() && s.queue.MarkTimeFlies() {
		log.Printf("[ClockSystem] Minute changed since startup (%s -> %s)", s.startup.Format("15:04"), now.Format("15:04"))
		s.queue.Enqueue(s.timeFliesText)
	}
}

// MinuteHandAngle 分针角度（从 12 点方向顺时针，弧度）
func MinuteHandAngle(minute int) float64 {
	return float64(minute) * 2 * math.Pi / 60
}

// HourHandAngle 时针角度（从 12 点方向顺时针，弧度）
// 只按整点跳动
func HourHandAngle(hour int) float64 {
	return float64(hour%12) * 2 * math.Pi / 12
}
