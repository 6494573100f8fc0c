package game

import (
	"time"

	"github.com/decker502/lightroom/pkg/achievement"
)

// RoomState 存储房间场景的共享状态
//
// 由场景创建并以指针传给各个系统，不使用全局单例：
// 桌面端和终端端各自持有一份，测试也可以随意创建。
type RoomState struct {
	Score        int                // 开关被拨动的次数
	Achievements *achievement.Queue // 成就队列，生产者写入，动画系统消费
	StartupTime  time.Time          // 启动时刻，用于"时间飞逝"成就
}

// NewRoomState 创建房间状态
//
// 参数：
//   - metaText: 第一次晋升时追加的元成就文字
//   - startup: 启动时刻
func NewRoomState(metaText string, startup time.Time) *RoomState {
	return &RoomState{
		Achievements: achievement.NewQueue(metaText),
		StartupTime:  startup,
	}
}

// IncrementScore 分数加一并返回新分数
func (rs *RoomState) IncrementScore() int {
	rs.Score++
	return rs.Score
}
