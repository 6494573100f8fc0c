package components

import "time"

// AchievementCardComponent 屏幕右下角的成就卡片
type AchievementCardComponent struct {
	Text      string    // 成就文字
	Index     int       // 显示序号，等于晋升时队列的已晋升计数
	SpawnTime time.Time // 生成时刻，用于计算存活时间和滑入进度
	Lifetime  float64   // 存活时间（秒）
	StackSlot float64   // 当前堆叠槽位，0 为最底部，-1 表示刚好在屏幕下方
}
