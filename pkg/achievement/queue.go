// Package achievement 保存成就弹窗的待显示队列和一次性触发标志
//
// Queue 由房间场景创建并显式传给所有生产者系统和 AchievementSystem，
// 不使用包级全局变量。整个游戏循环是单线程的，因此 Queue 不加锁。
package achievement

// DefaultMetaText 第一次晋升成就时自动追加的"元成就"文字
const DefaultMetaText = "Got it!"

// Request 一条待显示的成就
// 创建后不可变，晋升为卡片时被消费且仅消费一次
type Request struct {
	Text string
}

// Queue 成就队列状态
type Queue struct {
	pending  []Request // FIFO，插入顺序即显示顺序
	promoted int       // 已晋升为卡片的成就数量，同时是最新卡片的序号（从1开始）

	metaText string

	// 一次性标志，每个最多被设置一次
	dimmerUsed     bool
	metaShown      bool
	timeFliesShown bool
}

// NewQueue 创建空队列
// metaText 为空时使用 DefaultMetaText
func NewQueue(metaText string) *Queue {
	if metaText == "" {
		metaText = DefaultMetaText
	}
	return &Queue{
		pending:  make([]Request, 0),
		metaText: metaText,
	}
}

// Enqueue 追加一条成就
// 不去重、不限容量、不校验文字（空字符串显示为空行）
func (q *Queue) Enqueue(text string) {
	q.pending = append(q.pending, Request{Text: text})
}

// Len 返回待显示的成就数量
func (q *Queue) Len() int {
	return len(q.pending)
}

// Pending 返回待显示成就的副本
func (q *Queue) Pending() []Request {
	out := make([]Request, len(q.pending))
	copy(out, q.pending)
	return out
}

// PromotedCount 返回已晋升的成就数量
func (q *Queue) PromotedCount() int {
	return q.promoted
}

// Promote 弹出队首成就并增加晋升计数
//
// 第一次晋升时设置 metaShown，并把元成就追加到队尾，
// 因此它会在当前这批成就全部显示后出现。
//
// 返回：
//   - Request: 被晋升的成就
//   - int: 新卡片的序号（即晋升后的 PromotedCount）
//   - bool: 队列为空时返回 false，此时状态不变
func (q *Queue) Promote() (Request, int, bool) {
	if len(q.pending) == 0 {
		return Request{}, q.promoted, false
	}

	req := q.pending[0]
	q.pending[0] = Request{}
	q.pending = q.pending[1:]

	if !q.metaShown {
		q.metaShown = true
		q.pending = append(q.pending, Request{Text: q.metaText})
	}

	q.promoted++
	return req, q.promoted, true
}

// MarkDimmerUsed 标记调光旋钮已被使用
// 只有第一次调用返回 true
func (q *Queue) MarkDimmerUsed() bool {
	if q.dimmerUsed {
		return false
	}
	q.dimmerUsed = true
	return true
}

// MarkTimeFlies 标记"时间飞逝"成就已触发
// 只有第一次调用返回 true
func (q *Queue) MarkTimeFlies() bool {
	if q.timeFliesShown {
		return false
	}
	q.timeFliesShown = true
	return true
}

// DimmerUsed 调光旋钮是否已被使用
func (q *Queue) DimmerUsed() bool {
	return q.dimmerUsed
}

// MetaShown 元成就是否已入队
func (q *Queue) MetaShown() bool {
	return q.metaShown
}

// TimeFliesShown "时间飞逝"成就是否已入队
func (q *Queue) TimeFliesShown() bool {
	return q.timeFliesShown
}
