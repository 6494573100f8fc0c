package components

// ClockHandKind 时钟指针类型
type ClockHandKind int

const (
	// ClockHandHour 时针
	ClockHandHour ClockHandKind = iota
	// ClockHandMinute 分针
	ClockHandMinute
)

// ClockHandComponent 时钟指针
// Angle 为从 12 点方向顺时针转过的弧度
type ClockHandComponent struct {
	Kind   ClockHandKind
	Angle  float64
	Length float64
}
