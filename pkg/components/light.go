package components

import "image/color"

// LightComponent 房间顶灯
type LightComponent struct {
	Illuminance float64    // 光照强度（勒克斯），0 表示关灯
	Color       color.RGBA // 由色温换算得到的灯光颜色
}

// IsOn 灯是否打开
func (l *LightComponent) IsOn() bool {
	return l.Illuminance > 0
}

// LightSwitchComponent 墙上的电灯开关
type LightSwitchComponent struct {
	Depth float64 // 按钮深度，按住时为负值（按进墙里）
}

// ColorTemperatureComponent 开关旁的调光旋钮
type ColorTemperatureComponent struct {
	Value      float64    // 调光值 [0, 1]
	KnobAngle  float64    // 旋钮转角（弧度）
	KnobOffset [2]float64 // 旋钮相对开关中心的偏移（世界单位，Y 轴向上）
}
