package config

// 布局配置常量
// 本文件定义了房间场景中墙面、开关、时钟的几何参数
//
// 所有长度使用"世界单位"，渲染时通过 WorldToScreen 换算为屏幕像素；
// 世界原点位于墙面中心，Y 轴向上。

const (
	// WallSizeX 墙面宽度（世界单位）
	WallSizeX = 18.0

	// WallSizeY 墙面高度（世界单位）
	WallSizeY = 5.0

	// TileSize 单块瓷砖边长（世界单位）
	TileSize = 0.2

	// WallTilesX 墙面横向瓷砖数量（包含两端）
	WallTilesX = int(WallSizeX/TileSize) + 1

	// WallTilesY 墙面纵向瓷砖数量（包含两端）
	WallTilesY = int(WallSizeY/TileSize) + 1

	// WallPatternSize 图案重复块的边长（瓷砖数）
	WallPatternSize = 5

	// 分数数字区域：右上角数字的最右列和最上行（瓷砖坐标）
	DigitTopRightX = (WallTilesX-1)/2 + 13
	DigitTopRightY = (WallTilesY-1)/2 + 7

	// 单个数字的点阵尺寸
	DigitSizeX = 3
	DigitSizeY = 5
)

const (
	// ClockRadius 时钟表盘半径（世界单位）
	ClockRadius = 0.4

	// ClockMinuteHandLength 分针长度
	ClockMinuteHandLength = ClockRadius * 0.9

	// ClockHourHandLength 时针长度
	ClockHourHandLength = ClockRadius * 0.5

	// ClockCenterX, ClockCenterY 表盘中心（世界单位）
	ClockCenterX = -1.6
	ClockCenterY = 0.9
)

const (
	// SwitchPlateHalfWidth, SwitchPlateHalfHeight 开关面板半尺寸（世界单位）
	SwitchPlateHalfWidth  = 0.2
	SwitchPlateHalfHeight = 0.3

	// SwitchButtonRadius 开关按钮半径
	SwitchButtonRadius = 0.15

	// SwitchPressDepth 按下开关时的深度（负值表示按进墙里）
	SwitchPressDepth = -0.05

	// DimmerKnobRadius 调光旋钮半径
	DimmerKnobRadius = 0.03

	// DimmerOrbitRadius 调光旋钮围绕开关中心旋转的半径
	DimmerOrbitRadius = 0.1

	// DimmerMaxTurn 调光旋钮最大转角占整圈的比例
	DimmerMaxTurn = 0.8
)

const (
	// LightOnIlluminance 开灯时的光照强度（勒克斯）
	LightOnIlluminance = 10000.0

	// ColorTemperatureMin 调光最暖色温（开尔文）
	ColorTemperatureMin = 3000.0

	// ColorTemperatureRange 调光色温范围（开尔文）
	ColorTemperatureRange = 4000.0

	// DimmerInitialValue 调光旋钮初始值（0-1）
	DimmerInitialValue = 0.5

	// DimmerScrollStep 每个滚轮刻度改变的调光值
	DimmerScrollStep = 0.05

	// DimmerPixelScrollScale 像素单位滚动相对行单位的缩放
	DimmerPixelScrollScale = 10.0
)

const (
	// ViewHeight 屏幕纵向可见的世界范围（世界单位）
	ViewHeight = 3.3

	// ViewCenterX, ViewCenterY 屏幕中心对应的世界坐标
	ViewCenterX = 0.0
	ViewCenterY = 0.3
)

// PixelsPerUnit 计算给定屏幕高度下每个世界单位对应的像素数
func PixelsPerUnit(screenHeight int) float64 {
	return float64(screenHeight) / ViewHeight
}

// WorldToScreen 把世界坐标（Y 轴向上）换算为屏幕坐标（Y 轴向下）
func WorldToScreen(x, y float64, screenWidth, screenHeight int) (sx, sy float64) {
	ppu := PixelsPerUnit(screenHeight)
	sx = float64(screenWidth)/2 + (x-ViewCenterX)*ppu
	sy = float64(screenHeight)/2 - (y-ViewCenterY)*ppu
	return sx, sy
}

// TileWorldPosition 返回瓷砖中心的世界坐标
// 瓷砖坐标原点在墙面左下角
func TileWorldPosition(tileX, tileY int) (x, y float64) {
	return float64(tileX)*TileSize - WallSizeX/2, float64(tileY)*TileSize - WallSizeY/2
}
