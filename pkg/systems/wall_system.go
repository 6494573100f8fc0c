package systems

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/decker502/lightroom/pkg/components"
	"github.com/decker502/lightroom/pkg/config"
	"github.com/decker502/lightroom/pkg/ecs"
	"github.com/decker502/lightroom/pkg/embedded"
	"github.com/decker502/lightroom/pkg/game"
)

// DefaultDigitFontPath 嵌入的数字点阵路径
const DefaultDigitFontPath = "data/digits.txt"

// digitCellCount 单个数字的点阵格数
const digitCellCount = config.DigitSizeX * config.DigitSizeY

// DigitFont 0-9 的 3x5 点阵
// 第 d 个数字第 dy 行（从上往下）第 dx 列的格子下标为 d*15 + dy*3 + dx
type DigitFont []bool

// LoadDigitFont 加载数字点阵
//
// 文件每行 3 个字符，'.' 表示点亮，其余字符表示空白；
// 每个数字 5 行，依次为 0-9。
func LoadDigitFont(path string) (DigitFont, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load digit font: %w", err)
	}

	font := make(DigitFont, 0, 10*digitCellCount)
	for i, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if len(line) > config.DigitSizeX {
			return nil, fmt.Errorf("digit font line %d: expected at most %d columns, got %d", i+1, config.DigitSizeX, len(line))
		}
		// 行尾空格可能被编辑器删除，补齐到 3 列
		line += strings.Repeat(" ", config.DigitSizeX-len(line))
		for _, ch := range line {
			font = append(font, ch == '.')
		}
	}

	if len(font) != 10*digitCellCount {
		return nil, fmt.Errorf("digit font: expected %d cells, got %d", 10*digitCellCount, len(font))
	}
	return font, nil
}

// Lit 数字 d 在 (dx, dy) 处是否点亮
func (f DigitFont) Lit(d, dx, dy int) bool {
	i := d*digitCellCount + dy*config.DigitSizeX + dx
	if d < 0 || d > 9 || i < 0 || i >= len(f) {
		return false
	}
	return f[i]
}

// WallSystem 墙面瓷砖系统
//
// 墙面是按 5x5 图案镜像平铺的瓷砖，右上角用 3x5 点阵显示开关被拨动的次数。
// 只在分数变化时重新计算瓷砖颜色。
type WallSystem struct {
	entityManager *ecs.EntityManager
	state         *game.RoomState
	font          DigitFont
}

// NewWallSystem 创建墙面系统
func NewWallSystem(em *ecs.EntityManager, state *game.RoomState, font DigitFont) *WallSystem {
	return &WallSystem{
		entityManager: em,
		state:         state,
		font:          font,
	}
}

// Update 分数变化时重新绘制墙面
func (s *WallSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.WallComponent](s.entityManager) {
		wall, _ := ecs.GetComponent[*components.WallComponent](s.entityManager, id)
		if wall.Score == s.state.Score {
			continue
		}
		s.paint(wall, s.state.Score)
		log.Printf("[WallSystem] Wall repainted for score %d", s.state.Score)
	}
}

// paint 计算所有瓷砖的颜色
func (s *WallSystem) paint(wall *components.WallComponent, score int) {
	digits := strconv.Itoa(score)

	for y := 0; y < wall.Height; y++ {
		for x := 0; x < wall.Width; x++ {
			i := y*wall.Width + x
			if IsDigitTile(s.font, digits, x, y) {
				wall.Tiles[i] = wall.NumberColor
				wall.IsDigit[i] = true
				continue
			}
			wall.Tiles[i] = wall.Palette[wall.Pattern[PatternIndex(x, y)]]
			wall.IsDigit[i] = false
		}
	}
	wall.Score = score
}

// PatternIndex 瓷砖在 5x5 图案中的下标
// 图案每 8 块瓷砖镜像重复一次
func PatternIndex(tileX, tileY int) int {
	px := abs(tileX%8 - 3)
	py := abs(tileY%8 - 3)
	return px + py*config.WallPatternSize
}

// IsDigitTile 瓷砖是否属于分数数字的点亮部分
//
// 数字从 (DigitTopRightX, DigitTopRightY) 开始向左排列，个位在最右边；
// 每个数字占 3 列，数字之间空 1 列。
func IsDigitTile(font DigitFont, digits string, tileX, tileY int) bool {
	const right = config.DigitTopRightX
	const top = config.DigitTopRightY

	if tileX > right || tileY > top || tileY <= top-config.DigitSizeY {
		return false
	}

	fromRight := right - tileX
	digitIndex := fromRight / (config.DigitSizeX + 1)
	if digitIndex >= len(digits) {
		return false
	}

	column := fromRight % (config.DigitSizeX + 1)
	if column == config.DigitSizeX {
		return false
	}

	d := int(digits[len(digits)-1-digitIndex] - '0')
	dx := config.DigitSizeX - column - 1
	dy := top - tileY
	return font.Lit(d, dx, dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
