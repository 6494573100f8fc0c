package config

import (
	"fmt"
	"image/color"

	"github.com/decker502/lightroom/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultRoomConfigPath 嵌入的默认房间配置路径
const DefaultRoomConfigPath = "data/room.yaml"

// WindowConfig 窗口配置
type WindowConfig struct {
	Title  string `yaml:"title"`  // 窗口标题
	Width  int    `yaml:"width"`  // 逻辑屏幕宽度（像素）
	Height int    `yaml:"height"` // 逻辑屏幕高度（像素）
}

// AchievementTexts 成就文字配置
// 文字属于内容而非协议，可以随意修改
type AchievementTexts struct {
	LightsOn         string `yaml:"lightsOn"`         // 第一次拨动开关
	Cookies          string `yaml:"cookies"`          // 拨动次数达到 CookiesThreshold
	CookiesThreshold int    `yaml:"cookiesThreshold"` // 里程碑次数
	Colorful         string `yaml:"colorful"`         // 第一次使用调光旋钮
	TimeFlies        string `yaml:"timeFlies"`        // 启动后本地时间的分钟发生变化
	Meta             string `yaml:"meta"`             // 第一次晋升时自动追加的元成就
}

// CardConfig 成就卡片配置
type CardConfig struct {
	Width         float64 `yaml:"width"`         // 卡片宽度（像素）
	Height        float64 `yaml:"height"`        // 卡片高度（像素），也是堆叠时每个槽位的高度
	Padding       float64 `yaml:"padding"`       // 文字左右留白（像素）
	Lifetime      float64 `yaml:"lifetime"`      // 卡片存活时间（秒），超过后销毁
	SlideDuration float64 `yaml:"slideDuration"` // 最新卡片滑入所需时间（秒）
	Color         string  `yaml:"color"`         // 背景颜色（#RRGGBB）
	TextColor     string  `yaml:"textColor"`     // 文字颜色（#RRGGBB）
	FontSize      float64 `yaml:"fontSize"`      // 字号（像素）
	Sound         string  `yaml:"sound"`         // 晋升时播放的音效资源ID
}

// ParticleConfig 成就卡片粒子爆发配置
type ParticleConfig struct {
	Count      int        `yaml:"count"`      // 一次爆发的粒子数量
	Speed      float64    `yaml:"speed"`      // 沿半径向外的速度（像素/秒）
	Lifetime   float64    `yaml:"lifetime"`   // 粒子生命周期（秒）
	Size       float64    `yaml:"size"`       // 粒子边长（像素）
	StartColor [4]float64 `yaml:"startColor"` // 出生时颜色 RGBA（0-1）
	EndColor   [4]float64 `yaml:"endColor"`   // 消亡时颜色 RGBA（0-1）
}

// WallConfig 墙面瓷砖配置
type WallConfig struct {
	Palette     []string `yaml:"palette"`     // 图案颜色，最后一个颜色出现概率较低
	NumberColor string   `yaml:"numberColor"` // 分数数字颜色
	Seed        uint64   `yaml:"seed"`        // 图案随机种子，0 表示启动时随机生成
}

// RoomConfig 房间配置文件结构
type RoomConfig struct {
	Window       WindowConfig     `yaml:"window"`
	Achievements AchievementTexts `yaml:"achievements"`
	Card         CardConfig       `yaml:"card"`
	Particles    ParticleConfig   `yaml:"particles"`
	Wall         WallConfig       `yaml:"wall"`
}

// LoadRoomConfig 加载房间配置
//
// 先加载嵌入的默认配置，再用 overridePath 指向的文件覆盖（文件中未出现的字段保持默认值）。
//
// 参数：
//   - overridePath: 覆盖配置文件路径，为空则只使用默认配置
//
// 返回：
//   - *RoomConfig: 解析并校验后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadRoomConfig(overridePath string) (*RoomConfig, error) {
	var cfg RoomConfig

	data, err := embedded.ReadFile(DefaultRoomConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read default room config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse default room config: %w", err)
	}

	if overridePath != "" {
		data, err := embedded.ReadFile(overridePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read room config %s: %w", overridePath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse room config YAML from %s: %w", overridePath, err)
		}
	}

	if err := validateRoomConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid room config: %w", err)
	}

	return &cfg, nil
}

// MustDefaultRoomConfig 返回嵌入的默认配置
// 嵌入资源损坏属于编译期问题，因此直接 panic
func MustDefaultRoomConfig() *RoomConfig {
	cfg, err := LoadRoomConfig("")
	if err != nil {
		panic(err)
	}
	return cfg
}

// validateRoomConfig 验证配置的完整性和合法性
func validateRoomConfig(cfg *RoomConfig) error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}

	if cfg.Card.Width <= 0 || cfg.Card.Height <= 0 {
		return fmt.Errorf("card size must be positive, got %.1fx%.1f", cfg.Card.Width, cfg.Card.Height)
	}
	if cfg.Card.Lifetime <= 0 {
		return fmt.Errorf("card lifetime must be positive, got %.2f", cfg.Card.Lifetime)
	}
	if cfg.Card.Padding < 0 || 2*cfg.Card.Padding >= cfg.Card.Width {
		return fmt.Errorf("card padding must leave room for text, got %.1f", cfg.Card.Padding)
	}
	if cfg.Card.SlideDuration <= 0 {
		return fmt.Errorf("card slideDuration must be positive, got %.2f", cfg.Card.SlideDuration)
	}
	if _, err := ParseHexColor(cfg.Card.Color); err != nil {
		return fmt.Errorf("card color: %w", err)
	}
	if _, err := ParseHexColor(cfg.Card.TextColor); err != nil {
		return fmt.Errorf("card textColor: %w", err)
	}

	if cfg.Achievements.CookiesThreshold < 1 {
		return fmt.Errorf("achievements cookiesThreshold must be at least 1, got %d", cfg.Achievements.CookiesThreshold)
	}

	if cfg.Particles.Count < 0 {
		return fmt.Errorf("particles count cannot be negative, got %d", cfg.Particles.Count)
	}

	if len(cfg.Wall.Palette) == 0 {
		return fmt.Errorf("wall palette requires at least one color")
	}
	for i, hex := range cfg.Wall.Palette {
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("wall palette[%d]: %w", i, err)
		}
	}
	if _, err := ParseHexColor(cfg.Wall.NumberColor); err != nil {
		return fmt.Errorf("wall numberColor: %w", err)
	}

	return nil
}

// CardColor 返回卡片背景颜色
func (c *RoomConfig) CardColor() color.RGBA {
	return mustColor(c.Card.Color)
}

// CardTextColor 返回卡片文字颜色
func (c *RoomConfig) CardTextColor() color.RGBA {
	return mustColor(c.Card.TextColor)
}

// WallPalette 返回墙面图案颜色
func (c *RoomConfig) WallPalette() []color.RGBA {
	palette := make([]color.RGBA, len(c.Wall.Palette))
	for i, hex := range c.Wall.Palette {
		palette[i] = mustColor(hex)
	}
	return palette
}

// WallNumberColor 返回分数数字颜色
func (c *RoomConfig) WallNumberColor() color.RGBA {
	return mustColor(c.Wall.NumberColor)
}

// mustColor 解析已经过校验的颜色
func mustColor(hex string) color.RGBA {
	c, err := ParseHexColor(hex)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return c
}
