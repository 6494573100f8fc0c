// Package utils 提供通用工具函数
package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jellydator/ttlcache/v3"
)

// MeasureFunc 测量一行文本的宽度
// 桌面端按字体像素测量，终端端按字符单元格数量测量
type MeasureFunc func(s string) float64

// RuneWidth 按字符数测量宽度（终端每个字符占一个单元格）
func RuneWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s))
}

// WrapText 将文本按单词边界自动换行
// 参数:
//   - textStr: 要换行的文本
//   - maxWidth: 最大宽度（与 measure 同单位）
//   - measure: 宽度测量函数
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 在空白处断行，连续空白视为一个
//   - 单个单词超过最大宽度时按字符强制断行
//   - 空文本返回一个空行
func WrapText(textStr string, maxWidth float64, measure MeasureFunc) []string {
	words := strings.Fields(textStr)
	if len(words) == 0 || measure == nil || maxWidth <= 0 {
		return []string{strings.TrimSpace(textStr)}
	}

	lines := make([]string, 0, 2)
	currentLine := ""

	for _, word := range words {
		candidate := word
		if currentLine != "" {
			candidate = currentLine + " " + word
		}

		if measure(candidate) <= maxWidth {
			currentLine = candidate
			continue
		}

		// 当前行放不下，先结束当前行
		if currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = ""
		}

		if measure(word) <= maxWidth {
			currentLine = word
			continue
		}

		// 单词本身超宽，按字符断开
		pieces := breakWord(word, maxWidth, measure)
		lines = append(lines, pieces[:len(pieces)-1]...)
		currentLine = pieces[len(pieces)-1]
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

// breakWord 按字符把超宽单词拆成多段
// 单个字符就超宽时也至少放一个字符，保证一定前进
func breakWord(word string, maxWidth float64, measure MeasureFunc) []string {
	pieces := make([]string, 0, 2)
	current := ""

	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		char := string(r)
		word = word[size:]

		if current != "" && measure(current+char) > maxWidth {
			pieces = append(pieces, current)
			current = char
			continue
		}
		current += char
	}

	return append(pieces, current)
}

// WrapCache 缓存换行结果
//
// 成就卡片的文字在整个生命周期内不变，而测量字体宽度代价较高，
// 因此按 (文本, 宽度) 缓存换行结果，过期时间与卡片寿命一致。
type WrapCache struct {
	cache   *ttlcache.Cache[string, []string]
	measure MeasureFunc
}

// NewWrapCache 创建换行缓存
//
// 参数：
//   - ttl: 缓存条目的存活时间
//   - measure: 宽度测量函数
func NewWrapCache(ttl time.Duration, measure MeasureFunc) *WrapCache {
	cache := ttlcache.New[string, []string](
		ttlcache.WithTTL[string, []string](ttl),
		ttlcache.WithDisableTouchOnHit[string, []string](),
	)
	return &WrapCache{cache: cache, measure: measure}
}

// Wrap 返回换行结果，命中缓存时不再测量
func (c *WrapCache) Wrap(textStr string, maxWidth float64) []string {
	key := fmt.Sprintf("%.1f|%s", maxWidth, textStr)
	if item := c.cache.Get(key); item != nil {
		return item.Value()
	}

	lines := WrapText(textStr, maxWidth, c.measure)
	c.cache.Set(key, lines, ttlcache.DefaultTTL)
	return lines
}

// Prune 清理已过期的条目
// 游戏循环每帧调用一次，缓存本身不启动后台 goroutine
func (c *WrapCache) Prune() {
	c.cache.DeleteExpired()
}

// Len 返回缓存中的条目数量
func (c *WrapCache) Len() int {
	return c.cache.Len()
}
