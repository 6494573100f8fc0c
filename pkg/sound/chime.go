// Package sound 用 beep 合成游戏音效，并渲染成 Ebitengine 可以直接播放的 PCM 数据
//
// 游戏不附带音频文件，成就提示音在启动时合成一次，之后由 AudioManager 缓存复用。
package sound

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate 合成使用的采样率，与 audio.Context 保持一致
const SampleRate = beep.SampleRate(48000)

// note 提示音中的一个音符
type note struct {
	freq     float64
	duration time.Duration
}

// achievementNotes 成就提示音：G5 -> C6 上行两音
var achievementNotes = []note{
	{freq: 783.99, duration: 120 * time.Millisecond},
	{freq: 1046.50, duration: 380 * time.Millisecond},
}

const (
	chimeAttack  = 5 * time.Millisecond
	chimeRelease = 250 * time.Millisecond
	chimeVolume  = 0.35
)

// NewAchievementChime 创建成就提示音的音频流
func NewAchievementChime(sr beep.SampleRate) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(achievementNotes))

	for _, n := range achievementNotes {
		fundamental, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("failed to create tone %.2fHz: %w", n.freq, err)
		}
		overtone, err := generators.SineTone(sr, n.freq*2)
		if err != nil {
			return nil, fmt.Errorf("failed to create tone %.2fHz: %w", n.freq*2, err)
		}

		mixed := beep.Mix(
			withVolume(beep.Take(sr.N(n.duration), fundamental), 0.7),
			withVolume(beep.Take(sr.N(n.duration), overtone), 0.3),
		)
		parts = append(parts, newEnvelope(mixed, n.duration, chimeAttack, chimeRelease, sr))
	}

	return withVolume(beep.Seq(parts...), chimeVolume), nil
}

// withVolume 以线性音量包装音频流
// math.Log2(0) 为 -Inf，所以音量为 0 时直接静音
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// envelope 线性起音和释音包络
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, sr beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   sr.N(attack),
		release:  sr.N(release),
		total:    sr.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, false
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// RenderPCM16 把有限长度的音频流渲染成 16 位小端立体声 PCM
//
// 返回的数据可以直接交给 audio.Context.NewPlayerFromBytes。
// 流必须会结束（例如经过 beep.Take 截断），否则会一直读取下去。
func RenderPCM16(s beep.Streamer) ([]byte, error) {
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 64*1024)
	frame := make([]byte, 4)

	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame...)
		}
		if !ok {
			break
		}
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to render audio stream: %w", err)
	}
	return out, nil
}

// toInt16 把 [-1, 1] 的浮点采样转换为 16 位整数，超出范围的部分截断
func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// AchievementChimePCM 合成成就提示音并渲染成 PCM
func AchievementChimePCM() ([]byte, error) {
	chime, err := NewAchievementChime(SampleRate)
	if err != nil {
		return nil, err
	}
	return RenderPCM16(chime)
}
