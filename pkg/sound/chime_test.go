package sound

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestAchievementChimeLength 验证提示音长度等于所有音符时长之和
func TestAchievementChimeLength(t *testing.T) {
	pcm, err := AchievementChimePCM()
	require.NoError(t, err)

	var total time.Duration
	for _, n := range achievementNotes {
		total += n.duration
	}

	// 每个采样帧 4 字节（16 位立体声）
	require.Equal(t, SampleRate.N(total)*4, len(pcm))
}

// TestAchievementChimeNotSilent 验证提示音不是静音且没有削波
func TestAchievementChimeNotSilent(t *testing.T) {
	pcm, err := AchievementChimePCM()
	require.NoError(t, err)

	peak := 0
	for i := 0; i+1 < len(pcm); i += 2 {
		v := int(int16(binary.LittleEndian.Uint16(pcm[i:])))
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}

	require.Greater(t, peak, 1000)
	require.Less(t, peak, 32767)
}

// TestAchievementChimeStartsAtZero 验证起音包络从 0 开始，避免爆音
func TestAchievementChimeStartsAtZero(t *testing.T) {
	pcm, err := AchievementChimePCM()
	require.NoError(t, err)
	require.Equal(t, int16(0), int16(binary.LittleEndian.Uint16(pcm[0:])))
}

func TestToInt16Clamps(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected int16
	}{
		{"零", 0, 0},
		{"正满幅", 1, 32767},
		{"负满幅", -1, -32767},
		{"超出上限", 3, 32767},
		{"超出下限", -3, -32767},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, toInt16(tt.input))
		})
	}
}
