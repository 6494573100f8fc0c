package config

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadDefaultRoomConfig 测试加载嵌入的默认配置
func TestLoadDefaultRoomConfig(t *testing.T) {
	cfg, err := LoadRoomConfig("")
	if err != nil {
		t.Fatalf("LoadRoomConfig failed: %v", err)
	}

	if cfg.Card.Height != 100 {
		t.Errorf("Card.Height: got %v, want 100", cfg.Card.Height)
	}
	if cfg.Card.Width != 300 {
		t.Errorf("Card.Width: got %v, want 300", cfg.Card.Width)
	}
	if cfg.Card.Padding != 12 {
		t.Errorf("Card.Padding: got %v, want 12", cfg.Card.Padding)
	}
	if cfg.Card.Lifetime != 5.0 {
		t.Errorf("Card.Lifetime: got %v, want 5.0", cfg.Card.Lifetime)
	}
	if cfg.Card.SlideDuration != 1.0 {
		t.Errorf("Card.SlideDuration: got %v, want 1.0", cfg.Card.SlideDuration)
	}
	if cfg.Achievements.Meta != "Got it!" {
		t.Errorf("Achievements.Meta: got %q, want %q", cfg.Achievements.Meta, "Got it!")
	}
	if cfg.Achievements.CookiesThreshold != 100 {
		t.Errorf("Achievements.CookiesThreshold: got %d, want 100", cfg.Achievements.CookiesThreshold)
	}
	if cfg.Particles.StartColor != [4]float64{1.0, 0.9, 1.0, 1.0} {
		t.Errorf("Particles.StartColor: got %v", cfg.Particles.StartColor)
	}
	if len(cfg.WallPalette()) != 3 {
		t.Errorf("Expected 3 palette colors, got %d", len(cfg.WallPalette()))
	}
}

// TestLoadRoomConfigOverride 测试覆盖文件只替换出现的字段
func TestLoadRoomConfigOverride(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("部分覆盖", func(t *testing.T) {
		content := `
card:
  height: 60
achievements:
  lightsOn: "Let there be light"
`
		path := filepath.Join(tempDir, "override.yaml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := LoadRoomConfig(path)
		if err != nil {
			t.Fatalf("LoadRoomConfig failed: %v", err)
		}

		if cfg.Card.Height != 60 {
			t.Errorf("Card.Height: got %v, want 60", cfg.Card.Height)
		}
		// 未覆盖的字段保持默认
		if cfg.Card.Width != 300 {
			t.Errorf("Card.Width: got %v, want 300", cfg.Card.Width)
		}
		if cfg.Achievements.LightsOn != "Let there be light" {
			t.Errorf("LightsOn: got %q", cfg.Achievements.LightsOn)
		}
		if cfg.Achievements.Colorful != "So colorful *_*" {
			t.Errorf("Colorful: got %q", cfg.Achievements.Colorful)
		}
	})

	t.Run("非法配置", func(t *testing.T) {
		content := `
card:
  lifetime: 0
`
		path := filepath.Join(tempDir, "invalid.yaml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		if _, err := LoadRoomConfig(path); err == nil {
			t.Error("Expected error for zero lifetime")
		}
	})

	t.Run("留白超过卡片宽度", func(t *testing.T) {
		content := `
card:
  width: 20
  padding: 10
`
		path := filepath.Join(tempDir, "padding.yaml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		if _, err := LoadRoomConfig(path); err == nil {
			t.Error("Expected error for padding wider than the card")
		}
	})

	t.Run("格式错误", func(t *testing.T) {
		path := filepath.Join(tempDir, "broken.yaml")
		if err := os.WriteFile(path, []byte("card: [unclosed"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		if _, err := LoadRoomConfig(path); err == nil {
			t.Error("Expected error for malformed YAML")
		}
	})

	t.Run("文件不存在", func(t *testing.T) {
		if _, err := LoadRoomConfig(filepath.Join(tempDir, "missing.yaml")); err == nil {
			t.Error("Expected error for missing file")
		}
	})
}

// TestParseHexColor 测试颜色解析
func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"卡片背景", "#232D3F", color.RGBA{0x23, 0x2D, 0x3F, 0xFF}, false},
		{"无井号", "FFF0CE", color.RGBA{0xFF, 0xF0, 0xCE, 0xFF}, false},
		{"带透明度", "#0174BE80", color.RGBA{0x01, 0x74, 0xBE, 0x80}, false},
		{"长度错误", "#FFF", color.RGBA{}, true},
		{"非法字符", "#GGGGGG", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestWallTileCounts 测试墙面瓷砖数量
func TestWallTileCounts(t *testing.T) {
	if WallTilesX != 91 {
		t.Errorf("WallTilesX: got %d, want 91", WallTilesX)
	}
	if WallTilesY != 26 {
		t.Errorf("WallTilesY: got %d, want 26", WallTilesY)
	}
}

// TestWorldToScreen 测试世界坐标到屏幕坐标的换算
func TestWorldToScreen(t *testing.T) {
	const w, h = 1280, 720
	ppu := PixelsPerUnit(h)

	tests := []struct {
		name   string
		x, y   float64
		sx, sy float64
	}{
		{"视图中心", ViewCenterX, ViewCenterY, 640, 360},
		{"向右一个单位", ViewCenterX + 1, ViewCenterY, 640 + ppu, 360},
		{"向上一个单位", ViewCenterX, ViewCenterY + 1, 640, 360 - ppu},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := WorldToScreen(tt.x, tt.y, w, h)
			if math.Abs(sx-tt.sx) > 1e-9 || math.Abs(sy-tt.sy) > 1e-9 {
				t.Errorf("WorldToScreen(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, sx, sy, tt.sx, tt.sy)
			}
		})
	}
}

// TestTileWorldPosition 测试瓷砖坐标换算
func TestTileWorldPosition(t *testing.T) {
	x, y := TileWorldPosition(0, 0)
	if x != -WallSizeX/2 || y != -WallSizeY/2 {
		t.Errorf("Tile (0,0): got (%v, %v)", x, y)
	}

	x, y = TileWorldPosition(WallTilesX-1, WallTilesY-1)
	if math.Abs(x-WallSizeX/2) > 1e-9 || math.Abs(y-WallSizeY/2) > 1e-9 {
		t.Errorf("Last tile: got (%v, %v), want (%v, %v)", x, y, WallSizeX/2, WallSizeY/2)
	}
}
