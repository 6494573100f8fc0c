package game

import (
	"os"
	"testing"

	"github.com/decker502/lightroom/pkg/sound"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio context shared by all tests
// Ebitengine only allows one audio context to be created
var testAudioContext *audio.Context

// TestMain sets up the shared audio context before running tests
func TestMain(m *testing.M) {
	testAudioContext = audio.NewContext(int(sound.SampleRate))
	os.Exit(m.Run())
}

// TestNewResourceManager tests the creation of a new ResourceManager instance.
func TestNewResourceManager(t *testing.T) {
	rm := NewResourceManager(testAudioContext)

	if rm == nil {
		t.Fatal("NewResourceManager returned nil")
	}
	if rm.audioCache == nil {
		t.Error("audioCache is nil")
	}
	if rm.fontFaceCache == nil {
		t.Error("fontFaceCache is nil")
	}
	if rm.audioContext != testAudioContext {
		t.Error("audioContext not set correctly")
	}
}

// TestRegisterSound tests registering synthesized PCM data.
func TestRegisterSound(t *testing.T) {
	rm := NewResourceManager(testAudioContext)

	pcm, err := sound.AchievementChimePCM()
	if err != nil {
		t.Fatalf("AchievementChimePCM() error: %v", err)
	}

	if err := rm.RegisterSound(SoundAchievement, pcm); err != nil {
		t.Fatalf("RegisterSound() error: %v", err)
	}
	if rm.GetAudioPlayer(SoundAchievement) == nil {
		t.Error("GetAudioPlayer() returned nil after RegisterSound")
	}
	if rm.GetAudioPlayer("SOUND_MISSING") != nil {
		t.Error("GetAudioPlayer() should return nil for unknown sound")
	}
}

// TestRegisterSoundWithoutContext tests that sounds cannot be registered without audio.
func TestRegisterSoundWithoutContext(t *testing.T) {
	rm := NewResourceManager(nil)

	if err := rm.RegisterSound(SoundAchievement, []byte{0, 0, 0, 0}); err == nil {
		t.Error("RegisterSound() without audio context should return error")
	}
}

// TestLoadDefaultFont tests loading and caching the built-in font.
func TestLoadDefaultFont(t *testing.T) {
	rm := NewResourceManager(nil)

	face1, err := rm.LoadDefaultFont(20)
	if err != nil {
		t.Fatalf("LoadDefaultFont() error: %v", err)
	}
	if face1.Size != 20 {
		t.Errorf("Face size: got %v, want 20", face1.Size)
	}

	face2, err := rm.LoadDefaultFont(20)
	if err != nil {
		t.Fatalf("LoadDefaultFont() second call error: %v", err)
	}
	if face1 != face2 {
		t.Error("LoadDefaultFont() should return the cached face")
	}

	// 不同字号共用同一个 source
	face3, err := rm.LoadDefaultFont(32)
	if err != nil {
		t.Fatalf("LoadDefaultFont(32) error: %v", err)
	}
	if face3 == face1 {
		t.Error("Different sizes should produce different faces")
	}
	if face3.Source != face1.Source {
		t.Error("Different sizes should share the font source")
	}

	if rm.GetFont(DefaultFontName, 32) != face3 {
		t.Error("GetFont() did not return the cached face")
	}
}

// TestLoadFontNotFound tests loading a missing font file.
func TestLoadFontNotFound(t *testing.T) {
	rm := NewResourceManager(nil)

	if _, err := rm.LoadFont("nonexistent/font.ttf", 20); err == nil {
		t.Error("LoadFont() should fail for a missing file")
	}
	if rm.GetFont("nonexistent/font.ttf", 20) != nil {
		t.Error("Failed font should not be cached")
	}
}

// TestLoadFontInvalidData tests loading a file that is not a font.
func TestLoadFontInvalidData(t *testing.T) {
	rm := NewResourceManager(nil)

	if _, err := rm.LoadFont("data/digits.txt", 20); err == nil {
		t.Error("LoadFont() should fail for non-font data")
	}
}
