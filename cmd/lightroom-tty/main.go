// lightroom-tty 在终端里运行同一个房间
//
// 空格或鼠标中键拨动开关，滚轮或 +/- 调光，q / Esc 退出。
// 成就卡片在终端右下角堆叠，晋升时终端响铃。
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/lightroom/pkg/config"
	"github.com/decker502/lightroom/pkg/input"
	"github.com/decker502/lightroom/pkg/reporting"
	"github.com/decker502/lightroom/pkg/scenes"
	"github.com/decker502/lightroom/pkg/utils"
)

// logFileName verbose 模式下的日志文件（终端被 tcell 占用，不能写 stderr）
const logFileName = "lightroom-tty.log"

// frameInterval 约 60 FPS
const frameInterval = 16 * time.Millisecond

// beeper 用终端响铃代替成就音效
type beeper struct {
	screen tcell.Screen
}

func (b beeper) PlaySound(soundID string) bool {
	return b.screen.Beep() == nil
}

func main() {
	config.LoadDotEnv()

	launch, err := config.ParseLaunchConfig(os.Args[0], os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	if launch.Verbose {
		f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "无法打开日志文件: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	flush, err := reporting.Init(launch.SentryDSN, reporting.NewSessionID(), "")
	if err != nil {
		log.Printf("[Main] %v", err)
	}
	defer flush()
	defer reporting.Recover()

	if err := run(launch); err != nil {
		reporting.Report(err)
		flush()
		fmt.Fprintf(os.Stderr, "lightroom-tty: %v\n", err)
		os.Exit(1)
	}
}

// run 初始化终端并运行主循环，直到用户退出
func run(launch config.LaunchConfig) error {
	roomConfig, err := config.LoadRoomConfig(launch.RoomConfigPath)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	w, h := screen.Size()
	if minW, minH := minTerminalSize(); w < minW || h < minH {
		log.Printf("[Main] Terminal %dx%d is smaller than %dx%d, the score may be cropped", w, h, minW, minH)
	}

	cardLifetime := time.Duration(roomConfig.Card.Lifetime * float64(time.Second))
	wrap := utils.NewWrapCache(cardLifetime, utils.RuneWidth)

	world, err := scenes.NewRoomWorld(scenes.WorldOptions{
		Config: roomConfig,
		Style:  terminalCardStyle(roomConfig, wrap.Wrap),
		Viewport: func() (float64, float64) {
			w, h := screen.Size()
			return float64(w), float64(h)
		},
		Sound: beeper{screen: screen},
		Wrap:  wrap,
	})
	if err != nil {
		return err
	}

	loop(screen, world, input.NewTcellSource())
	return nil
}

// loop 主循环：事件写入输入来源，每个 tick 运行一帧并绘制
func loop(screen tcell.Screen, world *scenes.RoomWorld, source *input.TcellSource) {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			if isQuit(ev) {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			source.Push(ev)

		case now := <-ticker.C:
			deltaTime := now.Sub(last).Seconds()
			last = now

			world.Step(source.Poll(), deltaTime)
			drawRoom(screen, world.EntityManager(), world.State().Score)
			screen.Show()
		}
	}
}

// pollEvents 把终端事件转发到 events，屏幕关闭或 done 关闭后返回
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// isQuit 是否为退出键
func isQuit(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return key.Rune() == 'q' || key.Rune() == 'Q'
	}
	return false
}
