package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/lightroom/pkg/app"
	"github.com/decker502/lightroom/pkg/config"
	"github.com/decker502/lightroom/pkg/reporting"
)

func main() {
	config.LoadDotEnv()

	launch, err := config.ParseLaunchConfig(os.Args[0], os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	sessionID := reporting.NewSessionID()
	flush, err := reporting.Init(launch.SentryDSN, sessionID, "")
	if err != nil {
		log.Printf("[Main] %v", err)
	}
	defer flush()
	defer reporting.Recover()

	gameApp, err := app.NewApp(app.Config{
		Verbose:        launch.Verbose,
		RoomConfigPath: launch.RoomConfigPath,
	})
	if err != nil {
		reporting.Report(err, map[string]string{"stage": "init"})
		flush()
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	window := gameApp.RoomConfig().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)

	// 关闭窗口后保存用户设置
	gameApp.GetSceneManager().SaveOnExit()

	if runErr != nil {
		reporting.Report(runErr, map[string]string{"stage": "run"})
		flush()
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
}
