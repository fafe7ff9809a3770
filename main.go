package main

import (
	"flag"
	"log"

	"github.com/gonewx/cardtable/pkg/app"
	"github.com/gonewx/cardtable/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "牌桌配置文件路径（为空则使用内置 data/cardtable.yaml）")
	mode := flag.String("mode", "", "驱动方式: continuous | discrete（覆盖配置）")
	verbose := flag.Bool("verbose", false, "输出详细日志")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Mode:       *mode,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(gameApp.WindowSize())
	ebiten.SetWindowTitle(gameApp.WindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.Fullscreen())

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
	gameApp.Shutdown()
}
