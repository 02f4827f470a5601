package main

import (
	"flag"
	"log"

	"github.com/decker502/cannonade/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	levelPath = flag.String("level", "", "关卡配置文件路径（默认使用内置关卡）")
	noStats   = flag.Bool("no-stats", false, "不读写本地战绩")
	mute      = flag.Bool("mute", false, "关闭音效")
)

func main() {
	flag.Parse()

	a, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		LevelPath: *levelPath,
		NoStats:   *noStats,
		Mute:      *mute,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowTitle("Cannonade")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
