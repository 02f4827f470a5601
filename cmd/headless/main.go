// headless 无窗口运行模拟，由自动驾驶代替玩家
//
// 用法:
//
//	go run ./cmd/headless -duration 90 -serve :8080 -realtime
//
// 指定 -serve 时通过 WebSocket 推送每帧快照（msgpack 编码），
// 观战端连接 ws://<addr>/ws 即可。
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/decker502/cannonade/pkg/config"
	"github.com/decker502/cannonade/pkg/game"
	"github.com/decker502/cannonade/pkg/hooks"
	"github.com/decker502/cannonade/pkg/spectate"
	"golang.org/x/sync/errgroup"
)

var (
	levelPath = flag.String("level", "", "关卡配置文件路径（默认使用内置关卡）")
	duration  = flag.Float64("duration", 60, "最长模拟时长（秒，模拟时间）")
	tps       = flag.Int("tps", 60, "每秒模拟帧数")
	serveAddr = flag.String("serve", "", "观战服务监听地址，如 :8080（为空则不启动）")
	realtime  = flag.Bool("realtime", false, "按真实时间节奏推进（观战时建议开启）")
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	noStats   = flag.Bool("no-stats", false, "不读写本地战绩")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := validateFlags(*tps, *duration); err != nil {
		return err
	}

	level, err := config.LoadLevelConfig(*levelPath)
	if err != nil {
		return fmt.Errorf("关卡配置加载失败: %w", err)
	}

	var stats *game.StatsManager
	if !*noStats {
		stats = game.OpenStatsManager(game.StatsAppName)
	}

	pilot := game.NewAutoPilot()
	session := game.NewSession(level, hooks.Collaborators{
		Input:   pilot,
		Ground:  pilot,
		Terrain: hooks.FlatTerrain(level.GroundHeight),
	}, stats)
	pilot.Attach(session)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := spectate.NewHub()
	g, ctx := errgroup.WithContext(ctx)

	if *serveAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/ws", hub.Handler())
		srv := &http.Server{Addr: *serveAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

		g.Go(func() error {
			fmt.Printf("📡 观战服务: ws://%s/ws\n", *serveAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("spectate server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			hub.Close()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		defer stop()
		return simulate(ctx, session, pilot, hub)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	// 时长耗尽或被中断时回合未失败，战绩需显式记录
	if !session.Round().IsGameOver() {
		session.RecordStats()
	}

	printSummary(session, stats, hub)
	return nil
}

// validateFlags 检查帧率与时长，两者都必须为正
func validateFlags(tps int, duration float64) error {
	if tps <= 0 {
		return fmt.Errorf("tps must be positive, got %d", tps)
	}
	if !(duration > 0) || math.IsInf(duration, 1) {
		return fmt.Errorf("duration must be positive and finite, got %v", duration)
	}
	return nil
}

// simulate 固定步长推进，直到失败、超时或被中断
func simulate(ctx context.Context, session *game.Session, pilot *game.AutoPilot, hub *spectate.Hub) error {
	dt := 1.0 / float64(*tps)
	maxTicks := uint64(*duration * float64(*tps))

	var ticker *time.Ticker
	if *realtime {
		ticker = time.NewTicker(time.Second / time.Duration(*tps))
		defer ticker.Stop()
	}

	for session.Tick() < maxTicks && !session.Round().IsGameOver() {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		pilot.Step()
		session.Update(dt)
		pilot.TryFire()

		if hub.ViewerCount() == 0 {
			continue
		}
		if err := hub.Publish(session.Snapshot()); err != nil {
			return fmt.Errorf("publish snapshot: %w", err)
		}
	}
	return nil
}

func printSummary(session *game.Session, stats *game.StatsManager, hub *spectate.Hub) {
	result := session.Result()

	fmt.Println("═══════════════════════════════════════")
	fmt.Printf("会话:     %s\n", session.ID())
	fmt.Printf("关卡:     %s\n", session.Level().ID)
	fmt.Printf("状态:     %s\n", session.Round().State())
	fmt.Printf("存活:     %.2f 秒\n", result.Survived)
	fmt.Printf("击杀:     %d\n", result.Kills)
	fmt.Printf("开火:     %d\n", result.Shots)
	fmt.Printf("刷怪:     %d\n", session.Spawner().Spawned())
	if hub.Dropped() > 0 {
		fmt.Printf("丢帧:     %d\n", hub.Dropped())
	}
	if stats != nil {
		s := stats.Stats()
		fmt.Printf("累计:     %d 回合, 最佳击杀 %d, 最长存活 %.1f 秒\n", s.RoundsPlayed, s.BestKills, s.LongestSurvive)
	}
	fmt.Println("═══════════════════════════════════════")
}
