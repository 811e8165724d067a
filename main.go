package main

import (
	"embed"
	"flag"
	"fmt"
	"os"

	"github.com/awsl-project/localnotes/internal/config"
	"github.com/awsl-project/localnotes/internal/desktop"
	"github.com/awsl-project/localnotes/internal/domain"
	"github.com/awsl-project/localnotes/internal/logging"
	"github.com/awsl-project/localnotes/internal/store"
	"github.com/awsl-project/localnotes/internal/version"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	dataDir := flag.String("data", "", "Data directory for database and logs")
	showVersion := flag.Bool("version", false, "Show version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("localnotes", version.Full())
		os.Exit(0)
	}

	cfg, err := config.Load(*dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}
	if err := cfg.EnsureDataDir(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, closeLog, err := logging.New(logging.Options{Level: cfg.LogLevel, FilePath: cfg.LogPath()})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize logging:", err)
		os.Exit(1)
	}
	defer closeLog()

	// 数据库打不开时仍然启动，导出功能不依赖数据库
	db, err := store.Open(cfg.DatabasePath(), log)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open database")
	}

	app := desktop.NewApp(cfg, log, db)

	err = wails.Run(&options.App{
		Title:             version.Name,
		Width:             cfg.Window.Width,
		Height:            cfg.Window.Height,
		MinWidth:          400,
		MinHeight:         300,
		StartHidden:       cfg.Window.StartHidden,
		HideWindowOnClose: false,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 1},
		Logger:           logging.NewWailsLogger(log),
		LogLevel:         logger.INFO,
		OnStartup:        app.Startup,
		OnDomReady:       app.DomReady,
		OnBeforeClose:    app.BeforeClose,
		OnShutdown:       app.Shutdown,
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId:               domain.AppID,
			OnSecondInstanceLaunch: app.SecondInstance,
		},
		Bind: []interface{}{
			app,
		},
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
			DisableWindowIcon:    false,
		},
		Mac: &mac.Options{
			About: &mac.AboutInfo{
				Title:   version.Name,
				Message: "localnotes " + version.Info(),
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("Application exited with error")
		closeLog()
		os.Exit(1)
	}
}
