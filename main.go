package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"

	"github.com/ytget/yt-playlist-maker/internal/export"
	"github.com/ytget/yt-playlist-maker/internal/generate"
	"github.com/ytget/yt-playlist-maker/internal/platform"
	"github.com/ytget/yt-playlist-maker/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-playlist-maker"
	AppName = "YT Playlist Maker"

	WindowWidth  = 820
	WindowHeight = 640
)

func main() {
	logger := log.Default().WithPrefix("main")
	logger.Info("starting", "app", AppName, "version", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewPlaylistTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	if icon, err := ui.LoadLogoResource(); err == nil {
		myWindow.SetIcon(icon)
	} else {
		logger.Debug("app icon not loaded", "err", err)
	}

	// Initialize services
	generator := generate.NewService(platform.NewURLParserService())
	exporter := export.NewService()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, generator, exporter)

	myWindow.ShowAndRun()
}
