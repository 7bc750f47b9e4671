package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/clip-trimmer/internal/media"
	"github.com/ytget/clip-trimmer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.clip-trimmer"
	AppName = "Clip Trimmer"

	WindowWidth  = 900
	WindowHeight = 640
)

func main() {
	// Log version information
	fmt.Printf("Clip Trimmer v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	previewSvc := media.NewPreviewService()
	exportSvc := media.NewService("")

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, previewSvc, exportSvc)
	myWindow.SetOnClosed(rootUI.Close)

	// A video path on the command line is opened right away
	if len(os.Args) > 1 {
		rootUI.LoadVideo(os.Args[1])
	}

	// Show and run
	myWindow.ShowAndRun()
}
