package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"

	g "github.com/AllenDang/giu"
	"github.com/gdamore/tcell/v2"
	giubackend "vincit.fi/scene-widgets/backend/giu"
	"vincit.fi/scene-widgets/backend/software"
	"vincit.fi/scene-widgets/backend/terminal"
	"vincit.fi/scene-widgets/common/logger"
	"vincit.fi/scene-widgets/common/util"
	"vincit.fi/scene-widgets/viewer"
)

const terminalLogFile = "scene-widgets.log"

func main() {
	params, err := util.ParseParams()
	if errors.Is(err, flag.ErrHelp) {
		return
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logLevel := logger.StringToLogLevel(params.LogLevel())
	if params.Mode() == util.ModeTerminal {
		// The terminal is the screen, so logs go to a file.
		logFile, err := os.Create(terminalLogFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer logFile.Close()
		logger.InitializeWithWriter(logLevel, logFile, logFile)
	} else {
		logger.Initialize(logLevel)
	}

	resampler, err := software.ParseResampler(params.Resampler())
	if err != nil {
		logger.Error.Fatal(err)
	}
	imageViewer, err := viewer.New(params)
	if err != nil {
		logger.Error.Fatal(err)
	}

	switch params.Mode() {
	case util.ModeRender:
		err = render(imageViewer, params, resampler)
	case util.ModeTerminal:
		err = runTerminal(imageViewer, resampler)
	case util.ModeGiu:
		runGiu(imageViewer, params)
	}
	if err != nil {
		logger.Error.Fatal(err)
	}
}

func render(imageViewer *viewer.Viewer, params *util.Params, resampler software.Resampler) error {
	batch := software.NewBatch(params.Width(), params.Height(), color.Transparent, resampler)
	imageViewer.Frame()
	imageViewer.Stage().Act()
	imageViewer.Stage().Draw(batch)

	stats := batch.Stats()
	logger.Info.Printf("Drew %d regions (%d skipped, %d pixels) with %s", stats.Draws, stats.Skipped, stats.Pixels, resampler)
	return batch.Save(params.Out())
}

func runTerminal(imageViewer *viewer.Viewer, resampler software.Resampler) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	app := terminal.NewApp(screen, imageViewer.Stage(), resampler)
	app.OnFrame(imageViewer.Frame)
	return app.Run()
}

func runGiu(imageViewer *viewer.Viewer, params *util.Params) {
	win := g.NewMasterWindow("Scene widgets", params.Width(), params.Height(), 0)
	stageWidget := giubackend.NewStageWidget(imageViewer.Stage(), giubackend.NewTextureCache(giubackend.DefaultMaxTextureSize))

	win.Run(func() {
		imageViewer.Frame()
		image := imageViewer.Image()

		resetButton := g.Button("Reset").OnClick(func() {
			image.SetPosition(0, 0)
			image.SetScale(1, 1)
		}).Size(120, 30)

		g.SingleWindow().
			Layout(
				g.Row(
					resetButton,
					g.Label(fmt.Sprintf("%s %s at %.0f, %.0f scale %.2f",
						image.Scaling(), image.Align(), image.X(), image.Y(), image.ScaleX())),
				),
				stageWidget,
			)
	})
}
