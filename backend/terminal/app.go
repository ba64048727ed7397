package terminal

import (
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"vincit.fi/scene-widgets/backend/software"
	"vincit.fi/scene-widgets/common/logger"
	"vincit.fi/scene-widgets/scene"
)

const frameDelay = 50 * time.Millisecond

// App draws a stage to a terminal screen and feeds it mouse input until
// Escape, Ctrl-C or q is pressed.
type App struct {
	screen     tcell.Screen
	stage      *scene.Stage
	translator *MouseTranslator
	batch      *software.Batch
	resampler  software.Resampler
	onFrame    []func()
}

func NewApp(screen tcell.Screen, stage *scene.Stage, resampler software.Resampler) *App {
	return &App{
		screen:     screen,
		stage:      stage,
		translator: NewMouseTranslator(stage, 0),
		resampler:  resampler,
	}
}

// OnFrame adds a function run on the loop goroutine before each frame is
// drawn.
func (s *App) OnFrame(fn func()) {
	s.onFrame = append(s.onFrame, fn)
}

// Run initializes the screen and blocks until the user quits.
func (s *App) Run() error {
	if err := s.screen.Init(); err != nil {
		return err
	}
	defer s.screen.Fini()
	s.screen.EnableMouse()
	s.Resize()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			event := s.screen.PollEvent()
			if event == nil {
				close(events)
				return
			}
			select {
			case events <- event:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameDelay)
	defer ticker.Stop()
	for {
		select {
		case event, ok := <-events:
			if !ok || s.HandleEvent(event) {
				logger.Info.Print("Quit")
				return nil
			}
		case <-ticker.C:
			s.Frame()
		}
	}
}

// HandleEvent reacts to a single screen event and reports whether the app
// should quit.
func (s *App) HandleEvent(event tcell.Event) bool {
	switch event := event.(type) {
	case *tcell.EventKey:
		switch event.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				return true
			}
		}
	case *tcell.EventResize:
		s.screen.Sync()
		s.Resize()
	case *tcell.EventMouse:
		s.translator.Translate(event)
	}
	return false
}

// Resize matches the stage and the canvas to the screen size.
func (s *App) Resize() {
	width, height := s.screen.Size()
	logger.Debug.Printf("Screen size %dx%d", width, height)
	s.stage.SetSize(float32(width), float32(height))
	s.translator.SetScreenHeight(height)
	s.batch = software.NewBatch(width, height, color.Transparent, s.resampler)
}

// Frame polls time based input, draws the stage and shows the result.
func (s *App) Frame() {
	if s.batch == nil {
		s.Resize()
	}
	s.stage.Act()
	for _, fn := range s.onFrame {
		fn()
	}
	s.batch.Clear(color.Transparent)
	s.stage.Draw(s.batch)
	Present(s.screen, s.batch.Image())
	s.screen.Show()
}
