package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	mandel "github.com/marben/mandelbench"
	"github.com/marben/mandelbench/render"
)

const (
	viewerMaxIter = 100
	statusLines   = 1
)

type viewer struct {
	screen  tcell.Screen
	index   int // into mandel.Landmarks
	colored bool
	frame   *render.Frame
}

func newViewer(screen tcell.Screen) *viewer {
	return &viewer{screen: screen}
}

func (v *viewer) landmark() mandel.Landmark {
	return mandel.Landmarks[v.index]
}

// draw renders the current landmark to fill the screen above the status line.
func (v *viewer) draw(ctx context.Context) error {
	w, h := v.screen.Size()
	h -= statusLines
	v.screen.Clear()

	if w > 0 && h > 0 {
		g := mandel.Grid{Region: v.landmark().Region, W: w, H: h}
		frame, err := render.RenderParallel(ctx, g, viewerMaxIter, 0)
		if err != nil {
			return fmt.Errorf("render %s: %w", v.landmark().Name, err)
		}
		v.frame = frame

		for row := 0; row < h; row++ {
			for col := 0; col < w; col++ {
				iter := frame.At(col, row)
				style := tcell.StyleDefault
				if v.colored {
					cx, cy := g.Point(col, row)
					style = smoothStyle(mandel.SmoothIterations(cx, cy, viewerMaxIter), viewerMaxIter)
				}
				v.screen.SetContent(col, row, rune(mandel.Glyph(iter, viewerMaxIter)), nil, style)
			}
		}
	}

	v.drawStatus(w, h)
	v.screen.Show()
	return nil
}

func (v *viewer) drawStatus(w, row int) {
	status := fmt.Sprintf(" %s  [n]ext [p]rev [c]olour [q]uit", v.landmark().Name)
	if v.frame != nil {
		s := v.frame.Stats()
		status = fmt.Sprintf(" %s  %d iterations, %d bounded  [n]ext [p]rev [c]olour [q]uit", v.landmark().Name, s.Iterations, s.Bounded)
	}
	style := tcell.StyleDefault.Reverse(true)
	for col, r := range []rune(status) {
		if col >= w {
			break
		}
		v.screen.SetContent(col, row, r, nil, style)
	}
}

// handleEvent applies one input event. It reports whether the view must be
// redrawn and whether the viewer should quit.
func (v *viewer) handleEvent(ev tcell.Event) (redraw, quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false, true
		case tcell.KeyRight:
			v.step(1)
			return true, false
		case tcell.KeyLeft:
			v.step(-1)
			return true, false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false, true
			case 'n', ' ':
				v.step(1)
				return true, false
			case 'p':
				v.step(-1)
				return true, false
			case 'c':
				v.colored = !v.colored
				return true, false
			}
		}

	case *tcell.EventResize:
		v.screen.Sync()
		return true, false
	}

	return false, false
}

func (v *viewer) step(d int) {
	n := len(mandel.Landmarks)
	v.index = ((v.index+d)%n + n) % n
}

func (v *viewer) run(ctx context.Context) error {
	if err := v.draw(ctx); err != nil {
		return err
	}

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			redraw, quit := v.handleEvent(ev)
			if quit {
				return nil
			}
			if redraw {
				if err := v.draw(ctx); err != nil {
					return err
				}
			}
		}
	}
}
