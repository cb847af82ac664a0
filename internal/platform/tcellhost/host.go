// Package tcellhost runs a snake session directly on a tcell screen, with a
// ticker as the frame source. It is the lightweight alternative to the Bubble
// Tea frontend.
package tcellhost

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/session"
)

// palette maps core colors to terminal palette entries.
var palette = map[core.Color]tcell.Color{
	core.ColorRed:           tcell.PaletteColor(1),
	core.ColorGreen:         tcell.PaletteColor(2),
	core.ColorYellow:        tcell.PaletteColor(3),
	core.ColorBlue:          tcell.PaletteColor(4),
	core.ColorMagenta:       tcell.PaletteColor(5),
	core.ColorCyan:          tcell.PaletteColor(6),
	core.ColorWhite:         tcell.PaletteColor(7),
	core.ColorBrightRed:     tcell.PaletteColor(9),
	core.ColorBrightGreen:   tcell.PaletteColor(10),
	core.ColorBrightYellow:  tcell.PaletteColor(11),
	core.ColorBrightBlue:    tcell.PaletteColor(12),
	core.ColorBrightMagenta: tcell.PaletteColor(13),
	core.ColorBrightCyan:    tcell.PaletteColor(14),
	core.ColorBrightWhite:   tcell.PaletteColor(15),
	core.ColorOrange:        tcell.PaletteColor(208),
	core.ColorGray:          tcell.PaletteColor(245),
}

// Host drives one session on a tcell screen.
type Host struct {
	screen  tcell.Screen
	session *session.Session
}

// New binds a session to an initialized screen.
func New(screen tcell.Screen, s *session.Session) *Host {
	return &Host{screen: screen, session: s}
}

// Run delivers frames and input to the session until the player quits (nil),
// ctx is cancelled (ctx.Err()) or the screen stops delivering events (nil).
// Frames stop once a game ends and resume on restart.
func (h *Host) Run(ctx context.Context) error {
	interval := h.session.FrameInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	frames := ticker.C

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go h.screen.ChannelEvents(events, quit)

	w, ht := h.screen.Size()
	h.session.Resize(w, ht)
	h.draw()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch h.handleEvent(ev) {
			case session.Quit:
				return nil
			case session.Restarted:
				if frames == nil {
					ticker.Reset(interval)
					frames = ticker.C
				}
			}

		case now := <-frames:
			res := h.session.Frame(now)
			if !res.Reschedule {
				ticker.Stop()
				frames = nil
			}
			if !res.Ticked {
				continue
			}
		}

		h.draw()
	}
}

func (h *Host) handleEvent(ev tcell.Event) session.Outcome {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		name := keyName(ev)
		if name == "" {
			return session.Continue
		}
		return h.session.HandleKey(session.KeyName(name))

	case *tcell.EventResize:
		w, ht := ev.Size()
		h.session.Resize(w, ht)
		h.screen.Sync()
	}
	return session.Continue
}

// keyName converts a tcell key event into the names the key map uses.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyCtrlS:
		return "ctrl+s"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}

// draw copies the session screen buffer to the terminal.
func (h *Host) draw() {
	buf := h.session.Screen()
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			cell := buf.GetCell(x, y)
			style := tcell.StyleDefault
			if c, ok := palette[cell.Color]; ok {
				style = style.Foreground(c)
			}
			h.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	h.screen.Show()
}

// Play runs a session on the process terminal until the player quits or the
// process receives SIGINT or SIGTERM.
func Play(s *session.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcellhost: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcellhost: cannot initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = New(screen, s).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
