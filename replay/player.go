package replay

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// DefaultDelay is the pause between two generations.
const DefaultDelay = 20 * time.Millisecond

// Option mutates player Options.
type Option func(*Options)

// Options configures a Player.
//
// Delay:  pause between generations; 0 plays as fast as the screen allows.
// Styles: palette for every cell kind.
// Title:  text prefixed to the status line.
type Options struct {
	Delay  time.Duration
	Styles Styles
	Title  string
}

// DefaultOptions returns DefaultDelay and DefaultStyles.
func DefaultOptions() Options {
	return Options{Delay: DefaultDelay, Styles: DefaultStyles()}
}

// WithDelay sets the pause between generations. Panics on a negative delay.
func WithDelay(d time.Duration) Option {
	if d < 0 {
		panic("replay: WithDelay(negative)")
	}
	return func(o *Options) { o.Delay = d }
}

// WithStyles replaces the palette.
func WithStyles(s Styles) Option {
	return func(o *Options) { o.Styles = s }
}

// WithTitle sets the status line prefix, typically the algorithm name.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// Player animates one search result on a screen.
type Player struct {
	screen tcell.Screen
	g      *grid.Grid
	gens   []search.Generation
	path   []grid.Tile
	opts   Options
}

// NewPlayer prepares playback of gens followed by path. screen must be
// initialized by the caller.
func NewPlayer(screen tcell.Screen, g *grid.Grid, gens []search.Generation, path []grid.Tile, opts ...Option) *Player {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Player{screen: screen, g: g, gens: gens, path: path, opts: o}
}

// Draw renders the first upto generations, the path when withPath is set,
// and the status line, then shows the screen.
func (p *Player) Draw(upto int, withPath bool) {
	var path []grid.Tile
	if withPath {
		path = p.path
	}
	cells := Frame(p.g, p.gens, upto, path, p.opts.Styles)

	p.screen.Clear()
	w := p.g.Width()
	for i, c := range cells {
		p.screen.SetContent(i%w, i/w, c.Rune, nil, c.Style)
	}
	p.drawStatus(p.status(upto, withPath))
	p.screen.Show()
}

func (p *Player) status(upto int, withPath bool) string {
	if upto > len(p.gens) {
		upto = len(p.gens)
	}
	s := fmt.Sprintf("nodes %d/%d", upto, len(p.gens))
	if p.opts.Title != "" {
		s = p.opts.Title + "  " + s
	}
	if !withPath {
		return s
	}
	if len(p.path) == 0 {
		return s + "  no path  [any key]"
	}

	return fmt.Sprintf("%s  path %d  [any key]", s, len(p.path))
}

// drawStatus writes s on the row below the grid if the screen has one.
func (p *Player) drawStatus(s string) {
	_, h := p.screen.Size()
	y := p.g.Height()
	if y >= h {
		return
	}
	for x, r := range []rune(s) {
		p.screen.SetContent(x, y, r, nil, p.opts.Styles.Status)
	}
}

// Run plays the trace, shows the path, and waits for a key. It returns nil
// when the user quits and the context error when ctx ends first.
func (p *Player) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)

	var (
		finished atomic.Bool
		quitOnce sync.Once
		quit     = make(chan struct{})
	)
	stop := func() { quitOnce.Do(func() { close(quit) }) }

	// Input pump. It exits on a quit key or on the interrupt posted by the
	// playback loop when ctx ends.
	eg.Go(func() error {
		for {
			switch ev := p.screen.PollEvent().(type) {
			case nil:
				stop()
				return nil
			case *tcell.EventInterrupt:
				return nil
			case *tcell.EventResize:
				p.screen.Sync()
			case *tcell.EventKey:
				if isQuitKey(ev) || finished.Load() {
					stop()
					return nil
				}
			}
		}
	})

	eg.Go(func() error {
		var tick <-chan time.Time
		if p.opts.Delay > 0 {
			ticker := time.NewTicker(p.opts.Delay)
			defer ticker.Stop()
			tick = ticker.C
		}

		for i := 1; i <= len(p.gens); i++ {
			p.Draw(i, false)
			if tick == nil {
				select {
				case <-quit:
					return nil
				case <-ctx.Done():
					return p.interrupt(ctx)
				default:
				}
				continue
			}
			select {
			case <-quit:
				return nil
			case <-ctx.Done():
				return p.interrupt(ctx)
			case <-tick:
			}
		}

		finished.Store(true)
		p.Draw(len(p.gens), true)
		select {
		case <-quit:
			return nil
		case <-ctx.Done():
			return p.interrupt(ctx)
		}
	})

	return eg.Wait()
}

// interrupt wakes the input pump and reports why playback stopped.
func (p *Player) interrupt(ctx context.Context) error {
	p.screen.PostEventWait(tcell.NewEventInterrupt(nil))
	return ctx.Err()
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}

	return false
}
