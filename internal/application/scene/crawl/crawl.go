// Package crawl provides the scrolling story text shown before a run.
package crawl

import (
	"github.com/younwookim/edge/internal/application/gfx"
	"github.com/younwookim/edge/internal/application/scene"
	"github.com/younwookim/edge/internal/application/state"
)

// Crawl scrolls the configured lines upward from below the screen.
type Crawl struct {
	elapsed float64
	done    bool
}

func New() *Crawl {
	return &Crawl{}
}

// lineY is the screen y of line i at the current scroll position.
func (c *Crawl) lineY(ctx *scene.Context, i int) float64 {
	_, h := ctx.ScreenSize()
	cc := ctx.Config.Crawl
	return h + float64(i)*cc.LineSpacing - c.elapsed*cc.Speed
}

// Done reports whether the last line has scrolled off the top.
func (c *Crawl) Done(ctx *scene.Context) bool {
	n := len(ctx.Config.Crawl.Lines)
	return c.lineY(ctx, n-1) < -ctx.Config.Crawl.LineSpacing
}

func (c *Crawl) Update(ctx *scene.Context, dt float64) state.Event {
	c.elapsed += dt

	if ctx.Input.Confirm() {
		return state.EventConfirm
	}
	if c.Done(ctx) {
		if !c.done {
			c.done = true
			ctx.Logger.Debug("crawl finished", "elapsed", c.elapsed)
		}
		return state.EventCrawlDone
	}
	return state.EventNone
}

func (c *Crawl) Draw(ctx *scene.Context, cv gfx.Canvas) {
	w, h := ctx.ScreenSize()
	cv.Clear(gfx.Black)

	spacing := ctx.Config.Crawl.LineSpacing
	for i, line := range ctx.Config.Crawl.Lines {
		y := c.lineY(ctx, i)
		if line == "" || y < -spacing || y >= h {
			continue
		}
		scene.DrawCentered(cv, line, w/2, y, gfx.Yellow, gfx.DefaultFont)
	}
}

func (c *Crawl) OnEnter(*scene.Context) {
	c.elapsed = 0
	c.done = false
}

func (c *Crawl) OnExit(*scene.Context) {}
