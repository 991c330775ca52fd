package engine

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// HandleEvent applies one terminal event, returns false to quit
func (c *Controller) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return c.handleKey(ev)

	case *tcell.EventResize:
		cols, rows := ev.Size()
		c.Resize(cols, rows)
		if c.screen != nil {
			c.screen.Sync()
		}

	case *tcell.EventMouse:
		c.handleMouse(ev)

	case *tcell.EventFocus:
		if !ev.Focused {
			c.field.ClearPointer()
		}
	}
	return true
}

func (c *Controller) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case 'm':
		c.SetReducedMotion(!c.reducedMotion)
	case 'd':
		c.painter.SetDebugZones(!c.painter.DebugZones())
		c.logger.Debug("debug zones toggled", zap.Bool("debug_zones", c.painter.DebugZones()))
	case 'r':
		c.Reseed()
	case 'p':
		c.SetPaused(!c.paused)
		c.logger.Debug("pause toggled", zap.Bool("paused", c.paused))
	}
	return true
}

// handleMouse tracks the pointer in logical units, leaving the viewport clears it
func (c *Controller) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	x, y, ok := c.viewport.CellToLogical(col, row)
	if !ok {
		c.field.ClearPointer()
		return
	}
	c.field.SetPointer(x, y)
}
