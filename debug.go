package imui

import "time"

// debugStats summarizes one finished frame. Only gathered in debug mode.
type debugStats struct {
	frame          uint64
	widgets        uint64
	cursorConsumed bool
	activeWidget   WidgetID
	frameTime      time.Duration
}

// collectStats reads the counters of a finished frame. now is the start of
// the frame that follows it.
func collectStats(fs *frameState, now time.Time) debugStats {
	fs.uiMu.Lock()
	active := fs.ui.ActiveWidget
	fs.uiMu.Unlock()
	return debugStats{
		frame:          fs.number,
		widgets:        fs.nextID.Load(),
		cursorConsumed: fs.hovered.Load(),
		activeWidget:   active,
		frameTime:      now.Sub(fs.now),
	}
}

// debugLog logs the stats of the frame that just ended.
func (s *Session) debugLog(prev *frameState, now time.Time) {
	stats := collectStats(prev, now)
	Logger().Debug("imui: frame",
		"frame", stats.frame,
		"widgets", stats.widgets,
		"cursor_consumed", stats.cursorConsumed,
		"active_widget", uint64(stats.activeWidget),
		"frame_time", stats.frameTime,
	)
}
