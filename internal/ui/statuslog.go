package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2/widget"

	"path2peace/internal/config"
)

type logEntry struct {
	at   time.Time
	text string
}

// messageHistory is a bounded list of notices with a cursor for browsing.
type messageHistory struct {
	entries []logEntry
	limit   int
	cursor  int
}

func newMessageHistory(limit int) *messageHistory {
	if limit <= 0 {
		limit = config.DefaultMaxLogMessages
	}
	return &messageHistory{limit: limit, cursor: -1}
}

// add appends e, evicting the oldest past the limit, and selects it.
func (h *messageHistory) add(e logEntry) {
	h.entries = append(h.entries, e)
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = append(h.entries[:0], h.entries[over:]...)
	}
	h.cursor = len(h.entries) - 1
}

// move shifts the cursor by delta and reports whether it moved.
func (h *messageHistory) move(delta int) bool {
	next := h.cursor + delta
	if next < 0 || next >= len(h.entries) {
		return false
	}
	h.cursor = next
	return true
}

func (h *messageHistory) selected() (logEntry, bool) {
	if h.cursor < 0 || h.cursor >= len(h.entries) {
		return logEntry{}, false
	}
	return h.entries[h.cursor], true
}

func (h *messageHistory) hasOlder() bool { return h.cursor > 0 }
func (h *messageHistory) hasNewer() bool { return h.cursor < len(h.entries)-1 }

// statusLog shows the selected notice in the status bar with older/newer
// buttons.
type statusLog struct {
	history *messageHistory
	now     func() time.Time

	label *widget.Label
	older *widget.Button
	newer *widget.Button
}

func newStatusLog(label *widget.Label, older, newer *widget.Button, limit int) *statusLog {
	sl := &statusLog{
		history: newMessageHistory(limit),
		now:     time.Now,
		label:   label,
		older:   older,
		newer:   newer,
	}
	older.OnTapped = func() { sl.step(-1) }
	newer.OnTapped = func() { sl.step(1) }
	sl.render()
	return sl
}

// Add records msg and shows it.
func (sl *statusLog) Add(msg string) {
	sl.history.add(logEntry{at: sl.now(), text: msg})
	sl.render()
}

// Messages returns the retained notices, oldest first.
func (sl *statusLog) Messages() []string {
	out := make([]string, len(sl.history.entries))
	for i, e := range sl.history.entries {
		out[i] = e.text
	}
	return out
}

func (sl *statusLog) step(delta int) {
	if sl.history.move(delta) {
		sl.render()
	}
}

func (sl *statusLog) render() {
	e, ok := sl.history.selected()
	if !ok {
		sl.label.SetText("")
		sl.older.Disable()
		sl.newer.Disable()
		return
	}
	sl.label.SetText(fmt.Sprintf("%s  %s  (%d/%d)", e.at.Format("15:04:05"), e.text,
		sl.history.cursor+1, len(sl.history.entries)))
	setEnabled(sl.older, sl.history.hasOlder())
	setEnabled(sl.newer, sl.history.hasNewer())
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}
