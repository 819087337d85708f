package ui

import (
	"strconv"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

type statusLogFixture struct {
	log   *statusLog
	label *widget.Label
	older *widget.Button
	newer *widget.Button
}

func newStatusLogFixture(t *testing.T, limit int) *statusLogFixture {
	t.Helper()
	test.NewTempApp(t)
	f := &statusLogFixture{
		label: widget.NewLabel(""),
		older: widget.NewButton("older", nil),
		newer: widget.NewButton("newer", nil),
	}
	f.log = newStatusLog(f.label, f.older, f.newer, limit)
	clock := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	f.log.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return f
}

func TestStatusLogEmpty(t *testing.T) {
	f := newStatusLogFixture(t, 5)

	assert.Empty(t, f.label.Text)
	assert.True(t, f.older.Disabled())
	assert.True(t, f.newer.Disabled())
}

func TestStatusLogBrowsing(t *testing.T) {
	f := newStatusLogFixture(t, 5)
	f.log.Add("first")
	f.log.Add("second")
	f.log.Add("third")

	assert.Equal(t, "09:30:03  third  (3/3)", f.label.Text)
	assert.False(t, f.older.Disabled())
	assert.True(t, f.newer.Disabled())

	test.Tap(f.older)
	test.Tap(f.older)
	test.Tap(f.older)
	assert.Equal(t, "09:30:01  first  (1/3)", f.label.Text)
	assert.True(t, f.older.Disabled())
	assert.False(t, f.newer.Disabled())

	test.Tap(f.newer)
	assert.Equal(t, "09:30:02  second  (2/3)", f.label.Text)

	f.log.Add("fourth")
	assert.Equal(t, "09:30:04  fourth  (4/4)", f.label.Text, "a new notice is selected")
}

func TestStatusLogEvictsOldest(t *testing.T) {
	f := newStatusLogFixture(t, 3)
	for i := 1; i <= 5; i++ {
		f.log.Add("msg" + strconv.Itoa(i))
	}

	assert.Equal(t, []string{"msg3", "msg4", "msg5"}, f.log.Messages())
	assert.Contains(t, f.label.Text, "msg5  (3/3)")
}

func TestMessageHistoryDefaultLimit(t *testing.T) {
	h := newMessageHistory(0)
	assert.Equal(t, 100, h.limit)
	assert.False(t, h.move(-1))
	_, ok := h.selected()
	assert.False(t, ok)
}
