package ui

import (
	"testing"
	"time"
)

func TestToolbarClicks(t *testing.T) {
	var in, out, reset int
	tb := NewToolbar(Actions{
		ZoomIn:      func() { in++ },
		ZoomOut:     func() { out++ },
		ResetView:   func() { reset++ },
		ZoomPercent: func() int { return 150 },
	}, nil, nil)
	tb.Layout(800)

	click := func(b *Button) bool {
		return tb.Click(int(b.X+b.W/2), int(b.Y+b.H/2))
	}
	if !click(tb.zoomIn) || !click(tb.zoomOut) || !click(tb.reset) {
		t.Fatal("expected clicks on buttons to be consumed")
	}
	if in != 1 || out != 1 || reset != 1 {
		t.Fatalf("unexpected action counts: in=%d out=%d reset=%d", in, out, reset)
	}
	if !click(tb.readout) {
		t.Error("readout should swallow clicks")
	}
	if tb.Click(10, 300) {
		t.Error("click on canvas should not be consumed")
	}
	if got := tb.ReadoutText(); got != "150%" {
		t.Errorf("expected readout 150%%, got %q", got)
	}
}

func TestToolbarLayoutRightAligned(t *testing.T) {
	tb := NewToolbar(Actions{}, nil, nil)
	tb.Layout(1024)

	if right := tb.reset.X + tb.reset.W; right != 1024-margin {
		t.Errorf("reset button ends at %v, want %v", right, 1024-margin)
	}
	if tb.zoomOut.X >= tb.readout.X || tb.readout.X >= tb.zoomIn.X || tb.zoomIn.X >= tb.reset.X {
		t.Error("controls out of order")
	}
	if !tb.IsMouseOver(int(tb.zoomOut.X)+1, margin+1) {
		t.Error("expected mouse over zoom out")
	}
	if tb.IsMouseOver(int(tb.zoomOut.X)-gap/2, margin+1) {
		t.Error("gap left of the toolbar should not count")
	}
}

func TestStatusPanelExpires(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := &StatusPanel{now: func() time.Time { return now }}

	s.Show("Nothing to paste")
	if !s.Visible() {
		t.Fatal("message should be visible")
	}
	now = now.Add(statusDuration + time.Millisecond)
	if s.Visible() || s.Message != "" {
		t.Fatal("message should expire")
	}
}
