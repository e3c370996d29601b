package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestRenderBufferSetGet(t *testing.T) {
	buf := NewRenderBuffer(10, 5)
	style := tcell.StyleDefault.Foreground(RgbGold)

	buf.Set(3, 2, 'X', style)
	cell := buf.Get(3, 2)
	if cell.Rune != 'X' || cell.Style != style {
		t.Errorf("Expected X with gold style, got %q", cell.Rune)
	}

	// Out of bounds writes are dropped
	buf.Set(-1, 0, 'A', style)
	buf.Set(10, 0, 'A', style)
	buf.Set(0, 5, 'A', style)
	if got := buf.Get(10, 0).Rune; got != ' ' {
		t.Errorf("Out of bounds read should be blank, got %q", got)
	}
	t.Logf("✓ Set/Get round trip and bounds")
}

func TestRenderBufferClearAndResize(t *testing.T) {
	buf := NewRenderBuffer(4, 4)
	buf.Set(1, 1, 'Z', tcell.StyleDefault)
	buf.Clear()
	if buf.Get(1, 1).Rune != ' ' {
		t.Error("Clear should blank every cell")
	}

	buf.Resize(7, 3)
	if w, h := buf.Bounds(); w != 7 || h != 3 {
		t.Errorf("Expected 7x3 after resize, got %dx%d", w, h)
	}
	buf.Set(6, 2, 'E', tcell.StyleDefault)
	if buf.Get(6, 2).Rune != 'E' {
		t.Error("Last cell should be writable after resize")
	}

	buf.Resize(-1, 3)
	if w, h := buf.Bounds(); w != 0 || h != 3 {
		t.Errorf("Negative width should clamp to 0, got %dx%d", w, h)
	}
}

func TestRenderBufferSetFgKeepsBackground(t *testing.T) {
	buf := NewRenderBuffer(3, 1)
	buf.SetBg(1, 0, RgbGold)
	buf.SetFg(1, 0, '*', RgbText)

	fg, bg, _ := buf.Get(1, 0).Style.Decompose()
	if fg != RgbText || bg != RgbGold {
		t.Errorf("Expected fg white on gold, got fg=%v bg=%v", fg, bg)
	}
}

func TestRenderBufferSetString(t *testing.T) {
	buf := NewRenderBuffer(20, 1)
	n := buf.SetString(2, 0, "héllo", tcell.StyleDefault)
	if n != 5 {
		t.Errorf("Expected 5 cells written, got %d", n)
	}
	if buf.Get(3, 0).Rune != 'é' {
		t.Errorf("Expected multi-byte rune at column 3, got %q", buf.Get(3, 0).Rune)
	}
}

func TestRenderBufferFlush(t *testing.T) {
	screen := newTestScreen(t, 5, 2)
	buf := NewRenderBuffer(5, 2)
	buf.SetString(0, 1, "ok", tcell.StyleDefault)
	buf.FlushToScreen(screen)

	cells, w, _ := screen.GetContents()
	if got := cells[1*w+1].Runes[0]; got != 'k' {
		t.Errorf("Expected 'k' on screen, got %q", got)
	}
}
