package bar

import (
	"testing"

	"github.com/1broseidon/sysmon/internal/platform"
)

func TestRenderContextTextTruncatesToWidget(t *testing.T) {
	s := &fakeSurface{width: 200, height: 16, charWidth: 6}
	ctx := newRenderContext(s, placement{anchor: Start, offset: 0, width: 40}, 1, 0)

	ctx.Text(16, "CPU: 1x i7-8550U")

	if len(s.ops) != 1 || s.ops[0] != `text 16 12 "CPU:" #000000` {
		t.Fatalf("ops = %v", s.ops)
	}
}

func TestRenderContextTextWithoutRoom(t *testing.T) {
	s := &fakeSurface{width: 200, height: 16, charWidth: 6}
	ctx := newRenderContext(s, placement{anchor: Start, offset: 0, width: 20}, 1, 0)

	ctx.Text(18, "x")

	if len(s.ops) != 0 {
		t.Fatalf("ops = %v, want none", s.ops)
	}
}

func TestRenderContextBlockGeometry(t *testing.T) {
	s := &fakeSurface{width: 1000, height: 32, charWidth: 6}
	ctx := newRenderContext(s, placement{anchor: End, offset: 0, width: 120}, 2, 0xFFFFFF)

	ctx.SetColor(0x8971C1).Block(16, 30).ResetColor().Block(46, 0)

	want := "rect 792 8 60 16 #8971c1"
	if len(s.ops) != 1 || s.ops[0] != want {
		t.Fatalf("ops = %v, want [%s]", s.ops, want)
	}
	if s.color != 0xFFFFFF {
		t.Fatalf("color after ResetColor = %06x", uint32(s.color))
	}
}

func TestRenderContextIconCentred(t *testing.T) {
	s := &fakeSurface{width: 1000, height: 16, charWidth: 6}
	ctx := newRenderContext(s, placement{anchor: Start, offset: 100, width: 50}, 1, 0)

	ctx.Icon(4, platform.Bitmap{Width: 9, Height: 9})

	if len(s.ops) != 1 || s.ops[0] != "bitmap 104 3 9x9" {
		t.Fatalf("ops = %v", s.ops)
	}
}
