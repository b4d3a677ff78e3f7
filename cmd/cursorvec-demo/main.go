// Package main is an interactive terminal browser over a cursorvec
// container. It exists to poke at the cursor state machine by hand:
// movement, wraparound, desync after raw mutation, and resync.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/cursorvec"
	"github.com/dshills/cursorvec/seq"
)

func main() {
	os.Exit(run())
}

func run() int {
	var rotate bool
	var count int

	flag.BoolVar(&rotate, "rotate", false, "Wrap cursor movement around sequence bounds")
	flag.IntVar(&count, "n", 12, "Number of initial items")
	flag.Parse()

	if count < 0 {
		count = 0
	}
	items := make([]string, count)
	for i := range items {
		items[i] = fmt.Sprintf("item-%02d", i)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	b := &browser{
		screen:   screen,
		vec:      cursorvec.New(items, cursorvec.WithRotatable(rotate)),
		nextItem: count,
		status:   "ready",
	}
	b.loop()
	return 0
}

type browser struct {
	screen   tcell.Screen
	vec      *cursorvec.CursorVec[string]
	nextItem int
	status   string
}

func (b *browser) loop() {
	for {
		b.draw()
		switch ev := b.screen.PollEvent().(type) {
		case *tcell.EventResize:
			b.screen.Sync()
		case *tcell.EventKey:
			if !b.handleKey(ev) {
				return
			}
		}
	}
}

func (b *browser) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyDown:
		b.report("next", b.vec.Next())
	case tcell.KeyUp:
		b.report("prev", b.vec.Prev())
	case tcell.KeyPgDn:
		b.report("next x5", b.vec.NextN(5))
	case tcell.KeyPgUp:
		b.report("prev x5", b.vec.PrevN(5))
	case tcell.KeyHome:
		b.vec.SetCursor(0)
		b.report("home", b.vec.Current())
	case tcell.KeyEnd:
		b.vec.SetCursor(b.vec.Len() - 1)
		b.report("end", b.vec.Current())
	case tcell.KeyRune:
		return b.handleRune(ev.Rune())
	}
	return true
}

func (b *browser) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'j':
		b.report("next", b.vec.Next())
	case 'k':
		b.report("prev", b.vec.Prev())
	case 'r':
		b.vec.SetRotatable(!b.vec.Rotatable())
		b.status = fmt.Sprintf("rotatable=%v", b.vec.Rotatable())
	case 'a':
		b.vec.Append(fmt.Sprintf("item-%02d", b.nextItem))
		b.nextItem++
		b.status = "appended"
	case 'd':
		// Delete the current element through the resyncing path.
		if idx, ok := b.vec.Cursor(); ok {
			b.vec.Modify(func(s *seq.Slice[string]) {
				s.Delete(idx)
			})
			b.status = fmt.Sprintf("deleted index %d", idx)
		} else {
			b.status = "nothing to delete"
		}
	case 'x':
		// Raw drain of the second half, deliberately without resync,
		// so the cursor can be observed desynced.
		if b.vec.Container().DrainFrom(b.vec.Len() / 2) {
			b.status = fmt.Sprintf("drained without resync: current=%v", b.vec.Current())
		} else {
			b.status = "nothing to drain"
		}
	case 'u':
		b.vec.UpdateCursor()
		b.report("resynced", b.vec.Current())
	}
	return true
}

func (b *browser) report(op string, st cursorvec.State[string]) {
	if v, ok := st.Value(); ok {
		b.status = fmt.Sprintf("%s -> %s", op, *v)
		return
	}
	b.status = fmt.Sprintf("%s -> %v", op, st)
}

func (b *browser) draw() {
	b.screen.Clear()

	width, height := b.screen.Size()
	cursorIdx, hasCursor := b.vec.Cursor()

	b.drawText(0, 0, tcell.StyleDefault.Bold(true),
		"cursorvec demo  arrows/jk move  pgup/pgdn x5  a add  d delete  x drain  u resync  r rotate  q quit")

	row := 2
	for i, v := range b.vec.Container().All() {
		if row >= height-2 {
			break
		}
		style := tcell.StyleDefault
		marker := "  "
		if hasCursor && i == cursorIdx {
			style = style.Reverse(true)
			marker = "> "
		}
		b.drawText(0, row, style, marker+v)
		row++
	}

	state := b.vec.Current()
	status := fmt.Sprintf("len=%d cursor=%s state=%v rotatable=%v | %s",
		b.vec.Len(), cursorLabel(cursorIdx, hasCursor), state, b.vec.Rotatable(), b.status)
	if len(status) > width && width > 0 {
		status = status[:width]
	}
	b.drawText(0, height-1, tcell.StyleDefault.Reverse(true), status)

	b.screen.Show()
}

func (b *browser) drawText(x, y int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		b.screen.SetContent(col, y, r, nil, style)
		col++
	}
}

func cursorLabel(idx int, ok bool) string {
	if !ok {
		return "unset"
	}
	return fmt.Sprintf("%d", idx)
}
