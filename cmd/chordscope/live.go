package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/chordscope/internal/binding"
	"github.com/dshills/chordscope/internal/chord"
	"github.com/dshills/chordscope/internal/config"
	"github.com/dshills/chordscope/internal/prefixtree"
	"github.com/dshills/chordscope/internal/tracker"
)

// runLive captures terminal key events, feeds them to the live
// tracker, and shows the narrowing binding set. Escape exits.
func runLive(bindings []*binding.Parsed, cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	tree := prefixtree.Build(bindings)
	tr := tracker.New(cfg.SequenceTimeout)
	tr.Activate()
	defer tr.Deactivate()

	for {
		drawLive(screen, tr, tree, bindings, cfg)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape {
				return nil
			}
			if raw := chordFromEvent(ev); raw != "" {
				tr.KeyEvent(raw)
			}
		}
	}
}

func drawLive(screen tcell.Screen, tr *tracker.Tracker, tree prefixtree.Tree, bindings []*binding.Parsed, cfg config.Config) {
	screen.Clear()

	style := tcell.StyleDefault
	bold := style.Bold(true)
	dim := style.Dim(true)

	seq := tr.CurrentSequence()
	header := "chordscope live — press chords, Esc to quit"
	drawText(screen, 0, 0, dim, header)

	current := "(none)"
	if len(seq) > 0 {
		current = chord.DisplaySequence(chord.ParseSequence(strings.Join(seq, " ")), cfg.DisplayProfile)
	}
	drawText(screen, 0, 2, bold, "Sequence: "+current)

	keys, complete := tr.NextKeys(tree)
	row := 4
	if complete {
		drawText(screen, 0, row, style, "· current sequence completes a binding")
		row++
	}
	if len(keys) > 0 {
		drawText(screen, 0, row, dim, "Continuations:")
		row++
		for _, k := range keys {
			drawText(screen, 2, row, style, chord.Display(chord.Parse(k), cfg.DisplayProfile))
			row++
		}
	} else if len(seq) > 0 && !complete {
		drawText(screen, 0, row, dim, "Dead end — no known continuation")
		row++
	}

	row++
	matched := tr.FilterBindings(bindings)
	drawText(screen, 0, row, dim, fmt.Sprintf("Matching bindings: %d", len(matched)))
	row++
	_, height := screen.Size()
	for _, b := range matched {
		if row >= height-1 {
			break
		}
		line := fmt.Sprintf("%-24s %s", b.DisplaySequence(cfg.DisplayProfile), b.Command)
		if b.Disabled {
			line += " (disabled)"
		}
		drawText(screen, 2, row, style, line)
		row++
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		screen.SetContent(col, y, r, nil, style)
		col++
	}
}
