package treeview

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/segtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/term"
)

// Kind classifies nodes for display.
type Kind int

// Kinds of nodes, each of which may get its own color.
const (
	Inner Kind = iota
	Leaf
	Padding
)

// Config represents a set of configuration parameters for console output.
type Config struct {
	LineWidth int            // target line length in fixed width positions
	Context   *uax11.Context // context for width calculations, may be nil
}

// Console is a type for outputting segment trees to a console with a fixed
// width font.
type Console struct {
	colors map[Kind]*color.Color
}

// NewConsole creates a new console formatter. colors maps node kinds to
// display colors; it may contain a subset of kinds only, or be nil for a
// default palette.
func NewConsole(colors map[Kind]*color.Color) *Console {
	c := &Console{colors: colors}
	if colors == nil {
		c.colors = makeDefaultPalette()
	}
	return c
}

func makeDefaultPalette() map[Kind]*color.Color {
	return map[Kind]*color.Color{
		Inner:   color.New(color.FgRed),
		Leaf:    color.New(color.FgBlue),
		Padding: color.New(color.FgHiBlack),
	}
}

// Print outputs a tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive). Config.Context
// will also be created based on heuristics from the user environment.
func Print(tree segtree.Layout, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return NewConsole(nil).Output(tree, os.Stdout, config)
}

// cell is the display of a single node, or a part of it if the node's
// display does not fit on a line.
type cell struct {
	text  string
	kind  Kind
	width int
}

// Output writes every level of tree to w, one or more lines per level.
//
// It is safe to have config.Context set to nil. In this case,
// uax11.LatinContext is used.
func (c *Console) Output(tree segtree.Layout, w io.Writer, config *Config) error {
	if tree == nil || config == nil {
		return errors.New("illegal argument: nil")
	} else if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	levels := make([][]cell, 0, 8)
	err := segtree.Walk(tree, func(node segtree.Node) error {
		if node.Depth() == len(levels) {
			levels = append(levels, nil)
		}
		cl := cell{kind: Inner}
		switch {
		case tree.Padding(node.ID):
			cl.kind, cl.text = Padding, node.Segment.String()
		case node.IsLeaf():
			cl.kind = Leaf
			fallthrough
		default:
			cl.text = fmt.Sprintf("%s=%s", node.Segment, tree.Label(node.ID))
		}
		cl.width = width(cl.text, config.Context)
		levels[node.Depth()] = append(levels[node.Depth()], cl)
		return nil
	})
	if err != nil {
		return err
	}
	for depth, level := range levels {
		prefix := fmt.Sprintf("%2d │ ", depth)
		avail := max(config.LineWidth-width(prefix, config.Context), 1)
		lines := firstFit(level, avail, config.Context)
		tracer().Debugf("tree level %d wrapped into %d lines of %d en", depth, len(lines), avail)
		for i, line := range lines {
			if i > 0 {
				prefix = "   │ "
			}
			if _, err = io.WriteString(w, prefix); err != nil {
				return err
			}
			for j, cl := range line {
				if j > 0 {
					io.WriteString(w, " ")
				}
				if err = c.styledText(cl, w); err != nil {
					return err
				}
			}
			if _, err = io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Console) styledText(cl cell, w io.Writer) error {
	if col, ok := c.colors[cl.kind]; ok {
		_, err := col.Fprint(w, cl.text)
		return err
	}
	_, err := io.WriteString(w, cl.text)
	return err
}

/*
firstFit distributes the cells of a tree level onto lines of a given width,
separating cells by a single space:

	1. |  SpaceLeft := LineWidth
	2. |  for each Cell in Level do
	3. |      if (Width(Cell) + SpaceWidth) > SpaceLeft
	4. |           start a new line with Cell
	5. |           SpaceLeft := LineWidth - Width(Cell)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - (Width(Cell) + SpaceWidth)

Cells wider than a line are broken up first.
*/
func firstFit(level []cell, linewidth int, context *uax11.Context) [][]cell {
	lines := make([][]cell, 0, 4)
	var line []cell
	spaceleft := linewidth
	for _, cl := range level {
		for _, piece := range breakCell(cl, linewidth, context) {
			if len(line) == 0 {
				line = append(line, piece)
				spaceleft = linewidth - piece.width
			} else if piece.width+1 > spaceleft {
				lines = append(lines, line)
				line = []cell{piece}
				spaceleft = linewidth - piece.width
			} else {
				line = append(line, piece)
				spaceleft -= piece.width + 1
			}
		}
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// breakCell splits a cell wider than linewidth at line break opportunities.
// Fragments which are too long by themselves are not broken any further.
func breakCell(cl cell, linewidth int, context *uax11.Context) []cell {
	if cl.width <= linewidth {
		return []cell{cl}
	}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(strings.NewReader(cl.text))
	pieces := make([]cell, 0, 2)
	var piece strings.Builder
	pwidth := 0
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		fraglen := width(frag, context)
		if pwidth > 0 && pwidth+fraglen > linewidth {
			pieces = append(pieces, cell{text: strings.TrimRight(piece.String(), " "), kind: cl.kind})
			piece.Reset()
			pwidth = 0
		}
		piece.WriteString(frag)
		pwidth += fraglen
	}
	if piece.Len() > 0 {
		pieces = append(pieces, cell{text: piece.String(), kind: cl.kind})
	}
	for i := range pieces {
		pieces[i].width = width(pieces[i].text, context)
	}
	return pieces
}

var setupGraphemes sync.Once

func width(s string, context *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 80
		} else if w > 20 {
			config.LineWidth = w - 2
		} else {
			config.LineWidth = 20
		}
	} else {
		config.LineWidth = 80
	}
	tracer().Infof("setting line length to %d en", config.LineWidth)
	return config
}
