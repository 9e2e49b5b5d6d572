package object

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/tomz197/warpteroids/internal/vector"
)

// PathNode is a stop of an AnimatedText: the text reaches X after Time
// frames spent travelling from the previous node.
type PathNode struct {
	X    float64
	Time int
}

// AnimatedText is a line of text sliding horizontally through its path
// nodes. It is cosmetic and has no effect on the simulation.
type AnimatedText struct {
	Value string
	Y     float64
	Align Align
	Color color.RGBA

	x     float64
	nodes []PathNode
	next  int
	timer int
	step  float64
}

// NewAnimatedText creates a text at the first node's X travelling through
// the remaining nodes.
func NewAnimatedText(value string, y float64, nodes ...PathNode) *AnimatedText {
	t := &AnimatedText{
		Value: value,
		Y:     y,
		Align: AlignCenter,
		Color: colornames.White,
		nodes: nodes,
	}
	if len(nodes) > 0 {
		t.x = nodes[0].X
	}
	t.advance()
	return t
}

// X returns the current horizontal position.
func (t *AnimatedText) X() float64 {
	return t.x
}

// Done reports whether the text reached its last node.
func (t *AnimatedText) Done() bool {
	return t.next >= len(t.nodes)
}

func (t *AnimatedText) advance() {
	t.next++
	t.timer = 0
	if t.Done() {
		return
	}
	n := t.nodes[t.next]
	dist := n.X - t.x
	if n.Time <= 0 {
		t.step = dist
		return
	}
	t.step = dist / float64(n.Time)
}

// Act moves the text by one frame.
func (t *AnimatedText) Act() {
	if t.Done() {
		return
	}
	t.x += t.step
	t.timer++
	if t.timer >= t.nodes[t.next].Time {
		t.x = t.nodes[t.next].X
		t.advance()
	}
}

// Render draws the text at its current position.
func (t *AnimatedText) Render(s Surface) {
	if t.Value == "" {
		return
	}
	s.Text(vector.New(t.x, t.Y), t.Value, t.Align, t.Color)
}
