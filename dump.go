package polyui

import (
	"fmt"
	"strings"
)

// Dump renders the subtree as an indented listing, one component per line
// with its geometry, input state and any active scroll offsets.
func Dump(c *Component) string {
	var b strings.Builder
	dumpInto(&b, c, 0)
	return b.String()
}

func dumpInto(b *strings.Builder, c *Component, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(b, "%s [%.0f,%.0f %.0fx%.0f] %s", c, c.x, c.y, c.width, c.height, c.inputState)
	if !c.renders {
		b.WriteString(" hidden")
	}
	if c.layoutIgnored {
		b.WriteString(" ignored")
	}
	if off := c.ScrollOffset(); !off.IsZero() {
		fmt.Fprintf(b, " scroll(%.0f,%.0f)", off.X, off.Y)
	}
	if n := len(c.operations); n > 0 {
		fmt.Fprintf(b, " ops=%d", n)
	}
	b.WriteByte('\n')
	for _, k := range c.children {
		dumpInto(b, k, depth+1)
	}
}
