package cpre

import (
	"fmt"
	"strconv"
)

// expandMacro resolves and splices in a __NAME__ macro reference. It is
// invoked with the two leading underscores already consumed, i.e. c.pos
// sits right after them.
func expandMacro(c *cursor) error {
	macroStart := c.pos - 2

	name, found := c.collectUntilString("__")
	if !found {
		// No closing "__" before EOF: leave the two underscores untouched
		// rather than guess at a name that was never terminated.
		c.pos = macroStart + 2
		return nil
	}
	macroEnd := c.pos

	var value string
	if name == "LINE" {
		line, _ := lineCol(c.buf, macroStart)
		value = strconv.Itoa(line)
	} else {
		v, ok := c.store.get(name)
		if !ok {
			return c.parseErrorAt(macroStart, fmt.Sprintf("Cannot expand macro __%s__, it is undefined.", name))
		}
		value = v
	}

	c.splice(macroStart, macroEnd, value)
	return nil
}
