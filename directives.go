package cpre

import (
	"fmt"
	"strings"
)

// handleDefine parses a #define directive's macro name and optional value
// and records it in the current macro store.
func handleDefine(c *cursor) error {
	c.skipWhitespaceUntilEOL()
	name := c.collectToken()
	if name == "" {
		return c.parseErrorAt(c.pos, "#define directive is missing name of macro.")
	}
	if isBuiltinMacro(name) {
		return c.preprocessErrorAt(c.replaceStart, fmt.Sprintf("Cannot use macro name '%s', it is a built-in macro.", name))
	}

	c.skipWhitespaceUntilEOL()
	value := ""
	if b, ok := c.peek(); ok && b != '\n' && b != '\r' {
		raw := strings.TrimSpace(c.collectLine())
		if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
			raw = raw[1 : len(raw)-1]
		}
		value = raw
	}

	_ = c.store.define(name, value)
	c.consumeEOL()
	c.splice(c.replaceStart, c.pos, "")
	return nil
}

// handleUndef parses a #undef directive's macro name and removes it from
// the current macro store.
func handleUndef(c *cursor) error {
	c.skipWhitespaceUntilEOL()
	name := c.collectToken()
	if name == "" {
		return c.parseErrorAt(c.pos, "#undef directive is missing name of macro.")
	}
	if isBuiltinMacro(name) {
		return c.preprocessErrorAt(c.replaceStart, fmt.Sprintf("Cannot use macro name '%s', it is a built-in macro.", name))
	}

	_ = c.store.undef(name)
	c.consumeEOL()
	c.splice(c.replaceStart, c.pos, "")
	return nil
}

// handleError raises a PreprocessError carrying the quoted message of a
// #error directive. Because a rejected conditional branch deletes its whole
// body, a #error inside a false branch is never reached here — this only
// runs for a #error the conditional engine actually kept.
func handleError(c *cursor) error {
	if !c.seekToChar('"') {
		return c.preprocessErrorAt(c.replaceStart, "")
	}
	c.advance()
	start := c.pos
	for !c.eof() && c.buf[c.pos] != '"' && c.buf[c.pos] != '\n' {
		c.pos++
	}
	msg := string(c.buf[start:c.pos])
	return c.preprocessErrorAt(c.replaceStart, msg)
}

// handlePragma parses a #pragma directive. Only "once" is recognized.
func handlePragma(c *cursor) error {
	c.skipWhitespaceUntilEOL()
	name := c.collectToken()
	if name != "once" {
		return c.preprocessErrorAt(c.replaceStart, fmt.Sprintf("Pragma extension '%s' is unsupported.", name))
	}
	c.guarded[c.sourceName] = true
	c.consumeEOL()
	c.splice(c.replaceStart, c.pos, "")
	return nil
}
