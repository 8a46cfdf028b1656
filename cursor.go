package cpre

// cursor is the mutable scanning context over a single source buffer.
// replaceStart/replaceEnd mark the span of the directive currently being
// rewritten; store and guarded are shared with the rest of the current
// top-level source's inclusion tree, while depth is this source's own
// inclusion depth.
type cursor struct {
	buf []byte
	pos int

	replaceStart int
	replaceEnd   int

	sourceName string
	store      *macroStore
	depth      uint
	guarded    map[string]bool
	cfg        *Config
}

func newCursor(name string, text string, store *macroStore, depth uint, guarded map[string]bool, cfg *Config) *cursor {
	return &cursor{
		buf:        []byte(text),
		sourceName: name,
		store:      store,
		depth:      depth,
		guarded:    guarded,
		cfg:        cfg,
	}
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.buf)
}

// advance consumes and returns the byte at pos, or (0, false) at EOF.
func (c *cursor) advance() (byte, bool) {
	if c.eof() {
		return 0, false
	}
	b := c.buf[c.pos]
	c.pos++
	return b, true
}

// peek returns the byte at pos without consuming it.
func (c *cursor) peek() (byte, bool) {
	if c.eof() {
		return 0, false
	}
	return c.buf[c.pos], true
}

// peekAt returns the byte offset bytes ahead of pos without consuming.
func (c *cursor) peekAt(offset int) (byte, bool) {
	i := c.pos + offset
	if i < 0 || i >= len(c.buf) {
		return 0, false
	}
	return c.buf[i], true
}

// peekLast returns the most recently consumed byte (the one at pos-1).
func (c *cursor) peekLast() (byte, bool) {
	if c.pos <= 0 || c.pos > len(c.buf) {
		return 0, false
	}
	return c.buf[c.pos-1], true
}

// seekToChar advances pos until buf[pos] == b, leaving pos at b (not
// consumed). Returns false if b is never found before EOF.
func (c *cursor) seekToChar(b byte) bool {
	for !c.eof() {
		if c.buf[c.pos] == b {
			return true
		}
		c.pos++
	}
	return false
}

func isSpaceOrTab(b byte) bool { return b == ' ' || b == '\t' }
func isEOLByte(b byte) bool    { return b == '\n' || b == '\r' }

// collectToken collects bytes from pos until any delimiter byte (whitespace
// or EOL), leaving pos at the delimiter (not consumed).
func (c *cursor) collectToken() string {
	start := c.pos
	for !c.eof() {
		b := c.buf[c.pos]
		if isSpaceOrTab(b) || isEOLByte(b) {
			break
		}
		c.pos++
	}
	return string(c.buf[start:c.pos])
}

// collectLine collects the remainder of the current line (up to but not
// including the next '\n' or EOF), leaving pos at the newline (or EOF).
func (c *cursor) collectLine() string {
	start := c.pos
	for !c.eof() && c.buf[c.pos] != '\n' {
		c.pos++
	}
	end := c.pos
	if end > start && c.buf[end-1] == '\r' {
		end--
	}
	return string(c.buf[start:end])
}

// collectUntilString collects bytes from pos up to (not including) the next
// occurrence of term, leaving pos immediately after term. Returns ok=false
// if term is never found, leaving pos at EOF.
func (c *cursor) collectUntilString(term string) (string, bool) {
	rest := string(c.buf[c.pos:])
	idx := indexString(rest, term)
	if idx < 0 {
		collected := rest
		c.pos = len(c.buf)
		return collected, false
	}
	collected := rest[:idx]
	c.pos += idx + len(term)
	return collected, true
}

func indexString(s, term string) int {
	n, m := len(s), len(term)
	if m == 0 {
		return 0
	}
	for i := 0; i+m <= n; i++ {
		if s[i:i+m] == term {
			return i
		}
	}
	return -1
}

// skipWhitespaceUntilEOL advances pos past spaces and tabs, stopping at a
// newline, EOF, or any other byte.
func (c *cursor) skipWhitespaceUntilEOL() {
	for !c.eof() && isSpaceOrTab(c.buf[c.pos]) {
		c.pos++
	}
}

// consumeEOL skips trailing spaces/tabs and, if present, the line's own
// newline (and any preceding carriage return).
func (c *cursor) consumeEOL() {
	c.skipWhitespaceUntilEOL()
	if !c.eof() && c.buf[c.pos] == '\r' {
		c.pos++
	}
	if !c.eof() && c.buf[c.pos] == '\n' {
		c.pos++
	}
}

// seekNextDirective advances pos until it finds a '#' immediately followed
// by one of the given keywords, leaving pos at the '#'. It is not
// nesting-aware: a nested conditional's own #endif will be mistaken for the
// sibling being searched for. Returns false if no match is found before EOF.
func (c *cursor) seekNextDirective(keywords map[string]bool) bool {
	for {
		if !c.seekToChar('#') {
			return false
		}
		save := c.pos
		c.pos++
		kw := c.collectToken()
		if keywords[kw] {
			c.pos = save
			return true
		}
		c.pos = save + 1
	}
}

// splice replaces buf[start:end) with repl and repositions pos to
// start+len(repl).
func (c *cursor) splice(start, end int, repl string) {
	out := make([]byte, 0, len(c.buf)-(end-start)+len(repl))
	out = append(out, c.buf[:start]...)
	out = append(out, repl...)
	out = append(out, c.buf[end:]...)
	c.buf = out
	c.pos = start + len(repl)
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}
