package cpre

import (
	"fmt"
	"path"
)

// handleInclude resolves and splices in the contents of an #include target,
// recursively running it through the engine before inlining it.
func handleInclude(c *cursor) error {
	if c.depth >= c.cfg.inclusionLimit() {
		return c.preprocessErrorAt(c.replaceStart, fmt.Sprintf("Inclusions has exceeded the limit of %d.", c.cfg.inclusionLimit()))
	}

	c.skipWhitespaceUntilEOL()
	opener, ok := c.peek()
	if !ok || (opener != '"' && opener != '<') {
		return c.parseErrorAt(c.pos, `Expected " or <.`)
	}
	c.advance()

	relative := opener == '"'
	closer := byte('"')
	if !relative {
		closer = '>'
	}
	name, found := c.collectUntilString(string(closer))
	if !found {
		return c.parseErrorAt(c.pos, `Expected " or <.`)
	}
	end := c.pos

	resolved, text, ok := resolveInclude(c.cfg, c.sourceName, name, relative)
	if !ok {
		return c.preprocessErrorAt(c.replaceStart, fmt.Sprintf("Failed to include '%s': It does not exist.", name))
	}

	if c.guarded[resolved] {
		c.splice(c.replaceStart, end, "")
		return nil
	}

	out, err := runSource(resolved, text, c.cfg, c.store, c.guarded, c.depth+1)
	if err != nil {
		return err
	}
	c.splice(c.replaceStart, end, out)
	c.store.setRaw("FILE", c.sourceName)
	return nil
}

// resolveInclude looks up name directly in the configured source map first;
// for a quoted (relative) include that misses, it retries joined against
// the directory of the including source.
func resolveInclude(cfg *Config, currentSource, name string, relative bool) (resolvedName, text string, ok bool) {
	if v, found := cfg.Sources[name]; found {
		return name, v, true
	}
	if relative {
		candidate := path.Join(path.Dir(currentSource), name)
		if v, found := cfg.Sources[candidate]; found {
			return candidate, v, true
		}
	}
	return "", "", false
}
