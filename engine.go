package cpre

import "time"

// dispatchDirective recognizes a directive keyword after '#' and routes it
// to the appropriate handler. An unrecognized or disabled-by-config keyword
// is left in the buffer untouched.
func dispatchDirective(c *cursor, keyword string) error {
	switch keyword {
	case "include":
		if !c.cfg.EnableIncludeDirectives {
			return nil
		}
		return handleInclude(c)

	case "if", "ifdef", "ifndef":
		if !c.cfg.EnableConditionalDirectives {
			return nil
		}
		return handleConditionalBlock(c, keyword)

	case "elif", "else", "endif":
		if !c.cfg.EnableConditionalDirectives {
			return nil
		}
		return handleRogueConditional(c)

	case "define":
		if !c.cfg.EnableMacroDefineDirectives {
			return nil
		}
		return handleDefine(c)

	case "undef":
		if !c.cfg.EnableMacroUndefineDirectives {
			return nil
		}
		return handleUndef(c)

	case "error":
		if !c.cfg.EnableErrorDirectives {
			return nil
		}
		return handleError(c)

	case "pragma":
		if !c.cfg.EnablePragmaDirectives {
			return nil
		}
		return handlePragma(c)

	default:
		return nil
	}
}

// runSource scans one source's text for directives and macro references,
// rewriting the buffer in place and returning the fully processed result.
func runSource(name, text string, cfg *Config, store *macroStore, guarded map[string]bool, depth uint) (string, error) {
	c := newCursor(name, text, store, depth, guarded, cfg)

	savedFile, _ := store.get("FILE")
	store.setRaw("FILE", name)
	store.setRaw("LINE", "1")
	defer store.setRaw("FILE", savedFile)

	sawUnderscore := false
	for !c.eof() {
		b, _ := c.advance()
		switch {
		case b == '#':
			c.replaceStart = c.pos - 1
			keyword := c.collectToken()
			if err := dispatchDirective(c, keyword); err != nil {
				return "", err
			}
			sawUnderscore = false
		case b == '_':
			if sawUnderscore && cfg.EnableMacroExpansion {
				if err := expandMacro(c); err != nil {
					return "", err
				}
				sawUnderscore = false
			} else {
				sawUnderscore = true
			}
		default:
			sawUnderscore = false
		}
	}

	return string(c.buf), nil
}

// Run processes every source selected by cfg (MainSources if set, else all
// of Sources) and returns their rewritten text.
func Run(cfg Config) (Result, error) {
	date, clock, timestamp := builtinTimeStrings(time.Now())

	initial := cloneMacros(cfg.Macros)
	initial["DATE"] = date
	initial["TIME"] = clock
	initial["TIMESTAMP"] = timestamp

	selected := cfg.MainSources
	if len(selected) == 0 {
		selected = cfg.Sources
	}

	result := Result{
		Sources:   make(map[string]string, len(selected)),
		Date:      date,
		Time:      clock,
		Timestamp: timestamp,
	}

	for name, text := range selected {
		store := newMacroStore(initial)
		guarded := map[string]bool{}
		out, err := runSource(name, text, &cfg, store, guarded, 0)
		if err != nil {
			return Result{}, err
		}
		result.Sources[name] = out
	}

	return result, nil
}

// builtinTimeStrings computes the strings bound to __DATE__, __TIME__ and
// __TIMESTAMP__ for one Run, following familiar C-style layouts.
func builtinTimeStrings(now time.Time) (date, clock, timestamp string) {
	return now.Format("Jan _2 2006"), now.Format("15:04:05"), now.Format("Mon Jan _2 15:04:05 2006")
}
