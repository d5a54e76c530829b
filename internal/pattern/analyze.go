package pattern

import "strconv"

// atom is one synthesizable unit: a character class repeated between min and
// max times.
type atom struct {
	class string
	min   int
	max   int
}

// maxAtomRepeat caps repetition counts so a degenerate facet cannot produce
// pathological output sizes.
const maxAtomRepeat = 256

// parseAtoms performs the structural analysis: it accepts concatenations of
// literal characters and bracketed character classes, each optionally
// quantified with ?, {n} or {m,n}. Anything else (alternation, anchors,
// nested groups, negated classes) is rejected and the caller falls back.
func parseAtoms(pattern string) ([]atom, bool) {
	var atoms []atom
	i := 0
	for i < len(pattern) {
		var class string
		switch pattern[i] {
		case '[':
			end := classEnd(pattern, i)
			if end < 0 {
				return nil, false
			}
			expanded, ok := expandClass(pattern[i+1 : end])
			if !ok {
				return nil, false
			}
			class = expanded
			i = end + 1
		case '\\':
			if i+1 >= len(pattern) {
				return nil, false
			}
			expanded, ok := expandEscape(pattern[i+1])
			if !ok {
				return nil, false
			}
			class = expanded
			i += 2
		case '(', ')', '|', '^', '$', '*', '+', '?', '{', '}', '.':
			return nil, false
		default:
			class = string(pattern[i])
			i++
		}

		minCount, maxCount := 1, 1
		if i < len(pattern) {
			switch pattern[i] {
			case '{':
				m, n, next, ok := parseQuantifier(pattern, i)
				if !ok {
					return nil, false
				}
				minCount, maxCount = m, n
				i = next
			case '?':
				minCount = 0
				i++
			}
		}
		atoms = append(atoms, atom{class: class, min: minCount, max: maxCount})
	}
	if len(atoms) == 0 {
		return nil, false
	}
	return atoms, true
}

// classEnd returns the index of the closing bracket of a class opened at
// open, or -1.
func classEnd(pattern string, open int) int {
	for i := open + 1; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case ']':
			return i
		}
	}
	return -1
}

// expandClass expands a bracket class body like "A-Za-z0-9_" into its member
// characters. Negated classes and non-ASCII ranges are rejected.
func expandClass(body string) (string, bool) {
	if body == "" || body[0] == '^' {
		return "", false
	}
	var out []byte
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' {
			if i+1 >= len(body) {
				return "", false
			}
			expanded, ok := expandEscape(body[i+1])
			if !ok {
				return "", false
			}
			out = append(out, expanded...)
			i++
			continue
		}
		if i+2 < len(body) && body[i+1] == '-' && body[i+2] != ']' {
			lo, hi := c, body[i+2]
			if hi < lo || hi >= 0x80 {
				return "", false
			}
			for ch := lo; ; ch++ {
				out = append(out, ch)
				if ch == hi {
					break
				}
			}
			i += 2
			continue
		}
		if c >= 0x80 {
			return "", false
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return "", false
	}
	return string(out), true
}

func expandEscape(c byte) (string, bool) {
	switch c {
	case 'd':
		return digits, true
	case '-', '.', '\\', '[', ']', '(', ')', '{', '}', '+', '*', '?', '|', '^', '$':
		return string(c), true
	default:
		return "", false
	}
}

// parseQuantifier parses {n} or {m,n} starting at the opening brace.
func parseQuantifier(pattern string, open int) (minCount, maxCount, next int, ok bool) {
	close := -1
	for i := open + 1; i < len(pattern); i++ {
		if pattern[i] == '}' {
			close = i
			break
		}
	}
	if close < 0 {
		return 0, 0, 0, false
	}
	body := pattern[open+1 : close]
	comma := -1
	for i := 0; i < len(body); i++ {
		if body[i] == ',' {
			comma = i
			break
		}
	}
	if comma < 0 {
		n, err := strconv.Atoi(body)
		if err != nil || n < 0 || n > maxAtomRepeat {
			return 0, 0, 0, false
		}
		return n, n, close + 1, true
	}
	m, err := strconv.Atoi(body[:comma])
	if err != nil || m < 0 {
		return 0, 0, 0, false
	}
	n, err := strconv.Atoi(body[comma+1:])
	if err != nil || n < m || n > maxAtomRepeat {
		return 0, 0, 0, false
	}
	return m, n, close + 1, true
}
