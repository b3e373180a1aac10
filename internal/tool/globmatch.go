package tool

import "strings"

// expandBraces expands brace patterns like {a,b,c} into multiple strings,
// supporting nesting ({a,b{c,d}} -> a, bc, bd). Ported from the recursive
// descent used by the original glob tool's brace expander: find the first
// top-level '{', match its closing '}' respecting nesting depth, split the
// inner text on top-level commas, and recursively expand each alternative
// with the surrounding prefix/suffix reattached.
func expandBraces(pattern string) []string {
	openPos := strings.IndexByte(pattern, '{')
	if openPos == -1 {
		return []string{pattern}
	}

	depth := 0
	closePos := -1
	for i := openPos; i < len(pattern); i++ {
		switch pattern[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				closePos = i
			}
		}
		if closePos != -1 {
			break
		}
	}
	if closePos == -1 {
		return []string{pattern}
	}

	prefix := pattern[:openPos]
	suffix := pattern[closePos+1:]
	inner := pattern[openPos+1 : closePos]

	var alternatives []string
	depth = 0
	start := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				alternatives = append(alternatives, inner[start:i])
				start = i + 1
			}
		}
	}
	alternatives = append(alternatives, inner[start:])

	var results []string
	for _, alt := range alternatives {
		results = append(results, expandBraces(prefix+alt+suffix)...)
	}
	return results
}

// matchSegment matches a single glob segment (no path separators) against a
// string. Supports *, ?, [abc], [^abc]/[!abc] negation, and [a-z] ranges.
func matchSegment(pattern, str string) bool {
	return matchSegmentAt(pattern, 0, str, 0)
}

func matchSegmentAt(pattern string, pi int, str string, si int) bool {
	for pi < len(pattern) && si < len(str) {
		switch pc := pattern[pi]; pc {
		case '*':
			pi++
			for k := si; k <= len(str); k++ {
				if matchSegmentAt(pattern, pi, str, k) {
					return true
				}
			}
			return false
		case '?':
			pi++
			si++
		case '[':
			pi++
			negated := false
			if pi < len(pattern) && (pattern[pi] == '!' || pattern[pi] == '^') {
				negated = true
				pi++
			}
			found := false
			for pi < len(pattern) && pattern[pi] != ']' {
				if pi+2 < len(pattern) && pattern[pi+1] == '-' && pattern[pi+2] != ']' {
					lo, hi := pattern[pi], pattern[pi+2]
					if str[si] >= lo && str[si] <= hi {
						found = true
					}
					pi += 3
				} else {
					if pattern[pi] == str[si] {
						found = true
					}
					pi++
				}
			}
			if pi < len(pattern) {
				pi++ // skip ']'
			}
			if found == negated {
				return false
			}
			si++
		default:
			if pc != str[si] {
				return false
			}
			pi++
			si++
		}
	}

	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}

	return pi == len(pattern) && si == len(str)
}

func splitPathSegments(path string) []string {
	parts := strings.Split(path, "/")
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

// matchGlob matches a full relative path against a glob pattern with **
// support (spanning zero or more path segments).
func matchGlob(pattern, relPath string) bool {
	return matchGlobSegments(splitPathSegments(pattern), 0, splitPathSegments(relPath), 0)
}

func matchGlobSegments(patSegs []string, pi int, pathSegs []string, si int) bool {
	for pi < len(patSegs) && si < len(pathSegs) {
		if patSegs[pi] == "**" {
			pi++
			if pi == len(patSegs) {
				return true
			}
			for k := si; k <= len(pathSegs); k++ {
				if matchGlobSegments(patSegs, pi, pathSegs, k) {
					return true
				}
			}
			return false
		}
		if !matchSegment(patSegs[pi], pathSegs[si]) {
			return false
		}
		pi++
		si++
	}

	for pi < len(patSegs) && patSegs[pi] == "**" {
		pi++
	}

	return pi == len(patSegs) && si == len(pathSegs)
}

// matchAnyPattern reports whether relPath (with filename as its last
// segment) matches pattern, after brace expansion. Patterns containing a
// path separator are matched against the full relative path with **
// support; plain filename patterns are matched against the base name only.
func matchAnyPattern(pattern, relPath, filename string) bool {
	for _, pat := range expandBraces(pattern) {
		if strings.Contains(pat, "/") {
			if matchGlob(pat, relPath) {
				return true
			}
		} else if matchSegment(pat, filename) {
			return true
		}
	}
	return false
}
