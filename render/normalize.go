package render

// Normalize rewrites C printf conversion specifiers that Go's fmt does
// not understand into their fmt equivalents. Length modifiers (hh, h,
// l, ll, L, j, z, t) are dropped and %u and %i become %d; flags, width,
// precision, * and %% pass through untouched, as do specifiers fmt
// already accepts. A format needing no rewriting is returned unchanged
// without allocating.
func Normalize(format string) string {
	var out []byte
	i := 0
	for i < len(format) {
		c := format[i]
		if c != '%' {
			if out != nil {
				out = append(out, c)
			}
			i++
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			if out != nil {
				out = append(out, '%', '%')
			}
			i += 2
			continue
		}

		specStart := i
		j := i + 1
		for j < len(format) && isFlag(format[j]) {
			j++
		}
		for j < len(format) && (isDigit(format[j]) || format[j] == '*') {
			j++
		}
		if j < len(format) && format[j] == '.' {
			j++
			for j < len(format) && (isDigit(format[j]) || format[j] == '*') {
				j++
			}
		}

		modStart := j
		for j < len(format) && isLengthModifier(format[j]) {
			j++
		}
		// A modifier run only counts when a C verb follows it.
		// Otherwise its first character is the verb itself, which
		// keeps fmt verbs like %t intact.
		if j > modStart && (j >= len(format) || !isCVerb(format[j])) {
			j = modStart
		}
		hasModifiers := j > modStart

		if j >= len(format) {
			// Incomplete specifier at the end of the format.
			if out != nil {
				out = append(out, format[specStart:]...)
			}
			break
		}

		verb := format[j]
		switch verb {
		case 'u', 'i':
			verb = 'd'
		}

		if hasModifiers || verb != format[j] {
			if out == nil {
				out = make([]byte, 0, len(format))
				out = append(out, format[:specStart]...)
			}
			out = append(out, format[specStart:modStart]...)
			out = append(out, verb)
		} else if out != nil {
			out = append(out, format[specStart:j+1]...)
		}
		i = j + 1
	}
	if out == nil {
		return format
	}
	return string(out)
}

func isFlag(c byte) bool {
	switch c {
	case '-', '+', ' ', '#', '0':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLengthModifier(c byte) bool {
	switch c {
	case 'h', 'l', 'L', 'j', 'z', 't':
		return true
	}
	return false
}

func isCVerb(c byte) bool {
	switch c {
	case 'd', 'i', 'u', 'o', 'x', 'X', 'e', 'E', 'f', 'F', 'g', 'G', 'a', 'A', 'c', 's', 'p', 'n':
		return true
	}
	return false
}
