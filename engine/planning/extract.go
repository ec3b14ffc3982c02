package planning

import "errors"

// ErrNoJSONObject is returned when the model output contains no complete
// top-level JSON object.
var ErrNoJSONObject = errors.New("no JSON object found in model output")

// ExtractJSONObject returns the first top-level JSON object embedded in
// free text, located by greedy brace matching. Braces inside string
// literals (including escaped quotes) do not count toward the depth.
func ExtractJSONObject(s string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", ErrNoJSONObject
}
