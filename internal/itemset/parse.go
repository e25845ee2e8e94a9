package itemset

import (
	"fmt"
	"strings"

	"github.com/cartwise/cartwise/internal/common"
)

// Parse decodes a textual set encoding into a Set. Rule exports encode item
// sets in a handful of ways depending on the tool that produced them:
//
//	frozenset({'milk', 'bread'})
//	{'milk', 'bread'}
//	["milk", "bread"]
//	milk, bread
//
// Elements may be single-quoted, double-quoted, or bare. The grammar is
// fixed; input is never evaluated. Malformed text yields a DataFormatError.
func Parse(text string) (Set, error) {
	body, err := stripDelimiters(strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}

	elems, err := splitElements(body)
	if err != nil {
		return nil, err
	}

	set := make(Set, len(elems))
	for _, e := range elems {
		set[e] = struct{}{}
	}
	return set, nil
}

// Format encodes a Set as a JSON-style array of double-quoted items, the
// canonical encoding. Parse(Format(s)) equals s.
func Format(s Set) string {
	items := s.Items()
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = `"` + strings.ReplaceAll(item, `"`, `\"`) + `"`
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// stripDelimiters removes an optional frozenset(...) wrapper and the
// surrounding {} or [] pair, returning the inner element list.
func stripDelimiters(text string) (string, error) {
	if strings.HasPrefix(text, "frozenset(") {
		if !strings.HasSuffix(text, ")") {
			return "", &common.DataFormatError{Msg: fmt.Sprintf("unclosed frozenset in set literal %q", text)}
		}
		text = strings.TrimSpace(text[len("frozenset(") : len(text)-1])
	}

	pairs := map[byte]byte{'{': '}', '[': ']'}
	if len(text) > 0 {
		if closer, ok := pairs[text[0]]; ok {
			if text[len(text)-1] != closer {
				return "", &common.DataFormatError{Msg: fmt.Sprintf("mismatched delimiters in set literal %q", text)}
			}
			text = strings.TrimSpace(text[1 : len(text)-1])
		}
	}
	return text, nil
}

// splitElements splits a comma-separated element list, honoring single and
// double quotes with backslash escapes.
func splitElements(body string) ([]string, error) {
	if body == "" {
		return nil, nil
	}

	var elems []string
	var cur strings.Builder
	var quote byte // active quote character, 0 if none
	quoted := false
	escaped := false

	flush := func() error {
		text := cur.String()
		if !quoted {
			text = strings.TrimSpace(text)
		}
		if text == "" && !quoted {
			return &common.DataFormatError{Msg: fmt.Sprintf("empty element in set literal %q", body)}
		}
		elems = append(elems, text)
		cur.Reset()
		quoted = false
		return nil
	}

	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case escaped:
			cur.WriteByte(c)
			escaped = false
		case quote != 0 && c == '\\':
			escaped = true
		case quote != 0 && c == quote:
			quote = 0
		case quote != 0:
			cur.WriteByte(c)
		case c == '\'' || c == '"':
			if strings.TrimSpace(cur.String()) != "" {
				return nil, &common.DataFormatError{Msg: fmt.Sprintf("unexpected quote at position %d in set literal %q", i, body)}
			}
			cur.Reset()
			quote = c
			quoted = true
		case c == ',':
			if err := flush(); err != nil {
				return nil, err
			}
		case quoted && !isSpace(c):
			return nil, &common.DataFormatError{Msg: fmt.Sprintf("trailing text after quoted element in set literal %q", body)}
		default:
			if !quoted {
				cur.WriteByte(c)
			}
		}
	}

	if quote != 0 || escaped {
		return nil, &common.DataFormatError{Msg: fmt.Sprintf("unterminated quote in set literal %q", body)}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return elems, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
