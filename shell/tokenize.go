package shell

import "github.com/stxent/vfsshell/errkind"

// maxTokens bounds one line's token count (§4.10); overflow reports Full.
const maxTokens = 16

// Tokenize splits line per the shell grammar (§6): whitespace-separated
// tokens, with `"..."` quoting that suppresses whitespace splitting and is
// stripped from the result. Trailing control bytes are trimmed before
// parsing. Empty input reports Empty with no tokens.
func Tokenize(line string) ([]string, errkind.Kind) {
	line = trimTrailingControl(line)
	if line == "" {
		return nil, errkind.Empty
	}

	var tokens []string
	var cur []byte
	inQuotes := false
	has := false

	flush := func() {
		if has {
			tokens = append(tokens, string(cur))
			cur = cur[:0]
			has = false
		}
	}

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
			has = true
		case (c == ' ' || c == '\t') && !inQuotes:
			flush()
		default:
			cur = append(cur, c)
			has = true
		}
	}
	flush()

	if len(tokens) == 0 {
		return nil, errkind.Empty
	}
	if len(tokens) > maxTokens {
		return nil, errkind.Full
	}
	return tokens, errkind.Ok
}

func trimTrailingControl(s string) string {
	end := len(s)
	for end > 0 && s[end-1] < 0x20 {
		end--
	}
	return s[:end]
}
