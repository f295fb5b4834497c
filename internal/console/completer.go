package console

import "strings"

// PrefixCompleter completes against a fixed word list: every word that starts
// with the (lower-cased) line, or the whole list when nothing matches.
func PrefixCompleter(words ...string) Completer {
	all := make([]string, len(words))
	copy(all, words)

	return func(line string) []string {
		prefix := strings.ToLower(line)
		var hits []string
		for _, w := range all {
			if strings.HasPrefix(w, prefix) {
				hits = append(hits, w)
			}
		}
		if len(hits) == 0 {
			out := make([]string, len(all))
			copy(out, all)
			return out
		}
		return hits
	}
}
