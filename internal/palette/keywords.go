package palette

import "strings"

// removalPrefix marks a token in keyword input as a removal request.
const removalPrefix = "!"

// Reconcile merges one comma-separated input string into the keyword set.
// Tokens are trimmed and empty tokens dropped. A token starting with "!"
// removes the remainder from the set (no-op when absent); any other token
// appends to the set unless already present (case-sensitive). Tokens are
// processed in their original interleaved order, so "red,!red" nets to
// nothing while "!red,red" on an empty set yields {red}.
//
// added reports the addition tokens exactly as typed, including ones
// suppressed as duplicates: it records intent, not outcome. Callers use it
// to attach the requested keywords to the palette being saved.
func Reconcile(current []string, input string) (next []string, added []string) {
	next = append([]string(nil), current...)
	added = []string{}

	for _, raw := range strings.Split(input, ",") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}

		if target, isRemoval := strings.CutPrefix(token, removalPrefix); isRemoval {
			next = remove(next, target)
			continue
		}

		added = append(added, token)
		if !contains(next, token) {
			next = append(next, token)
		}
	}

	return next, added
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func remove(set []string, s string) []string {
	for i, v := range set {
		if v == s {
			return append(set[:i], set[i+1:]...)
		}
	}
	return set
}
