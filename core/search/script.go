package search

// Arabic Unicode block
const (
	arabicBlockStart = 0x0600
	arabicBlockEnd   = 0x06FF
)

// NeedsScriptAwareMatch reports whether the term contains a code point in
// the Arabic block. Plain substring matching can miss such terms when the
// storage charset differs from the comparison charset, so the relation
// search path switches to a charset-normalizing comparison instead.
func NeedsScriptAwareMatch(term string) bool {
	for _, r := range term {
		if r >= arabicBlockStart && r <= arabicBlockEnd {
			return true
		}
	}
	return false
}
