package stringtable

// Reserved column names of a string table. Neither denotes a language: the
// key column identifies a string and the context column carries translator
// notes.
const (
	ColumnKey     = "key"
	ColumnContext = "context"
)

// ReservedDefault returns the default set of reserved column names.
func ReservedDefault() []string {
	return []string{ColumnKey, ColumnContext}
}

// Tags filters a header row down to its language tags: empty fields and
// reserved column names are dropped, relative order and duplicates are
// preserved. The result is always a subsequence of header.
func Tags(header []string, reserved []string) []string {
	tags := make([]string, 0, len(header))
	for _, field := range header {
		if field == "" || isReserved(field, reserved) {
			continue
		}
		tags = append(tags, field)
	}
	return tags
}

// isReserved matches exactly and case-sensitively.
func isReserved(field string, reserved []string) bool {
	for _, name := range reserved {
		if field == name {
			return true
		}
	}
	return false
}

// Languages returns the language tags of the table's header row.
func (t Table) Languages(reserved []string) []string {
	return Tags(t.Header(), reserved)
}

// LanguageIndex returns the header column index holding the given language
// tag, or -1 when the table has no such column. Reserved columns are never
// language columns, even when their name matches.
func (t Table) LanguageIndex(code string, reserved []string) int {
	for i, field := range t.Header() {
		if field == "" || isReserved(field, reserved) {
			continue
		}
		if field == code {
			return i
		}
	}
	return -1
}
