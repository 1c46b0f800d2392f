package stringtable

// StringMap maps string keys to their translation in a single language.
type StringMap map[string]string

// BuildMap folds the table's data rows into one StringMap per language tag.
// The key is taken from column 0. Cells missing from short rows and rows
// with an empty key contribute nothing. When the header repeats a language
// tag, the rightmost column wins.
func (t Table) BuildMap(reserved []string) map[string]StringMap {
	m := make(map[string]StringMap)
	if len(t) == 0 {
		return m
	}

	for i, field := range t.Header() {
		if field == "" || isReserved(field, reserved) {
			continue
		}
		if _, ok := m[field]; !ok {
			m[field] = make(StringMap)
		}
		for _, row := range t[1:] {
			if len(row) == 0 || row[0] == "" || i >= len(row) {
				continue
			}
			m[field][row[0]] = row[i]
		}
	}

	return m
}
