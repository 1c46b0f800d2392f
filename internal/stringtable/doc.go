// Package stringtable implements the localization string-table data model: a
// CSV document whose first record is a header row holding a key column, a
// context column, and one column per language tag. Every following record is
// one translatable string, keyed by its first field.
package stringtable
