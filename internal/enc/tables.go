package enc

import "sync"

// InitDecodeTable installs d's lazy decode table, built from d.EncodeTable plus the given
// whitespace and substitution rules. Radix packages call this once, from their package-level
// descriptor initialization, since Descriptor.decodeTable is unexported.
func InitDecodeTable(d *Descriptor, whitespace []byte, aliasUpper bool, extra map[byte]byte) {
	d.decodeTable = NewDecodeTableFunc(d.EncodeTable, whitespace, aliasUpper, extra)
}

// NewDecodeTableFunc builds the lazy decode-table constructor installed on a Descriptor.
// It mirrors the construction the C original performs at build time (spec's Design Notes,
// §9: "Static alphabet tables -> compile-time constants or lazy singletons") and the
// sync.OnceValue idiom used by the retrieved kitty/base85 reference implementation.
//
// encodeTable maps decode-value -> canonical character. whitespace lists characters that
// decode to Whitespace. aliasUpper, when true, additionally maps the uppercase form of every
// alphabetic canonical character to the same value as its lowercase form. extra lists
// additional confusable-character substitutions (e.g. 'O' -> the value of '0').
func NewDecodeTableFunc(encodeTable []byte, whitespace []byte, aliasUpper bool, extra map[byte]byte) func() *[256]byte {
	return sync.OnceValue(func() *[256]byte {
		var table [256]byte
		for i := range table {
			table[i] = Invalid
		}
		for _, c := range whitespace {
			table[c] = Whitespace
		}
		for value, c := range encodeTable {
			table[c] = byte(value)
			if aliasUpper && c >= 'a' && c <= 'z' {
				table[c-('a'-'A')] = byte(value)
			}
		}
		for alias, canonical := range extra {
			table[alias] = table[canonical]
		}
		return &table
	})
}
