// Package safe85 implements the radix-85 member of the safe-encoding family: an
// integer-multiply codec (85 is not a power of two) using the wider of the two alphabet
// revisions, with five extra punctuation characters beyond the radix-80 alphabet's core set.
package safe85
