// Package safe80 implements the radix-80 member of the safe-encoding family: an
// integer-multiply codec (80 is not a power of two) using the narrower, no-confusable-
// punctuation alphabet that radix85 widens into a full 85-character superset.
package safe80
