// Package safe64 implements the radix-64 member of the safe-encoding family: a
// URL/filename-safe, case-sensitive alphabet with no confusable-character substitutions.
package safe64
