package ir

import "github.com/sarchlab/hdlcore/bitvector"

// LiteralPayload is an immutable constant value. A context deduplicates
// literals of equal width and bit pattern into a single shared node (its
// literal pool), so equal constants compare identical by NodeID.
type LiteralPayload struct {
	Value bitvector.Value
}
