package ir

import (
	"sort"

	"github.com/sarchlab/hdlcore/bitvector"
)

// Range is one tile of a proxy's output: bits [DstOffset, DstOffset+Length)
// of the proxy's result come from bits [SrcOffset, SrcOffset+Length) of
// Sources[SrcIndex].
type Range struct {
	SrcIndex int
	SrcOffset uint32
	DstOffset uint32
	Length    uint32
}

// ProxyPayload is the bit-level re-assembly table of a proxy node. Its
// Ranges must tile [0, width) with no overlap.
type ProxyPayload struct {
	Ranges []Range
}

// ValidateTiling reports a ProxyRangeOverlap error if ranges don't exactly
// tile [0, width) with no gaps or overlaps.
func ValidateTiling(width uint32, ranges []Range) error {
	sorted := make([]Range, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].DstOffset < sorted[j].DstOffset })

	var cursor uint32
	for _, r := range sorted {
		if r.DstOffset != cursor {
			return &Error{Kind: ErrProxyRangeOverlap, Message: "proxy ranges leave a gap or overlap at bit offset"}
		}
		cursor += r.Length
	}
	if cursor != width {
		return &Error{Kind: ErrProxyRangeOverlap, Message: "proxy ranges do not tile the full output width"}
	}
	return nil
}

func (n *Node) evalProxy(t uint64, g Graph) bitvector.Value {
	p := n.Payload.(*ProxyPayload)
	out := bitvector.Zero(n.Width)
	for _, r := range p.Ranges {
		src := n.src(g, r.SrcIndex).Eval(t, g)
		piece := src.Slice(r.SrcOffset, r.Length)
		out = bitvector.CopySliceInto(out, r.DstOffset, piece)
	}
	return out
}

// IsIdentity reports whether the proxy has exactly one range covering its
// whole width — such a proxy has the same value as that range's source and
// is eliminable by the identity-elimination pass.
func (p *ProxyPayload) IsIdentity(width uint32) (srcIndex int, ok bool) {
	if len(p.Ranges) != 1 {
		return 0, false
	}
	r := p.Ranges[0]
	if r.DstOffset == 0 && r.SrcOffset == 0 && r.Length == width {
		return r.SrcIndex, true
	}
	return 0, false
}

// MergeRanges overwrites the range set with a new range covering
// [dstOffset, dstOffset+length) from newSrcIndex, splitting any prior
// ranges that the new write overlaps, so the resulting range set still
// tiles the full width exactly. Grounded on proxyimpl's merge_left.
func MergeRanges(existing []Range, dstOffset, length uint32, newSrcIndex int, newSrcOffset uint32) []Range {
	newEnd := dstOffset + length
	out := make([]Range, 0, len(existing)+2)
	for _, r := range existing {
		rEnd := r.DstOffset + r.Length
		switch {
		case rEnd <= dstOffset || r.DstOffset >= newEnd:
			// No overlap; keep as-is.
			out = append(out, r)
		default:
			// Keep the part of r before the write window.
			if r.DstOffset < dstOffset {
				lead := dstOffset - r.DstOffset
				out = append(out, Range{
					SrcIndex:  r.SrcIndex,
					SrcOffset: r.SrcOffset,
					DstOffset: r.DstOffset,
					Length:    lead,
				})
			}
			// Keep the part of r after the write window.
			if rEnd > newEnd {
				trail := rEnd - newEnd
				out = append(out, Range{
					SrcIndex:  r.SrcIndex,
					SrcOffset: r.SrcOffset + (newEnd - r.DstOffset),
					DstOffset: newEnd,
					Length:    trail,
				})
			}
		}
	}
	out = append(out, Range{
		SrcIndex:  newSrcIndex,
		SrcOffset: newSrcOffset,
		DstOffset: dstOffset,
		Length:    length,
	})
	sort.Slice(out, func(i, j int) bool { return out[i].DstOffset < out[j].DstOffset })
	return out
}

// OverlappingSlices returns the sub-ranges of existing that overlap the
// write window [offset, offset+length), used when a conditional write
// targets a sub-range of a proxy: each overlapping slice is routed through
// the conditional resolver independently.
func OverlappingSlices(existing []Range, offset, length uint32) []Range {
	end := offset + length
	var out []Range
	for _, r := range existing {
		rEnd := r.DstOffset + r.Length
		if rEnd <= offset || r.DstOffset >= end {
			continue
		}
		lo := max32(r.DstOffset, offset)
		hi := min32(rEnd, end)
		out = append(out, Range{
			SrcIndex:  r.SrcIndex,
			SrcOffset: r.SrcOffset + (lo - r.DstOffset),
			DstOffset: lo,
			Length:    hi - lo,
		})
	}
	return out
}

func max32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
