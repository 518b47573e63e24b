package ir

// EdgeKind is the sensitivity edge a clock domain reacts to.
type EdgeKind int

const (
	EdgePos EdgeKind = iota
	EdgeNeg
)

// Sensitivity is one (signal, edge) pair in a clock domain's sensitivity
// list.
type Sensitivity struct {
	Signal NodeID
	Edge   EdgeKind
}

// ClockDomain groups every tickable (register, delayed ALU, sync memory
// port) whose sensitivity list matches. Two domains with identical
// sensitivity lists are the same domain (deduplicated at creation by the
// context).
type ClockDomain struct {
	ID          int
	Sensitivity []Sensitivity
	Tickables   []NodeID
}

// SameSensitivity reports whether two sensitivity lists are the same
// ordered, deduplicated set.
func SameSensitivity(a, b []Sensitivity) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// AddTickable registers a node as belonging to this domain.
func (cd *ClockDomain) AddTickable(id NodeID) {
	cd.Tickables = append(cd.Tickables, id)
}

// TickNext runs tick_next across every tickable in the domain. The order
// within a domain is irrelevant because each tickable reads only the
// *current* (pre-edge) value of its sources, never another tickable's
// staged next value.
func (cd *ClockDomain) TickNext(t uint64, g Graph) {
	for _, id := range cd.Tickables {
		g.Node(id).TickNext(t, g)
	}
}

// Tick commits every tickable's staged next state. A synchronous read
// port commits either after the write ports on its memory (the default,
// write-before-read: a read observes a same-tick write to the same
// address) or before them (read-before-write, when that memory was
// configured that way at creation) — see memReadOrdersBeforeWrite.
// Everything else commits in between, in no particular order.
func (cd *ClockDomain) Tick(t uint64, g Graph) {
	for _, id := range cd.Tickables {
		if g.Node(id).Kind == KindMemRead && memReadOrdersBeforeWrite(g, id) {
			g.Node(id).Tick(t, g)
		}
	}
	for _, id := range cd.Tickables {
		if g.Node(id).Kind == KindMemWrite {
			g.Node(id).Tick(t, g)
		}
	}
	for _, id := range cd.Tickables {
		if g.Node(id).Kind != KindMemWrite && g.Node(id).Kind != KindMemRead {
			g.Node(id).Tick(t, g)
		}
	}
	for _, id := range cd.Tickables {
		if g.Node(id).Kind == KindMemRead && !memReadOrdersBeforeWrite(g, id) {
			g.Node(id).Tick(t, g)
		}
	}
}

// memReadOrdersBeforeWrite reports whether the synchronous read port id
// must commit before its memory's write ports this tick, per that
// memory's WriteBeforeRead flag.
func memReadOrdersBeforeWrite(g Graph, id NodeID) bool {
	p := g.Node(id).Payload.(*MemPortPayload)
	mem := g.Node(p.Mem).Payload.(*MemPayload)
	return !mem.WriteBeforeRead
}
