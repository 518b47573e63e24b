package ir

// Refs returns a pointer to every NodeID this node references, whether
// from its Sources list or from payload fields that hold a NodeID (a
// register's data/enable/reset/init, a memory port's address/data,
// and so on). Compiler passes that rewrite references (identity
// elimination, switch reconstruction) use this instead of special-casing
// every Kind.
func (n *Node) Refs() []*NodeID {
	refs := make([]*NodeID, 0, len(n.Sources)+4)
	for i := range n.Sources {
		refs = append(refs, &n.Sources[i])
	}
	switch p := n.Payload.(type) {
	case *RegPayload:
		refs = append(refs, &p.Data)
		if p.Enable != 0 {
			refs = append(refs, &p.Enable)
		}
		if p.Reset != 0 {
			refs = append(refs, &p.Reset)
		}
		if p.Init != 0 {
			refs = append(refs, &p.Init)
		}
	case *MemPortPayload:
		refs = append(refs, &p.Mem, &p.Addr)
		if p.Enable != 0 {
			refs = append(refs, &p.Enable)
		}
		if p.WriteData != 0 {
			refs = append(refs, &p.WriteData)
		}
	case *AssertPayload:
		if p.Enable != 0 {
			refs = append(refs, &p.Enable)
		}
	}
	return refs
}
