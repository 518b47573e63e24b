package context

import "github.com/sarchlab/hdlcore/ir"

// branch is one arm of an open If/ElseIf/Else or Switch/Case chain: the
// condition guarding it (zero NodeID means "always", reserved for a
// trailing Else/Default arm) and every variable it assigned, with the
// value assigned.
type branch struct {
	cond   ir.NodeID
	writes map[*Var]ir.NodeID
}

// condFrame is one open conditional statement. before snapshots each
// touched variable's value as it stood immediately before the statement,
// so that branches see a consistent starting point and EndIf has a
// fallback value for variables no branch happened to write.
type condFrame struct {
	before   map[*Var]ir.NodeID
	branches []branch
	current  *branch
}

// resolver implements conditional-assignment folding: every Var.Assign
// made inside an open If/Switch is staged rather than applied, and the
// enclosing EndIf (or SwitchBuilder.End) call replaces it with a select (or chain of
// selects) keyed on the branch conditions, prioritizing earlier branches
// over later ones exactly as host-language if/else-if/else does.
type resolver struct {
	ctx   *Context
	stack []*condFrame
}

func newResolver(c *Context) *resolver {
	return &resolver{ctx: c}
}

func (r *resolver) top() *condFrame {
	return r.stack[len(r.stack)-1]
}

// BeginIf opens a new conditional statement and its first branch.
func (r *resolver) BeginIf(cond ir.NodeID) {
	r.stack = append(r.stack, &condFrame{before: map[*Var]ir.NodeID{}})
	r.openBranch(cond)
}

// ElseIf closes the current branch and opens another guarded by cond.
func (r *resolver) ElseIf(cond ir.NodeID) {
	r.closeBranch()
	r.openBranch(cond)
}

// Else closes the current branch and opens the trailing unconditional
// arm. Must be the last branch before EndIf.
func (r *resolver) Else() {
	r.closeBranch()
	r.openBranch(0)
}

// EndIf closes the final branch and folds every variable touched anywhere
// in the statement into its merged value.
func (r *resolver) EndIf() {
	r.closeBranch()
	f := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.fold(f)
}

func (r *resolver) openBranch(cond ir.NodeID) {
	f := r.top()
	f.current = &branch{cond: cond, writes: map[*Var]ir.NodeID{}}
}

// closeBranch records the open branch and rolls every variable it touched
// back to the statement's pre-branch value, so the next branch (or the
// final fold) starts from a consistent baseline rather than seeing a
// sibling branch's write.
func (r *resolver) closeBranch() {
	f := r.top()
	f.branches = append(f.branches, *f.current)
	for v := range f.current.writes {
		v.value = f.before[v]
	}
	f.current = nil
}

// assign stages a write inside the innermost open branch, or applies it
// immediately if no conditional is open.
func (r *resolver) assign(v *Var, newVal ir.NodeID) ir.NodeID {
	if len(r.stack) == 0 {
		return newVal
	}
	f := r.top()
	if _, seen := f.before[v]; !seen {
		f.before[v] = v.value
	}
	f.current.writes[v] = newVal
	return newVal
}

// fold replaces each variable touched in the frame with a select chain:
// the trailing unconditional branch (if any) supplies the fallback value,
// then each remaining branch from last to first wraps the result in
// `cond ? written : result`, which is equivalent to first-match-wins
// evaluated front to back. When the statement is nested inside another
// open conditional, the folded value is staged as a write in the
// enclosing branch rather than applied.
func (r *resolver) fold(f *condFrame) {
	for v, base := range f.before {
		result := base
		branches := f.branches
		if n := len(branches); n > 0 && branches[n-1].cond == 0 {
			if val, ok := branches[n-1].writes[v]; ok {
				result = val
			}
			branches = branches[:n-1]
		}
		for i := len(branches) - 1; i >= 0; i-- {
			br := branches[i]
			val, ok := br.writes[v]
			if !ok {
				continue
			}
			result = r.ctx.Select(v.width, br.cond, val, result)
		}
		v.value = r.assign(v, result)
	}
}
