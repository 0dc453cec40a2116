package ic

// Branch captures the entire branch family described in spec §4.2. If
// saveLink, ra is written with the post-increment next_line (the line after
// the branch) before the taken decision is applied. If taken, next_line is
// updated either absolutely or relative to the driver's pre-increment.
//
// Link variants write ra before testing the predicate. Because this function
// is called with taken already decided, the conditional link opcodes in
// flow.go write ra themselves at the start of their handler (so ra is set
// even when resolving an operand fails) and call Branch with saveLink false;
// jal passes saveLink true.
func (s *ICState) Branch(target int, taken, relative, saveLink bool) {
	if saveLink {
		s.SetRA(float32(s.NextLine))
	}
	if !taken {
		return
	}
	if relative {
		// The driver pre-increments next_line before dispatch; the -1
		// compensates so that the net PC delta from the branch's own line
		// is exactly target.
		s.NextLine = s.NextLine + target - 1
	} else {
		s.NextLine = target
	}
}
