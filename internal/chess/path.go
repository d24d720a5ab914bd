package chess

// PathClear reports whether every square strictly between from and to is
// empty. Knights jump, so their moves always pass. The destination itself is
// never inspected. Squares that are not on a common rank, file or diagonal
// have no path and fail.
func (b *Board) PathClear(from, to Square) bool {
	if p := b.At(from); p != nil && p.Kind == Knight {
		return true
	}

	dr := to.Row - from.Row
	dc := to.Col - from.Col
	if dr != 0 && dc != 0 && abs(dr) != abs(dc) {
		return false
	}

	step := Sq(sign(dr), sign(dc))
	for cur := Sq(from.Row+step.Row, from.Col+step.Col); cur != to; cur = Sq(cur.Row+step.Row, cur.Col+step.Col) {
		if !cur.Valid() {
			return false
		}
		if !b.IsEmpty(cur) {
			return false
		}
	}

	return true
}
