package dial

// Dial geometry.
const (
	Positions = 100 // distinct click positions, 0..99
	Start     = 50  // position at power-on
)

// CountLandings applies each rotation in order and counts the moves
// that end exactly on zero. Intermediate passes through zero during a
// move are not counted.
func CountLandings(rots []Rotation) int {
	pos := Start
	hits := 0
	for _, r := range rots {
		pos = apply(pos, r)
		if pos == 0 {
			hits++
		}
	}
	return hits
}

// CountCrossings counts every pass through zero, landings included.
// The per-rotation count is closed form and uses the pre-move
// position; the position is advanced afterwards.
func CountCrossings(rots []Rotation) int {
	pos := Start
	hits := 0
	for _, r := range rots {
		hits += crossings(pos, r)
		pos = apply(pos, r)
	}
	return hits
}

// apply advances pos by one rotation. The result is normalized into
// [0, Positions) regardless of direction, so left moves never yield a
// negative position.
func apply(pos int, r Rotation) int {
	if r.Dir == Left {
		return ((pos-r.Dist)%Positions + Positions) % Positions
	}
	return (pos + r.Dist) % Positions
}

// crossings returns how many times a rotation starting at pos passes
// through or lands on zero. The first zero is firstZeroClick clicks
// away in the direction of travel; when already parked on zero a full
// revolution is required to see it again. Each additional full
// revolution after the first hit adds one more.
func crossings(pos int, r Rotation) int {
	firstZeroClick := Positions
	if pos != 0 {
		if r.Dir == Left {
			firstZeroClick = pos
		} else {
			firstZeroClick = Positions - pos
		}
	}
	if r.Dist < firstZeroClick {
		return 0
	}
	return 1 + (r.Dist-firstZeroClick)/Positions
}
