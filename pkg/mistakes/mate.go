package mistakes

import "github.com/tacticians-go/tactix/pkg/score"

// HungMateN returns true iff the player allowed a forced mate in exactly n: the position
// is scored as being mated in n, while the best available score was not this bad.
func HungMateN(pov, best score.Score, n int32) bool {
	m := score.Mate(-n)
	return pov.Equal(m) && best.Greater(m)
}

// HungMateNPlus returns true iff the player is being mated in n or more plies, while the
// best available outcome was not to be mated at all.
func HungMateNPlus(pov, best score.Score, n int32) bool {
	return pov.IsBeingMated() && pov.GreaterOrEqual(score.Mate(-n)) && !best.IsBeingMated()
}

// MissedMateN returns true iff the best available score was mate in exactly n, but the
// score actually reached was worse.
func MissedMateN(pov, best score.Score, n int32) bool {
	m := score.Mate(n)
	return best.Equal(m) && pov.Less(m)
}

// MissedMateNPlus returns true iff a forced mate in n or more plies was available but the
// position reached is not itself winning by mate.
func MissedMateNPlus(pov, best score.Score, n int32) bool {
	return !pov.IsMating() && best.IsMating() && !best.Greater(score.Mate(n))
}
