package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tacticians-go/tactix/pkg/score"
)

func TestOrdering(t *testing.T) {
	assert.True(t, score.Mate(1).Greater(score.Cp(100000)))
	assert.True(t, score.Cp(-100000).Greater(score.Mate(-1)))
	assert.True(t, score.Mate(1).Greater(score.Mate(3)))   // closer mate wins among mating scores.
	assert.True(t, score.Mate(-3).Greater(score.Mate(-1))) // farther mate wins among being-mated scores.
}

func TestEquality(t *testing.T) {
	assert.True(t, score.Mate(-1).Equal(score.Mate(-1)))
	assert.False(t, score.Mate(-1).Equal(score.Mate(-2)))
	assert.False(t, score.Mate(1).Equal(score.Cp(0)))
}

func TestPredicates(t *testing.T) {
	assert.True(t, score.Mate(2).IsMating())
	assert.False(t, score.Mate(-2).IsMating())
	assert.True(t, score.Mate(-2).IsBeingMated())
	assert.False(t, score.Cp(5).IsMate())
}

func TestNoEval(t *testing.T) {
	_, ok := score.NoEval.V()
	assert.False(t, ok)

	opt := score.Optional{}
	_, ok = opt.V()
	assert.False(t, ok)
}
