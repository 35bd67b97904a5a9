package score_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tacticians-go/tactix/pkg/score"
)

func TestParse(t *testing.T) {
	v, err := score.Parse("cp-50")
	require.NoError(t, err)
	require.True(t, v.Equal(score.Cp(-50)))

	v, err = score.Parse("mate-2")
	require.NoError(t, err)
	require.True(t, v.Equal(score.Mate(-2)))

	_, err = score.Parse("bogus")
	require.Error(t, err)
}
