package core_test

import (
	"testing"

	"github.com/notEloiir/gotsetlin/core"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParamsYAMLRoundTrip(t *testing.T) {
	p := core.Params{
		NumClasses: 3, NumClauses: 50, NumLiterals: 8, Threshold: 20,
		MaxState: 127, MinState: -127, BoostTruePositiveFeedback: true, S: 4.5,
	}

	out, err := yaml.Marshal(p)
	require.NoError(t, err)

	var got core.Params
	require.NoError(t, yaml.Unmarshal(out, &got))
	require.Equal(t, p, got)
}

func TestParamsYAMLUsesSnakeCaseKeys(t *testing.T) {
	p := validParams()
	out, err := yaml.Marshal(p)
	require.NoError(t, err)

	require.Contains(t, string(out), "num_clauses:")
	require.Contains(t, string(out), "boost_true_positive_feedback:")
}
