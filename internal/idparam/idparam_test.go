package idparam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingle(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]int{"5": 5, "12": 12, "007": 7, "-3": -3} {
		p, err := Parse(raw)
		require.NoError(t, err, raw)

		id, ok := p.Single()
		assert.True(t, ok, raw)
		assert.Equal(t, want, id, raw)
		assert.False(t, p.IsList())
	}
}

func TestParseList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want []int
	}{
		{raw: "1,2,3", want: []int{1, 2, 3}},
		{raw: "3, 1", want: []int{3, 1}},
		{raw: "[1,2,3]", want: []int{1, 2, 3}},
		{raw: "[ 4, 5 ]", want: []int{4, 5}},
		{raw: "[7]", want: []int{7}},
		{raw: "[ ]", want: []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			p, err := Parse(tc.raw)
			require.NoError(t, err)

			ids, ok := p.List()
			require.True(t, ok)
			assert.True(t, p.IsList())
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"[1,2",
		"1,2]",
		"[]",
		"[",
		"]",
		"[1,2,]",
		"[a,b]",
		"[1.5]",
		"[null]",
		"[1,null,3]",
		`["2"]`,
		"[true]",
		"x[1]",
		"1,abc",
		"1,",
		",1",
		"1,,2",
	}

	for _, raw := range inputs {
		t.Run(raw, func(t *testing.T) {
			_, err := Parse(raw)
			assert.ErrorIs(t, err, ErrMalformedIDList)
		})
	}
}

func TestParseRaw(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"abc", "", ",", "1.5", "tyrannosaurus"} {
		p, err := Parse(raw)
		require.NoError(t, err, raw)

		got, ok := p.Raw()
		assert.True(t, ok, raw)
		assert.Equal(t, raw, got)

		_, isSingle := p.Single()
		assert.False(t, isSingle)
		assert.False(t, p.IsList())
	}
}

func TestParseErrorMatchesNoShape(t *testing.T) {
	t.Parallel()

	p, err := Parse("[1,2")
	require.ErrorIs(t, err, ErrMalformedIDList)

	_, isRaw := p.Raw()
	_, isSingle := p.Single()
	_, isList := p.List()
	assert.False(t, isRaw)
	assert.False(t, isSingle)
	assert.False(t, isList)
	assert.False(t, p.IsList())

	_, isRaw = Param{}.Raw()
	assert.False(t, isRaw)
}
