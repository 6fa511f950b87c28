package keyset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LuciusCaesar/D360-Client/pkg/keyset"
)

type item struct {
	key   string
	label string
}

func (i item) NaturalKey() string { return i.key }

func TestAddDropsDuplicates(t *testing.T) {
	var s keyset.Set[item]
	assert.True(t, s.Add(item{"a", "first"}))
	assert.False(t, s.Add(item{"a", "second"}))
	assert.Equal(t, 1, s.Len())

	got, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "first", got.label)
}

func TestEqualityFollowsKey(t *testing.T) {
	a := keyset.Of(item{"A", "x"})
	b := keyset.Of(item{"A", "y"})
	assert.True(t, a.Equal(b))

	c := keyset.Of(item{"B", "x"})
	assert.False(t, a.Equal(c))
}

func TestMinus(t *testing.T) {
	a := keyset.Of(item{key: "1"}, item{key: "2"}, item{key: "3"})
	b := keyset.Of(item{key: "2"}, item{key: "4"})

	assert.Equal(t, []item{{key: "1"}, {key: "3"}}, a.Minus(b))
	assert.Equal(t, []item{{key: "4"}}, b.Minus(a))
	assert.Empty(t, a.Minus(a))
}

func TestNilSet(t *testing.T) {
	var s *keyset.Set[item]
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(item{key: "a"}))
	assert.Nil(t, s.Values())
	assert.NotNil(t, s.Minus(keyset.Of(item{key: "a"})))
}

func TestValuesIsACopy(t *testing.T) {
	s := keyset.Of(item{key: "a"})
	v := s.Values()
	v[0].key = "z"
	assert.True(t, s.ContainsKey("a"))
}
