// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/sum"
)

func TestTagAssignmentCountsFromEnd(t *testing.T) {
	s := sum.NewSchema(sum.Of[int](), sum.Of[string](), sum.Of[bool]())
	require.Equal(t, 3, s.Len())

	tests := []struct {
		name string
		got  func() (sum.Tag, bool)
		want sum.Tag
	}{
		{"first declared", func() (sum.Tag, bool) { return sum.TagOf[int](s) }, 2},
		{"second declared", func() (sum.Tag, bool) { return sum.TagOf[string](s) }, 1},
		{"last declared", func() (sum.Tag, bool) { return sum.TagOf[bool](s) }, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, ok := tt.got()
			require.True(t, ok)
			assert.Equal(t, tt.want, tag)
			assert.NotEqual(t, sum.None, tag)
		})
	}
}

func TestSingleAlternativeGetsTagZero(t *testing.T) {
	s := sum.NewSchema(sum.Of[string]())
	tag, ok := sum.TagOf[string](s)
	require.True(t, ok)
	assert.Equal(t, sum.Tag(0), tag)
}

func TestEmptySchema(t *testing.T) {
	s := sum.NewSchema()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "Schema()", s.String())

	c := s.New()
	assert.True(t, c.Empty())
	assert.Equal(t, sum.None, c.Tag())
}

func TestDuplicateAlternativePanics(t *testing.T) {
	require.PanicsWithValue(t, "sum: duplicate alternative int", func() {
		sum.NewSchema(sum.Of[int](), sum.Of[string](), sum.Of[int]())
	})
}

func TestDistinctNamedTypesAreDistinctAlternatives(t *testing.T) {
	type celsius float64
	type fahrenheit float64

	s := sum.NewSchema(sum.Of[celsius](), sum.Of[fahrenheit]())
	ct, ok := sum.TagOf[celsius](s)
	require.True(t, ok)
	ft, ok := sum.TagOf[fahrenheit](s)
	require.True(t, ok)
	assert.NotEqual(t, ct, ft)
}

func TestSchemaType(t *testing.T) {
	s := sum.NewSchema(sum.Of[int](), sum.Of[string]())

	assert.Equal(t, reflect.TypeFor[string](), s.Type(0))
	assert.Equal(t, reflect.TypeFor[int](), s.Type(1))
	assert.Nil(t, s.Type(2))
	assert.Nil(t, s.Type(sum.None))
}

func TestSchemaStringListsDeclarationOrder(t *testing.T) {
	s := sum.NewSchema(sum.Of[int](), sum.Of[string](), sum.Of[bool]())
	assert.Equal(t, "Schema(int | string | bool)", s.String())
}

func TestTagOfUnknownType(t *testing.T) {
	s := sum.NewSchema(sum.Of[int](), sum.Of[string]())

	// The miss result must be the sentinel, never a value colliding with
	// the live tag 0 held by the last declared alternative.
	tag, ok := sum.TagOf[bool](s)
	assert.False(t, ok)
	assert.Equal(t, sum.None, tag)

	live, ok := sum.TagOf[string](s)
	require.True(t, ok)
	assert.Equal(t, sum.Tag(0), live)
	assert.NotEqual(t, live, tag)
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "Tag(3)", sum.Tag(3).String())
	assert.Equal(t, "None", sum.None.String())
}

func TestAlternativeIntrospection(t *testing.T) {
	alt := sum.Of[string]()
	assert.Equal(t, reflect.TypeFor[string](), alt.Type())
	assert.Equal(t, "string", alt.String())
}
