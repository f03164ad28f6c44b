package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueEquality(t *testing.T) {
	tests := []struct {
		name string
		a    Value
		b    Value
		want bool
	}{
		{"equal strings", StringValue("NYC"), StringValue("NYC"), true},
		{"different strings", StringValue("NYC"), StringValue("LA"), false},
		{"equal ints", IntValue(25), IntValue(25), true},
		{"different ints", IntValue(25), IntValue(30), false},
		{"equal floats", FloatValue(1.5), FloatValue(1.5), true},
		{"equal bools", BoolValue(true), BoolValue(true), true},
		{"int never equals float", IntValue(25), FloatValue(25), false},
		{"int never equals string", IntValue(25), StringValue("25"), false},
		{"bool never equals string", BoolValue(true), StringValue("true"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equals(tt.b))
			assert.Equal(t, tt.want, tt.b.Equals(tt.a))
		})
	}
}

func TestValueOf(t *testing.T) {
	v, err := ValueOf("NYC")
	require.NoError(t, err)
	assert.Equal(t, KindString, v.Kind())

	v, err = ValueOf(25)
	require.NoError(t, err)
	assert.Equal(t, KindInt, v.Kind())

	v, err = ValueOf(3.14)
	require.NoError(t, err)
	assert.Equal(t, KindFloat, v.Kind())

	v, err = ValueOf(true)
	require.NoError(t, err)
	assert.Equal(t, KindBool, v.Kind())

	_, err = ValueOf([]string{"nope"})
	assert.Error(t, err)
}

func TestAttributesClone(t *testing.T) {
	attrs := Attributes{"location": StringValue("NYC")}
	clone := attrs.Clone()
	clone["location"] = StringValue("LA")

	got, ok := attrs.Get("location")
	require.True(t, ok)
	assert.True(t, got.Equals(StringValue("NYC")))
}
