package validate

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSequence(t *testing.T) {
	tests := []struct {
		name  string
		value any
		opts  []Option
		want  bool
	}{
		{"IntSlice", []int{1, 2, 3}, nil, true},
		{"EmptySlice", []string{}, nil, true},
		{"Array", [2]string{"a", "b"}, nil, true},
		{"AnySlice", []any{1, "a", 2.5}, nil, true},
		{"Scalar", 5, nil, false},
		{"String", "abc", nil, false},
		{"Map", map[string]int{"a": 1}, nil, false},
		{"Nil", nil, nil, false},
		{"ElementTypeMatch", []any{1, 2}, []Option{ElementTypes(TypeOf[int]())}, true},
		{"ElementTypeMismatch", []any{1, "a"}, []Option{ElementTypes(TypeOf[int]())}, false},
		{"ElementTypeSet", []any{1, "a"}, []Option{ElementTypes(TypeOf[int](), TypeOf[string]())}, true},
		{"ElementCapability", []any{strings.NewReader("x")}, []Option{ElementTypes(TypeOf[io.Reader]())}, true},
		{"ElementCapabilityMismatch", []any{5}, []Option{ElementTypes(TypeOf[io.Reader]())}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSequence(tt.value, tt.opts...))
		})
	}
}

func TestCheckSequence(t *testing.T) {
	t.Run("IdentityPassthrough", func(t *testing.T) {
		in := []int{1, 2}
		out, err := CheckSequence(in, AllowEmpty(false))
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("EmptyAllowedByDefault", func(t *testing.T) {
		out, err := CheckSequence([]int{})
		require.NoError(t, err)
		assert.Equal(t, []int{}, out)
	})

	t.Run("EmptyRejected", func(t *testing.T) {
		_, err := CheckSequence([]int{}, AllowEmpty(false), Named("xs"))
		require.Error(t, err)
		var empty *EmptySequenceError
		require.ErrorAs(t, err, &empty)
		assert.Equal(t, "xs", empty.Name)
		assert.Contains(t, err.Error(), "non-empty")
	})

	t.Run("NotASequence", func(t *testing.T) {
		_, err := CheckSequence(7, Named("xs"))
		require.Error(t, err)
		var notSeq *NotASequenceError
		require.ErrorAs(t, err, &notSeq)
		assert.Contains(t, err.Error(), "`xs`")
		assert.Contains(t, err.Error(), "int")
	})

	t.Run("ElementTypeViolation", func(t *testing.T) {
		_, err := CheckSequence([]any{1, "a"}, ElementTypes(TypeOf[int]()))
		require.Error(t, err)
		var unexpected *UnexpectedTypeError
		require.ErrorAs(t, err, &unexpected)
		assert.Contains(t, err.Error(), "string")
	})
}

func TestCheckType(t *testing.T) {
	t.Run("ConcreteType", func(t *testing.T) {
		out, err := CheckType("hello", TypeSet{TypeOf[string]()})
		require.NoError(t, err)
		assert.Equal(t, "hello", out)
	})

	t.Run("TypeSetMatchesAny", func(t *testing.T) {
		out, err := CheckType(5, TypeSet{TypeOf[string](), TypeOf[int]()})
		require.NoError(t, err)
		assert.Equal(t, 5, out)
	})

	t.Run("Capability", func(t *testing.T) {
		r := strings.NewReader("x")
		out, err := CheckType(r, TypeSet{TypeOf[io.Reader]()})
		require.NoError(t, err)
		assert.Same(t, r, out)
	})

	t.Run("Mismatch", func(t *testing.T) {
		_, err := CheckType(5, TypeSet{TypeOf[string]()}, Named("label"))
		require.Error(t, err)
		var unexpected *UnexpectedTypeError
		require.ErrorAs(t, err, &unexpected)
		assert.Equal(t, "label", unexpected.Name)
		assert.Contains(t, err.Error(), "string")
		assert.Contains(t, err.Error(), "int")
	})

	t.Run("NilValueAgainstConcreteType", func(t *testing.T) {
		_, err := CheckType(nil, TypeSet{TypeOf[string]()})
		assert.Error(t, err)
	})

	t.Run("EmptyTypeSetAcceptsEverything", func(t *testing.T) {
		out, err := CheckType(5, TypeSet{})
		require.NoError(t, err)
		assert.Equal(t, 5, out)
	})
}
