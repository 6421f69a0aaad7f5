package flerr_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"martianoff/flist/flerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidPatternError(t *testing.T) {
	err := flerr.NewInvalidPatternError([]int{1, 0}, 42)
	assert.Equal(t, flerr.TypeInvalidPattern, err.Type())
	assert.Equal(t, []int{1, 0}, err.Path)
	assert.Equal(t, 42, err.Node)
	assert.Equal(t, "[InvalidPatternError] at [1 0]: expected a name, a nested pattern or a skip, got int (42)", err.Error())
}

func TestInvalidPatternErrorCopiesPath(t *testing.T) {
	path := []int{3}
	err := flerr.NewInvalidPatternError(path, 1.5)
	path[0] = 9
	assert.Equal(t, []int{3}, err.Path)
}

func TestShapeMismatchError(t *testing.T) {
	t.Run("out of range", func(t *testing.T) {
		err := flerr.NewShapeMismatchError([]int{1, 4}, 1, 2)
		assert.Equal(t, flerr.TypeShapeMismatch, err.Type())
		assert.Equal(t, "[ShapeMismatchError] at [1 4]: index 4 out of range at depth 1 (arity 2)", err.Error())
	})

	t.Run("leaf", func(t *testing.T) {
		err := flerr.NewShapeMismatchError([]int{0, 0}, 1, -1)
		err.Name = "b"
		assert.Equal(t, `[ShapeMismatchError] "b" at [0 0]: cannot index leaf value at depth 1`, err.Error())
	})
}

func TestArgumentMismatchError(t *testing.T) {
	err := flerr.NewArgumentMismatchError("c", "d")
	assert.Equal(t, flerr.TypeArgumentMismatch, err.Type())
	assert.Equal(t, []string{"c", "d"}, err.Names)
	assert.Equal(t, "[ArgumentMismatchError] target does not accept c, d", err.Error())
}

func TestShapeError(t *testing.T) {
	err := flerr.NewShapeError(3, 1, "expected at least 2 positions, got 1")
	assert.Equal(t, flerr.TypeShape, err.Type())
	assert.Equal(t, "[ShapeError] row 3: expected at least 2 positions, got 1", err.Error())
}

func TestRowError(t *testing.T) {
	t.Run("whole line", func(t *testing.T) {
		err := flerr.NewRowError(7, "expected 3 columns, got 2")
		assert.Equal(t, -1, err.Column)
		assert.Equal(t, "[RowError] line 7: expected 3 columns, got 2", err.Error())
	})

	t.Run("column wraps cause", func(t *testing.T) {
		_, cause := strconv.Atoi("x")
		err := flerr.NewColumnError(2, 1, cause)
		assert.True(t, errors.Is(err, strconv.ErrSyntax))
		assert.Contains(t, err.Error(), "[RowError] line 2 column 1:")
	})
}

func TestSchemaError(t *testing.T) {
	assert.Equal(t, "[SchemaError] rows.yaml: no columns", flerr.NewSchemaError("rows.yaml", "no columns").Error())
	assert.Equal(t, "[SchemaError] no columns", flerr.NewSchemaError("", "no columns").Error())
}

func TestMultiError(t *testing.T) {
	e1 := flerr.NewSchemaError("s.yaml", "error 1")
	e2 := flerr.NewRowError(2, "error 2")
	multi := &flerr.MultiError{Errors: []error{e1, e2}}

	assert.Equal(t, flerr.TypeSchema, multi.Type())
	errMsg := multi.Error()
	assert.Contains(t, errMsg, "2 error(s) occurred:")
	assert.Contains(t, errMsg, "- [SchemaError] s.yaml: error 1")
	assert.Contains(t, errMsg, "- [RowError] line 2: error 2")

	var rowErr *flerr.RowError
	require.True(t, errors.As(multi, &rowErr))
	assert.Equal(t, 2, rowErr.Line)
}

func TestMultiErrorEmpty(t *testing.T) {
	multi := &flerr.MultiError{Errors: []error{}}
	assert.Equal(t, flerr.ErrorType("MultiError"), multi.Type())
	assert.True(t, strings.HasPrefix(multi.Error(), "0 error(s) occurred:"))
}

func TestFormatPath(t *testing.T) {
	assert.Equal(t, "[]", flerr.FormatPath(nil))
	assert.Equal(t, "[0 2 1]", flerr.FormatPath([]int{0, 2, 1}))
}
