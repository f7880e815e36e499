package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidTreeOp, "node already attached")

	assert.Equal(t, ErrCodeInvalidTreeOp, err.Code)
	assert.Contains(t, err.Error(), "INVALID_TREE_OP")
	assert.Contains(t, err.Error(), "node already attached")
}

func TestWrap(t *testing.T) {
	underlying := stderrors.New("device gone")
	err := Wrap(underlying, ErrCodeBackendInit, "init failed")

	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "init failed")
	assert.Contains(t, err.Error(), "device gone")
	assert.True(t, stderrors.Is(err, underlying))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
}

func TestWithContext(t *testing.T) {
	err := New(ErrCodeNotFocusable, "hidden node").WithContext("node", 7)

	assert.Contains(t, err.Error(), "node: 7")
}

func TestIsCode(t *testing.T) {
	err := New(ErrCodeNoSuchNode, "unknown handle")

	assert.True(t, IsCode(err, ErrCodeNoSuchNode))
	assert.False(t, IsCode(err, ErrCodeInvalidTreeOp))
	assert.False(t, IsCode(nil, ErrCodeNoSuchNode))
	assert.False(t, IsCode(stderrors.New("plain"), ErrCodeNoSuchNode))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrorCode(""), GetCode(nil))
	assert.Equal(t, ErrCodeInternal, GetCode(stderrors.New("plain")))
	assert.Equal(t, ErrCodeThemeParse, GetCode(New(ErrCodeThemeParse, "bad yaml")))
}
