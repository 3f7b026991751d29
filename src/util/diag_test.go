package util

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCompileError(t *testing.T) {
	err := Errorf(InvalidName, 3, "bad name %q", "1x")
	assert.Equal(t, `line 3: invalid name: bad name "1x"`, err.Error())
	assert.Equal(t, "missing entry function: no main", Errorf(MissingEntry, 0, "no main").Error())
	assert.Equal(t, "ErrorKind(99)", ErrorKind(99).String())
	assert.Equal(t, "internal error", Internal.String())
}

func TestIsKind(t *testing.T) {
	err := Errorf(OutOfScope, 2, "x")
	assert.True(t, IsKind(err, OutOfScope))
	assert.False(t, IsKind(err, Internal))
	assert.True(t, IsKind(errors.Wrap(err, "context"), OutOfScope))
	assert.False(t, IsKind(errors.New("plain"), OutOfScope))
	assert.False(t, IsKind(nil, OutOfScope))
}

func TestFprintError(t *testing.T) {
	var b bytes.Buffer
	FprintError(&b, Errorf(MissingPunctuation, 7, "expected ';'"), false)
	assert.Equal(t, "Error on line 7: missing punctuation: expected ';'\n", b.String())

	b.Reset()
	FprintError(&b, errors.New("boom"), false)
	assert.Equal(t, "Error: boom\n", b.String())

	b.Reset()
	FprintError(&b, errors.New("boom"), true)
	assert.Equal(t, colorRed+"Error"+colorReset+": boom\n", b.String())
}
