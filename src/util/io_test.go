package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	var w Writer
	w.Write("\t.text\n")
	w.Label("_main")
	w.Ins2("mov", "$1", "%eax")
	w.Ins1("push", "%eax")
	w.Ins0("ret")
	assert.Equal(t, "\t.text\n_main:\n\tmov\t$1, %eax\n\tpush\t%eax\n\tret\n", w.String())
	assert.Equal(t, 3, w.Instructions())
}

func TestReadWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.s")
	require.NoError(t, WriteOutput(path, "text"))

	s, err := ReadSource(path)
	require.NoError(t, err)
	assert.Equal(t, "text", s)

	_, err = ReadSource(filepath.Join(dir, "missing.td"))
	assert.True(t, IsKind(err, FileNotFound))

	assert.Error(t, WriteOutput(filepath.Join(dir, "no", "such", "dir.s"), "x"))
	_, err = os.Stat(filepath.Join(dir, "no"))
	assert.True(t, os.IsNotExist(err))
}
