package main

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pontaoski/haumea/codegen"
	"github.com/pontaoski/haumea/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ztrue/tracerr"
)

func writeSources(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		require.NoError(t, ioutil.WriteFile(filepath.Join(dir, name), []byte(src), 0644))
	}
	return dir
}

func TestParseDirectory(t *testing.T) {
	dir := writeSources(t, map[string]string{
		"b.hau":     "to main do\n\tdisplay(double(2))\n\treturn 0\nend\n",
		"a.hau":     "to double with (n) return n * 2\n",
		"notes.txt": "not haumea",
	})

	prog, err := parseDirectory(filepath.Join(dir, "*.hau"))
	require.NoError(t, err)
	require.Len(t, prog.Functions, 2)
	assert.Equal(t, "double", prog.Functions[0].Name)
	assert.Equal(t, "main", prog.Functions[1].Name)

	out, err := codegen.Generate(prog)
	require.NoError(t, err)
	assert.Contains(t, out, "\nlong double(long n){\n    return (n * 2l);\n}\n")
	assert.Contains(t, out, "\nint main(){\n    display(double(2l));\n    return 0l;\n}\n")
	assert.Less(t, strings.Index(out, "double("), strings.Index(out, "int main("))
}

func TestParseDirectoryEmpty(t *testing.T) {
	_, err := parseDirectory(filepath.Join(t.TempDir(), "*.hau"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no source files match")
}

func TestCompileFileReportsParseErrors(t *testing.T) {
	dir := writeSources(t, map[string]string{"bad.hau": "to main do set x 1 end"})

	out, err := compileFile(filepath.Join(dir, "bad.hau"))
	assert.Empty(t, out)

	var expected errors.ExpectedOneOfKindGotKind
	require.ErrorAs(t, tracerr.Unwrap(err), &expected)
	assert.Equal(t, 1, expected.Location.From.Line)
}
