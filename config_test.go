package main

import (
	stderrors "errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/coreos/pkg/capnslog"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ztrue/tracerr"
)

func TestManifestDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), manifestName)
	require.NoError(t, writeManifest(path, haumeaModule{Package: "fizz"}))

	doc, err := readManifest(path)
	require.NoError(t, err)
	assert.Equal(t, haumeaModule{Package: "fizz", Output: "fizz", Sources: "*.hau"}, doc)
}

func TestManifestExplicitFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), manifestName)
	data := "package: fizz\noutput: bin/fizz\nsources: src/*.hau\n"
	require.NoError(t, ioutil.WriteFile(path, []byte(data), 0644))

	doc, err := readManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "bin/fizz", doc.Output)
	assert.Equal(t, "src/*.hau", doc.Sources)
}

func TestManifestValidation(t *testing.T) {
	dir := t.TempDir()

	err := writeManifest(filepath.Join(dir, "empty.yaml"), haumeaModule{})
	var verrs validator.ValidationErrors
	require.True(t, stderrors.As(tracerr.Unwrap(err), &verrs), "%v", err)
	assert.Equal(t, "Package", verrs[0].Field())
	assert.Equal(t, "required", verrs[0].Tag())

	err = writeManifest(filepath.Join(dir, "slash.yaml"), haumeaModule{Package: "a/b"})
	require.True(t, stderrors.As(tracerr.Unwrap(err), &verrs), "%v", err)
	assert.Equal(t, "excludesall", verrs[0].Tag())

	path := filepath.Join(dir, manifestName)
	require.NoError(t, ioutil.WriteFile(path, []byte("output: fizz\n"), 0644))
	_, err = readManifest(path)
	assert.Error(t, err)
}

func TestManifestMissing(t *testing.T) {
	_, err := readManifest(filepath.Join(t.TempDir(), manifestName))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(tracerr.Unwrap(err)))
}

// clearEnv unsets key for the duration of the test.
func clearEnv(t *testing.T, key string) {
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadEnvironmentDefaults(t *testing.T) {
	clearEnv(t, "HAUMEA_CC")
	clearEnv(t, "HAUMEA_LOG_LEVEL")

	loaded, err := loadEnvironment(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, environment{CC: "cc", LogLevel: capnslog.INFO}, loaded)
}

func TestLoadEnvironmentFile(t *testing.T) {
	clearEnv(t, "HAUMEA_CC")
	clearEnv(t, "HAUMEA_LOG_LEVEL")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, ioutil.WriteFile(path, []byte("HAUMEA_CC=clang\nHAUMEA_LOG_LEVEL=debug\n"), 0644))

	loaded, err := loadEnvironment(path)
	require.NoError(t, err)
	assert.Equal(t, "clang", loaded.CC)
	assert.Equal(t, capnslog.DEBUG, loaded.LogLevel)
}

func TestLoadEnvironmentPrefersProcess(t *testing.T) {
	t.Setenv("HAUMEA_CC", "tcc")
	clearEnv(t, "HAUMEA_LOG_LEVEL")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, ioutil.WriteFile(path, []byte("HAUMEA_CC=clang\n"), 0644))

	loaded, err := loadEnvironment(path)
	require.NoError(t, err)
	assert.Equal(t, "tcc", loaded.CC)
}

func TestLoadEnvironmentBadLevel(t *testing.T) {
	t.Setenv("HAUMEA_LOG_LEVEL", "loud")

	_, err := loadEnvironment(filepath.Join(t.TempDir(), ".env"))
	assert.Error(t, err)
}
