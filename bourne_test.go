package bourne

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bournejson/bourne/json"
	"github.com/bournejson/bourne/options"
)

func TestParseString(t *testing.T) {
	val, err := ParseString(`{"a": [1, 2.5, "x"]}`)
	require.NoError(t, err)
	member, ok := val.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, member.Len())

	_, err = ParseString(`{"a":`)
	assert.Error(t, err)
}

func TestParseStringOptions(t *testing.T) {
	_, err := ParseString("[[[]]]", options.MaxDepth(2))
	require.Error(t, err)
	assert.ErrorIs(t, err, json.ErrDepthExceeded)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "ok.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "Fred", "age": 197}`), 0644))
	val, err := ParseFile(path)
	require.NoError(t, err)
	member, ok := val.Get("age")
	require.True(t, ok)
	assert.Equal(t, int64(197), member.GetInt64())

	_, err = ParseFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestParseFileAnnotatesErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a": 01}`), 0644))

	_, err := ParseFile(path)
	require.Error(t, err)
	// The parse error stays matchable through the KV annotation.
	assert.ErrorIs(t, err, json.ErrInvalidCharacter)
	assert.Contains(t, err.Error(), "|File: "+path)
	assert.Contains(t, err.Error(), "|Index: 7")
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	require.NotNil(t, info)
	assert.Equal(t, version, info.Version)
}
