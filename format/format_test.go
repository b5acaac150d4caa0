package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFormat(t *testing.T) {
	assert.Equal(t, JSON, GetFormat("conf/app.json"))
	assert.Equal(t, UnknownFormat, GetFormat("conf/app.yaml"))
	assert.Equal(t, UnknownFormat, GetFormat("noext"))
}

func TestFormat2Ext(t *testing.T) {
	assert.Equal(t, JSONExt, Format2Ext(JSON))
	assert.Equal(t, UnknownExt, Format2Ext(Format("bin")))
}

func TestIsInputFormat(t *testing.T) {
	assert.True(t, IsInputFormat(JSON))
	assert.False(t, IsInputFormat(UnknownFormat))
}
