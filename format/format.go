package format

import "path/filepath"

type Format string

// File format
const (
	UnknownFormat Format = "unknown"
	JSON          Format = "json"
)

// File format extension
const (
	UnknownExt string = ".unknown"
	JSONExt    string = ".json"
)

// GetFormat returns the file's format by filename extension.
func GetFormat(filename string) Format {
	return Ext2Format(filepath.Ext(filename))
}

func Ext2Format(ext string) Format {
	switch ext {
	case JSONExt:
		return JSON
	default:
		return UnknownFormat
	}
}

func Format2Ext(fmt Format) string {
	switch fmt {
	case JSON:
		return JSONExt
	default:
		return UnknownExt
	}
}

// IsInputFormat checks whether fmt is a parseable input format.
func IsInputFormat(fmt Format) bool {
	return fmt == JSON
}
