package assets

import (
	"io"
	"mime"
	"path/filepath"
)

type File struct {
	io.ReadCloser
	Filename string
}

// ContentType 根据扩展名推断，未知时作为二进制流
func (f *File) ContentType() string {
	if ct := mime.TypeByExtension(filepath.Ext(f.Filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
