package assets

import (
	"context"
	"io"
)

// Blob 图片文件的实际存放位置
type Blob interface {
	// Put 写入新文件，同名文件已存在时返回错误
	Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	// Remove 删除文件，文件不存在不视为错误
	Remove(ctx context.Context, name string) error
	// Open 读取文件， ErrNotExist 表示不存在
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Exists 文件是否存在
	Exists(ctx context.Context, name string) (bool, error)
}
