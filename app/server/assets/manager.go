// Package assets stores uploaded gallery images under generated names.
package assets

import (
	"class-website/app/server/constants"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrNoFiles      = errors.New("No files uploaded")
	ErrTooManyFiles = fmt.Errorf("Too many files (max %d)", constants.UploadMaxFiles)
	ErrTooLarge     = fmt.Errorf("File too large (max %dMB)", constants.UploadMaxFileSize/1024/1024)
	ErrNotImage     = errors.New("Only image files are allowed!")
	ErrBadFilename  = errors.New("invalid filename")
	ErrNotExist     = errors.New("file does not exist")
)

// Asset 已保存的文件
type Asset struct {
	Filename     string
	OriginalName string
	Size         int64
	Mimetype     string
}

type Manager struct {
	l        *zap.Logger
	blob     Blob
	maxSize  int64
	maxFiles int
	now      func() time.Time
}

func NewManager(blob Blob, l *zap.Logger) *Manager {
	return &Manager{
		l:        l,
		blob:     blob,
		maxSize:  constants.UploadMaxFileSize,
		maxFiles: constants.UploadMaxFiles,
		now:      time.Now,
	}
}

// Validate 检查整批文件，任何一个不合格都拒绝整批
func (m *Manager) Validate(files []*multipart.FileHeader) error {
	if len(files) == 0 {
		return ErrNoFiles
	}
	if len(files) > m.maxFiles {
		return ErrTooManyFiles
	}
	for _, fh := range files {
		if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
			return fmt.Errorf("%w: %s", ErrNotImage, fh.Filename)
		}
		if fh.Size > m.maxSize {
			return fmt.Errorf("%w: %s", ErrTooLarge, fh.Filename)
		}
	}
	return nil
}

var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)

// GenerateFilename 时间戳 + 随机数 + 原始扩展名，原始文件名不会出现在路径里
func (m *Manager) GenerateFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !extPattern.MatchString(ext) {
		ext = ""
	}
	return fmt.Sprintf("%s%d-%d%s", constants.UploadFilenamePrefix, m.now().UnixMilli(), rand.IntN(1e9), ext)
}

// Store 保存单个文件
func (m *Manager) Store(ctx context.Context, fh *multipart.FileHeader) (*Asset, error) {
	if err := m.Validate([]*multipart.FileHeader{fh}); err != nil {
		return nil, err
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	asset := &Asset{
		Filename:     m.GenerateFilename(fh.Filename),
		OriginalName: filepath.Base(fh.Filename),
		Size:         fh.Size,
		Mimetype:     fh.Header.Get("Content-Type"),
	}
	if err = m.blob.Put(ctx, asset.Filename, src, fh.Size, asset.Mimetype); err != nil {
		return nil, fmt.Errorf("failed to store %s: %w", fh.Filename, err)
	}

	return asset, nil
}

// StoreAll 先校验整批，再逐个写入；写入中途失败会删除本批已写入的文件
func (m *Manager) StoreAll(ctx context.Context, files []*multipart.FileHeader) ([]Asset, error) {
	if err := m.Validate(files); err != nil {
		return nil, err
	}

	stored := make([]Asset, 0, len(files))
	for _, fh := range files {
		asset, err := m.Store(ctx, fh)
		if err != nil {
			m.Cleanup(ctx, stored)
			return nil, err
		}
		stored = append(stored, *asset)
	}
	return stored, nil
}

// Cleanup 补偿删除，尽力而为
func (m *Manager) Cleanup(ctx context.Context, stored []Asset) {
	for _, asset := range stored {
		if err := m.Remove(ctx, asset.Filename); err != nil {
			m.l.Error("failed to clean up stored file", zap.String("filename", asset.Filename), zap.Error(err))
		}
	}
}

// Remove 文件不存在不视为错误
func (m *Manager) Remove(ctx context.Context, filename string) error {
	if err := checkFilename(filename); err != nil {
		return err
	}
	return m.blob.Remove(ctx, filename)
}

// Open 读取已保存的文件
func (m *Manager) Open(ctx context.Context, filename string) (*File, error) {
	if err := checkFilename(filename); err != nil {
		return nil, err
	}
	rc, err := m.blob.Open(ctx, filename)
	if err != nil {
		return nil, err
	}
	return &File{ReadCloser: rc, Filename: filename}, nil
}

// Exists 非法的文件名视为不存在
func (m *Manager) Exists(ctx context.Context, filename string) (bool, error) {
	if err := checkFilename(filename); err != nil {
		return false, nil
	}
	return m.blob.Exists(ctx, filename)
}

func checkFilename(filename string) error {
	if filename == "" || filename == "." || filename == ".." ||
		strings.ContainsAny(filename, `/\`) || strings.Contains(filename, "..") {
		return ErrBadFilename
	}
	return nil
}
