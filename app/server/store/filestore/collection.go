package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// collection 一个 JSON 文件对应一个集合：每次写入都是整体读出、修改、整体写回。
// mu 串行化同一集合的读改写，否则并发请求会互相覆盖。
type collection[T any] struct {
	mu   sync.Mutex
	path string
}

func newCollection[T any](dir string, name string) *collection[T] {
	return &collection[T]{
		path: filepath.Join(dir, name),
	}
}

// load 文件不存在时视为空集合
func (c *collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	var records []T
	if len(data) > 0 {
		if err = json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("decode %s: %w", c.path, err)
		}
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// save 先写临时文件再重命名，进程中途退出也不会留下半个文件
func (c *collection[T]) save(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", c.path, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err = os.Rename(tmpName, c.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", c.path, err)
	}
	return nil
}

// read 只读访问
func (c *collection[T]) read() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.load()
}

// mutate 在锁内完成一次读改写， fn 返回 false 表示无需写回
func (c *collection[T]) mutate(fn func(records []T) ([]T, bool, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return err
	}

	records, changed, err := fn(records)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	return c.save(records)
}
