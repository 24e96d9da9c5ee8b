package handlers_test

import (
	"bytes"
	"class-website/app/server/revocation"
	"class-website/app/server/store"
	"class-website/app/server/types"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func png(name string) uploadFile {
	return uploadFile{name: name, contentType: "image/png", body: []byte("\x89PNG fake " + name)}
}

func dirEntries(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return len(entries)
}

func galleryList(t *testing.T, ts *testServer) []types.GalleryItem {
	t.Helper()
	rec := ts.do(t, http.MethodGet, "/api/gallery", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []types.GalleryItem
	decode(t, rec, &items)
	return items
}

func TestUploadAndDelete(t *testing.T) {
	eachBackend(t, func(t *testing.T, ts *testServer) {
		rec := ts.upload(t, png("class_trip-2024.png"), png("graduation.png"))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var res types.UploadResponse
		decode(t, rec, &res)
		assert.Equal(t, "2 photo(s) uploaded successfully", res.Message)
		require.Len(t, res.Data, 2)

		first := res.Data[0]
		assert.NotEmpty(t, first.ID)
		assert.Equal(t, "class_trip-2024.png", first.OriginalName)
		assert.Equal(t, "class trip 2024", first.Title)
		assert.Equal(t, "Uploaded via admin dashboard", first.Description)
		assert.False(t, first.Featured)
		assert.Equal(t, "image/png", first.Mimetype)
		assert.True(t, strings.HasPrefix(first.Filename, "photo-"))
		assert.FileExists(t, filepath.Join(ts.uploadDir, first.Filename))
		assert.FileExists(t, filepath.Join(ts.uploadDir, res.Data[1].Filename))
		assert.Len(t, galleryList(t, ts), 2)

		// 删除记录和文件
		rec = ts.do(t, http.MethodDelete, "/api/gallery/"+first.ID, ts.token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NoFileExists(t, filepath.Join(ts.uploadDir, first.Filename))
		assert.Len(t, galleryList(t, ts), 1)

		rec = ts.do(t, http.MethodDelete, "/api/gallery/"+first.ID, ts.token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Photo not found", errorMessage(t, rec))
	})
}

func TestUploadRejectsWholeBatch(t *testing.T) {
	eachBackend(t, func(t *testing.T, ts *testServer) {
		rec := ts.upload(t,
			png("a.png"),
			uploadFile{name: "notes.txt", contentType: "text/plain", body: []byte("hello")},
			png("c.png"),
		)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Only image files are allowed!", errorMessage(t, rec))

		assert.Equal(t, 0, dirEntries(t, ts.uploadDir))
		assert.Empty(t, galleryList(t, ts))
	})
}

func TestUploadLimits(t *testing.T) {
	eachBackend(t, func(t *testing.T, ts *testServer) {
		rec := ts.upload(t)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No files uploaded", errorMessage(t, rec))

		var many []uploadFile
		for i := range 11 {
			many = append(many, png(fmt.Sprintf("%d.png", i)))
		}
		rec = ts.upload(t, many...)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Too many files (max 10)", errorMessage(t, rec))

		big := uploadFile{name: "big.png", contentType: "image/png", body: bytes.Repeat([]byte{1}, 5*1024*1024+1)}
		rec = ts.upload(t, big)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "File too large (max 5MB)", errorMessage(t, rec))

		assert.Equal(t, 0, dirEntries(t, ts.uploadDir))
		assert.Empty(t, galleryList(t, ts))
	})
}

func TestGalleryImage(t *testing.T) {
	ts := newTestServer(t, backends[0].new(t), revocation.Noop{})

	rec := ts.upload(t, png("logo.png"))
	require.Equal(t, http.StatusCreated, rec.Code)
	var res types.UploadResponse
	decode(t, rec, &res)

	rec = ts.do(t, http.MethodGet, "/assets/images/gallery/"+res.Data[0].Filename, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG fake logo.png", rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/assets/images/gallery/photo-missing.png", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGalleryCreateAndUpdate(t *testing.T) {
	eachBackend(t, func(t *testing.T, ts *testServer) {
		rec := ts.do(t, http.MethodPost, "/api/gallery", ts.token, map[string]any{
			"title": "no file",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Filename is required", errorMessage(t, rec))

		require.NoError(t, os.WriteFile(filepath.Join(ts.uploadDir, "foto1.jpg"), []byte("jpeg"), 0644))
		rec = ts.do(t, http.MethodPost, "/api/gallery", ts.token, map[string]any{
			"filename": "foto1.jpg",
			"title":    "Moment Kelas Terbaik",
			"featured": true,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var created types.GalleryItem
		decode(t, rec, &created)
		assert.NotEmpty(t, created.ID)
		assert.True(t, created.Featured)
		assert.False(t, created.UploadDate.IsZero())

		rec = ts.do(t, http.MethodPut, "/api/gallery/"+created.ID, ts.token, map[string]any{
			"featured":    false,
			"description": "Kebersamaan",
			"filename":    "ignored.jpg",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		var updated types.GalleryItem
		decode(t, rec, &updated)
		assert.Equal(t, created.ID, updated.ID)
		assert.False(t, updated.Featured)
		assert.Equal(t, "Kebersamaan", updated.Description)
		assert.Equal(t, "Moment Kelas Terbaik", updated.Title)
		assert.Equal(t, "foto1.jpg", updated.Filename)
	})
}

func TestGalleryCreateRequiresUnusedFile(t *testing.T) {
	eachBackend(t, func(t *testing.T, ts *testServer) {
		// 文件不存在
		rec := ts.do(t, http.MethodPost, "/api/gallery", ts.token, map[string]any{"filename": "ghost.jpg"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "File does not exist", errorMessage(t, rec))

		rec = ts.do(t, http.MethodPost, "/api/gallery", ts.token, map[string]any{"filename": "../app_test.go"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		// 文件已经属于上传产生的记录
		rec = ts.upload(t, png("a.png"))
		require.Equal(t, http.StatusCreated, rec.Code)
		var res types.UploadResponse
		decode(t, rec, &res)
		filename := res.Data[0].Filename

		rec = ts.do(t, http.MethodPost, "/api/gallery", ts.token, map[string]any{"filename": filename})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorMessage(t, rec), "already used")

		items := galleryList(t, ts)
		require.Len(t, items, 1)
		assert.Equal(t, res.Data[0].ID, items[0].ID)
		assert.FileExists(t, filepath.Join(ts.uploadDir, filename))
	})
}

// failingGalleryStore 文件写入成功后记录写入失败
type failingGalleryStore struct {
	store.Store
}

func (failingGalleryStore) GalleryCreate(context.Context, ...*types.GalleryItem) error {
	return errors.New("database is gone")
}

func TestUploadRemovesFilesWhenRecordsFail(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			ts := newTestServer(t, failingGalleryStore{Store: b.new(t)}, revocation.Noop{})

			rec := ts.upload(t, png("a.png"), png("b.png"))
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, "Failed to upload images", errorMessage(t, rec))

			assert.Equal(t, 0, dirEntries(t, ts.uploadDir))
			assert.Empty(t, galleryList(t, ts))
		})
	}
}

// 每个文件都没超过大小限制时，数量超限优先于请求体大小
func TestUploadTooManyLargeFiles(t *testing.T) {
	ts := newTestServer(t, backends[0].new(t), revocation.Noop{})

	body := bytes.Repeat([]byte{7}, 4*1024*1024+800*1024)
	var files []uploadFile
	for i := range 11 {
		files = append(files, uploadFile{name: fmt.Sprintf("%d.png", i), contentType: "image/png", body: body})
	}

	rec := ts.upload(t, files...)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Too many files (max 10)", errorMessage(t, rec))
	assert.Equal(t, 0, dirEntries(t, ts.uploadDir))
}
