package files

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesHandler(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "UpdateAssistant_v1.0.exe"), []byte("MZ binary"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "old"), 0o755))

	h := New("/updates", dir)

	t.Run("файл отдаётся вложением", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/updates/UpdateAssistant_v1.0.exe", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
		assert.Equal(t, "attachment", w.Header().Get("Content-Disposition"))
		assert.Equal(t, "MZ binary", w.Body.String())
	})

	t.Run("файла нет", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/updates/missing.exe", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("список каталога не отдаётся", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/updates/", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("выход за пределы каталога", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/updates/x", nil)
		req.URL.Path = "/updates/../../etc/passwd"
		h.ServeHTTP(w, req)

		assert.NotEqual(t, http.StatusOK, w.Code)
	})
}
