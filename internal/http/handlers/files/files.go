// Package files раздаёт артефакты обновлений из каталога на диске.
// Файлы отдаются как вложение; список содержимого каталога не отдаётся.
package files

import (
	"net/http"
	"strings"
)

// New возвращает обработчик, который отдаёт файлы из dir. prefix срезается с пути запроса.
func New(prefix, dir string) http.Handler {
	fs := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", "attachment")
		fs.ServeHTTP(w, r)
	})
}
