// Package release формирует сведения о текущей версии клиента и об артефакте обновления.
// Сами файлы раздаются статическим обработчиком; здесь только имя, ссылка и размер.
package release

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/magabrotheeeer/license-auth/internal/models"
)

// Options настройки раздачи обновлений.
type Options struct {
	Version          string // Текущая версия приложения
	Dir              string // Каталог с артефактами
	DownloadURL      string // Явная ссылка на скачивание, если задана
	PublicBaseURL    string // Базовый адрес сервера для ссылки вида <base>/updates/<file>
	ArtifactTemplate string // Шаблон имени файла, %s заменяется версией
}

// Service отдаёт сведения о версии и обновлении.
type Service struct {
	opts Options
}

// NewService создает Service.
func NewService(opts Options) *Service {
	return &Service{opts: opts}
}

// ArtifactName возвращает имя файла обновления для текущей версии.
func (s *Service) ArtifactName() string {
	return fmt.Sprintf(s.opts.ArtifactTemplate, s.opts.Version)
}

// Version возвращает текущую версию. Если клиент сообщил свою версию,
// заполняется признак доступности обновления.
func (s *Service) Version(current string) models.VersionInfo {
	info := models.VersionInfo{
		Version:       s.opts.Version,
		LatestVersion: s.opts.Version,
	}
	if current != "" {
		available := isOlder(current, s.opts.Version)
		info.UpdateAvailable = &available
	}
	return info
}

// Update возвращает описание артефакта обновления.
// Size равен 0, если файла нет в каталоге обновлений.
func (s *Service) Update() models.UpdateDescriptor {
	name := s.ArtifactName()

	url := s.opts.DownloadURL
	if url == "" {
		url = strings.TrimRight(s.opts.PublicBaseURL, "/") + "/updates/" + name
	}

	var size int64
	if info, err := os.Stat(filepath.Join(s.opts.Dir, name)); err == nil && info.Mode().IsRegular() {
		size = info.Size()
	}

	return models.UpdateDescriptor{
		DownloadURL: url,
		Version:     s.opts.Version,
		Size:        size,
	}
}

// isOlder сравнивает версии по semver; если хотя бы одна не разбирается,
// обновление считается доступным при любом расхождении строк.
func isOlder(current, latest string) bool {
	c, l := canonical(current), canonical(latest)
	if !semver.IsValid(c) || !semver.IsValid(l) {
		return current != latest
	}
	return semver.Compare(c, l) < 0
}

func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
