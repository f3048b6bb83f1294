package models

// VersionInfo - ответ на запрос текущей версии.
// UpdateAvailable заполняется, только если клиент сообщил свою версию.
type VersionInfo struct {
	Version         string
	LatestVersion   string
	UpdateAvailable *bool
}

// UpdateDescriptor описывает артефакт обновления.
// Size равен 0, если файл артефакта отсутствует.
type UpdateDescriptor struct {
	DownloadURL string
	Version     string
	Size        int64
}
