// Package i18n holds the user-facing text catalogue shared by the desktop
// window, the controller and the command line.
package i18n

import (
	"os"
	"sort"
	"strings"
	"sync"
)

// Localization manages UI text translations. It is safe for concurrent use;
// the catalogue is fixed after construction, only the language changes.
type Localization struct {
	mu              sync.RWMutex
	currentLanguage string
	texts           map[string]map[string]string
}

// Language codes
const (
	LanguageSystem  = "system"
	LanguageEnglish = "en"
	LanguagePolish  = "pl"
	LanguageRussian = "ru"
	LanguagePortug  = "pt"
)

// Text keys for localization
const (
	KeyAppTitle             = "app_title"
	KeySingleLinkTab        = "single_link_tab"
	KeyPlaylistTab          = "playlist_tab"
	KeyEnterVideoURL        = "enter_video_url"
	KeyEnterPlaylistURL     = "enter_playlist_url"
	KeyURLPlaceholder       = "url_placeholder"
	KeyDownloadVideo        = "download_video"
	KeyDownloadAudio        = "download_audio"
	KeyDownloadPlaylist     = "download_playlist"
	KeyErrorPrefix          = "error_prefix"
	KeyInvalidLink          = "invalid_link"
	KeyVideoDownloaded      = "video_downloaded"
	KeyAudioDownloaded      = "audio_downloaded"
	KeyPlaylistNotSupported = "playlist_not_supported"
	KeyAlreadyInProgress    = "already_in_progress"
	KeyTranscoderMissing    = "transcoder_missing"
	KeyFile                 = "file"
	KeyPaths                = "paths"
	KeyLanguage             = "language"
	KeyQuit                 = "quit"
	KeyAppDirectory         = "app_directory"
	KeyOutputDirectory      = "output_directory"
	KeyTempDirectory        = "temp_directory"
	KeyTranscoder           = "transcoder"
	KeyNotFound             = "not_found"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LanguageEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown codes are ignored.
func (l *Localization) SetLanguage(lang string) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == LanguageSystem || lang == "" {
		lang = systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.mu.Lock()
		l.currentLanguage = lang
		l.mu.Unlock()
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.GetCurrentLanguage()]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[LanguageEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LanguageEnglish: "English",
		LanguagePolish:  "Polski",
		LanguageRussian: "Русский",
		LanguagePortug:  "Português",
	}
}

// LanguageCodes returns the available language codes in stable order
func (l *Localization) LanguageCodes() []string {
	codes := make([]string, 0, len(l.texts))
	for code := range l.texts {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// systemLanguage derives a language code from the POSIX locale variables
func systemLanguage() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(env)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		if len(value) >= 2 {
			return strings.ToLower(value[:2])
		}
	}
	return LanguageEnglish
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts[LanguageEnglish] = map[string]string{
		KeyAppTitle:             "YouTube Downloader",
		KeySingleLinkTab:        "Single link",
		KeyPlaylistTab:          "Playlist",
		KeyEnterVideoURL:        "Enter a YouTube video link:",
		KeyEnterPlaylistURL:     "Enter a YouTube playlist link:",
		KeyURLPlaceholder:       "https://www.youtube.com/watch?v=...",
		KeyDownloadVideo:        "Download video",
		KeyDownloadAudio:        "Download audio",
		KeyDownloadPlaylist:     "Download playlist",
		KeyErrorPrefix:          "Error",
		KeyInvalidLink:          "please provide a valid link.",
		KeyVideoDownloaded:      "Success: the video has been downloaded.",
		KeyAudioDownloaded:      "Success: the audio has been downloaded as %s.",
		KeyPlaylistNotSupported: "Playlist download is not implemented yet.",
		KeyAlreadyInProgress:    "A download is already in progress.",
		KeyTranscoderMissing:    "audio transcoder not found",
		KeyFile:                 "File",
		KeyPaths:                "Paths",
		KeyLanguage:             "Language",
		KeyQuit:                 "Quit",
		KeyAppDirectory:         "Application directory",
		KeyOutputDirectory:      "Output directory",
		KeyTempDirectory:        "Temporary files",
		KeyTranscoder:           "Transcoder",
		KeyNotFound:             "not found",
	}

	l.texts[LanguagePolish] = map[string]string{
		KeyAppTitle:             "YouTube Downloader",
		KeySingleLinkTab:        "Pojedynczy link",
		KeyPlaylistTab:          "Playlista",
		KeyEnterVideoURL:        "Wprowadź link do filmu na YouTube:",
		KeyEnterPlaylistURL:     "Wprowadź link do playlisty na YouTube:",
		KeyURLPlaceholder:       "https://www.youtube.com/watch?v=...",
		KeyDownloadVideo:        "Pobierz Film",
		KeyDownloadAudio:        "Pobierz Muzykę",
		KeyDownloadPlaylist:     "Pobierz Playlistę",
		KeyErrorPrefix:          "Błąd",
		KeyInvalidLink:          "Proszę podać prawidłowy link do YouTube.",
		KeyVideoDownloaded:      "Sukces: Filmik został pobrany.",
		KeyAudioDownloaded:      "Muzyka została pobrana jako %s.",
		KeyPlaylistNotSupported: "Pobieranie playlist nie jest jeszcze zaimplementowane.",
		KeyAlreadyInProgress:    "Pobieranie już trwa.",
		KeyTranscoderMissing:    "nie znaleziono programu do konwersji audio",
		KeyFile:                 "Plik",
		KeyPaths:                "Ścieżki",
		KeyLanguage:             "Język",
		KeyQuit:                 "Zakończ",
		KeyAppDirectory:         "Katalog aplikacji",
		KeyOutputDirectory:      "Katalog docelowy",
		KeyTempDirectory:        "Pliki tymczasowe",
		KeyTranscoder:           "Konwerter",
		KeyNotFound:             "nie znaleziono",
	}

	l.texts[LanguageRussian] = map[string]string{
		KeyAppTitle:             "YouTube Загрузчик",
		KeySingleLinkTab:        "Одна ссылка",
		KeyPlaylistTab:          "Плейлист",
		KeyEnterVideoURL:        "Введите ссылку на видео YouTube:",
		KeyEnterPlaylistURL:     "Введите ссылку на плейлист YouTube:",
		KeyURLPlaceholder:       "https://www.youtube.com/watch?v=...",
		KeyDownloadVideo:        "Скачать видео",
		KeyDownloadAudio:        "Скачать аудио",
		KeyDownloadPlaylist:     "Скачать плейлист",
		KeyErrorPrefix:          "Ошибка",
		KeyInvalidLink:          "пожалуйста, укажите корректную ссылку.",
		KeyVideoDownloaded:      "Готово: видео загружено.",
		KeyAudioDownloaded:      "Готово: аудио загружено в формате %s.",
		KeyPlaylistNotSupported: "Загрузка плейлистов пока не реализована.",
		KeyAlreadyInProgress:    "Загрузка уже выполняется.",
		KeyTranscoderMissing:    "не найден аудио транскодер",
		KeyFile:                 "Файл",
		KeyPaths:                "Пути",
		KeyLanguage:             "Язык",
		KeyQuit:                 "Выход",
		KeyAppDirectory:         "Папка приложения",
		KeyOutputDirectory:      "Папка загрузки",
		KeyTempDirectory:        "Временные файлы",
		KeyTranscoder:           "Транскодер",
		KeyNotFound:             "не найден",
	}

	l.texts[LanguagePortug] = map[string]string{
		KeyAppTitle:             "YouTube Downloader",
		KeySingleLinkTab:        "Link único",
		KeyPlaylistTab:          "Playlist",
		KeyEnterVideoURL:        "Digite o link do vídeo do YouTube:",
		KeyEnterPlaylistURL:     "Digite o link da playlist do YouTube:",
		KeyURLPlaceholder:       "https://www.youtube.com/watch?v=...",
		KeyDownloadVideo:        "Baixar vídeo",
		KeyDownloadAudio:        "Baixar áudio",
		KeyDownloadPlaylist:     "Baixar playlist",
		KeyErrorPrefix:          "Erro",
		KeyInvalidLink:          "por favor, informe um link válido.",
		KeyVideoDownloaded:      "Sucesso: o vídeo foi baixado.",
		KeyAudioDownloaded:      "Sucesso: o áudio foi baixado como %s.",
		KeyPlaylistNotSupported: "O download de playlists ainda não foi implementado.",
		KeyAlreadyInProgress:    "Um download já está em andamento.",
		KeyTranscoderMissing:    "transcodificador de áudio não encontrado",
		KeyFile:                 "Arquivo",
		KeyPaths:                "Caminhos",
		KeyLanguage:             "Idioma",
		KeyQuit:                 "Sair",
		KeyAppDirectory:         "Diretório do aplicativo",
		KeyOutputDirectory:      "Diretório de saída",
		KeyTempDirectory:        "Arquivos temporários",
		KeyTranscoder:           "Transcodificador",
		KeyNotFound:             "não encontrado",
	}
}
