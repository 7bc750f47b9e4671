package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyOpenVideo         = "open_video"
	KeyExport            = "export"
	KeyStop              = "stop"
	KeyOpen              = "open"
	KeyReveal            = "reveal"
	KeyCopyPath          = "copy_path"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyOutputDirectory   = "output_directory"
	KeyThumbnailCount    = "thumbnail_count"
	KeyTrimMode          = "trim_mode"
	KeyTrimModeCopy      = "trim_mode_copy"
	KeyTrimModeReencode  = "trim_mode_reencode"
	KeyNotifyMode        = "notify_mode"
	KeyNotifyOnChange    = "notify_on_change"
	KeyNotifyEveryEvent  = "notify_every_event"
	KeySaveSidecar       = "save_sidecar"
	KeyAutoReveal        = "auto_reveal"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyStart             = "start"
	KeyEnd               = "end"
	KeyDuration          = "duration"
	KeyResetSelection    = "reset_selection"
	KeyNoVideo           = "no_video"
	KeyLoadingVideo      = "loading_video"
	KeyExtractingFrames  = "extracting_frames"
	KeyVideoLoaded       = "video_loaded"
	KeyVideoLoadFailed   = "video_load_failed"
	KeyNotAVideo         = "not_a_video"
	KeySessionRestored   = "session_restored"
	KeyExportStarted     = "export_started"
	KeyExportCompleted   = "export_completed"
	KeyExportFailed      = "export_failed"
	KeyInvalidSelection  = "invalid_selection"
	KeyErrorStoppingTask = "error_stopping_task"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyPathCopied        = "path_copied"
	KeyPathNotAvailable  = "path_not_available"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Clip Trimmer",
		KeyOpenVideo:         "Open Video",
		KeyExport:            "Export",
		KeyStop:              "Stop",
		KeyOpen:              "Open",
		KeyReveal:            "Reveal",
		KeyCopyPath:          "Path",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyOutputDirectory:   "Output Directory",
		KeyThumbnailCount:    "Preview Frames",
		KeyTrimMode:          "Trim Mode",
		KeyTrimModeCopy:      "Fast (stream copy)",
		KeyTrimModeReencode:  "Precise (re-encode)",
		KeyNotifyMode:        "Slider Updates",
		KeyNotifyOnChange:    "When a thumb moves",
		KeyNotifyEveryEvent:  "On every pointer event",
		KeySaveSidecar:       "Remember selection next to video",
		KeyAutoReveal:        "Reveal clip when export completes",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyStart:             "Start",
		KeyEnd:               "End",
		KeyDuration:          "Length",
		KeyResetSelection:    "Reset",
		KeyNoVideo:           "Open a video to start trimming",
		KeyLoadingVideo:      "Reading video...",
		KeyExtractingFrames:  "Extracting preview frames...",
		KeyVideoLoaded:       "Video loaded",
		KeyVideoLoadFailed:   "Could not load video",
		KeyNotAVideo:         "Not a supported video file",
		KeySessionRestored:   "Previous selection restored",
		KeyExportStarted:     "Export started",
		KeyExportCompleted:   "Export completed",
		KeyExportFailed:      "Export failed",
		KeyInvalidSelection:  "Select a non-empty range first",
		KeyErrorStoppingTask: "Error stopping export",
		KeyErrorOpeningFile:  "Error opening file",
		KeyPathCopied:        "Path copied to clipboard",
		KeyPathNotAvailable:  "File path not available yet",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Нарезка клипов",
		KeyOpenVideo:         "Открыть видео",
		KeyExport:            "Экспорт",
		KeyStop:              "Стоп",
		KeyOpen:              "Открыть",
		KeyReveal:            "Показать",
		KeyCopyPath:          "Путь",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyOutputDirectory:   "Папка для клипов",
		KeyThumbnailCount:    "Кадров на шкале",
		KeyTrimMode:          "Режим обрезки",
		KeyTrimModeCopy:      "Быстро (без перекодирования)",
		KeyTrimModeReencode:  "Точно (перекодирование)",
		KeyNotifyMode:        "Обновления ползунка",
		KeyNotifyOnChange:    "При перемещении",
		KeyNotifyEveryEvent:  "При каждом событии",
		KeySaveSidecar:       "Запоминать выделение рядом с видео",
		KeyAutoReveal:        "Показать клип после экспорта",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyStart:             "Начало",
		KeyEnd:               "Конец",
		KeyDuration:          "Длина",
		KeyResetSelection:    "Сброс",
		KeyNoVideo:           "Откройте видео, чтобы начать",
		KeyLoadingVideo:      "Чтение видео...",
		KeyExtractingFrames:  "Извлечение кадров...",
		KeyVideoLoaded:       "Видео загружено",
		KeyVideoLoadFailed:   "Не удалось загрузить видео",
		KeyNotAVideo:         "Неподдерживаемый видеофайл",
		KeySessionRestored:   "Предыдущее выделение восстановлено",
		KeyExportStarted:     "Экспорт начат",
		KeyExportCompleted:   "Экспорт завершён",
		KeyExportFailed:      "Ошибка экспорта",
		KeyInvalidSelection:  "Сначала выделите непустой фрагмент",
		KeyErrorStoppingTask: "Ошибка остановки экспорта",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyPathCopied:        "Путь скопирован",
		KeyPathNotAvailable:  "Путь к файлу пока недоступен",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Clip Trimmer",
		KeyOpenVideo:         "Abrir Vídeo",
		KeyExport:            "Exportar",
		KeyStop:              "Parar",
		KeyOpen:              "Abrir",
		KeyReveal:            "Mostrar",
		KeyCopyPath:          "Caminho",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyOutputDirectory:   "Diretório de Saída",
		KeyThumbnailCount:    "Quadros de Prévia",
		KeyTrimMode:          "Modo de Corte",
		KeyTrimModeCopy:      "Rápido (cópia de fluxo)",
		KeyTrimModeReencode:  "Preciso (recodificar)",
		KeyNotifyMode:        "Atualizações do Controle",
		KeyNotifyOnChange:    "Quando um marcador se move",
		KeyNotifyEveryEvent:  "Em todo evento",
		KeySaveSidecar:       "Lembrar seleção ao lado do vídeo",
		KeyAutoReveal:        "Mostrar clipe ao concluir",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyStart:             "Início",
		KeyEnd:               "Fim",
		KeyDuration:          "Duração",
		KeyResetSelection:    "Redefinir",
		KeyNoVideo:           "Abra um vídeo para começar",
		KeyLoadingVideo:      "Lendo vídeo...",
		KeyExtractingFrames:  "Extraindo quadros...",
		KeyVideoLoaded:       "Vídeo carregado",
		KeyVideoLoadFailed:   "Não foi possível carregar o vídeo",
		KeyNotAVideo:         "Arquivo de vídeo não suportado",
		KeySessionRestored:   "Seleção anterior restaurada",
		KeyExportStarted:     "Exportação iniciada",
		KeyExportCompleted:   "Exportação concluída",
		KeyExportFailed:      "Falha na exportação",
		KeyInvalidSelection:  "Selecione um trecho não vazio",
		KeyErrorStoppingTask: "Erro ao parar exportação",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyPathCopied:        "Caminho copiado",
		KeyPathNotAvailable:  "Caminho do arquivo ainda indisponível",
	}
}
