package ui

import (
	"fmt"

	"fyne.io/fyne/v2/lang"
	"github.com/ytget/yt-playlist-maker/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyGenerate          = "generate"
	KeyCancel            = "cancel"
	KeyExportCSV         = "export_csv"
	KeyClear             = "clear"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyExportDirectory   = "export_directory"
	KeyAutoReveal        = "auto_reveal"
	KeyChunkSize         = "chunk_size"
	KeyUnlimited         = "unlimited"
	KeyUnlimitedWarning  = "unlimited_warning"
	KeySave              = "save"
	KeyBrowse            = "browse"
	KeyEnterURLs         = "enter_urls"
	KeySettingsSaved     = "settings_saved"
	KeyPleaseEnterURLs   = "please_enter_urls"
	KeyAlreadyRunning    = "already_running"
	KeyNoResultsToExport = "no_results_to_export"
	KeyExported          = "exported"
	KeyErrorExporting    = "error_exporting"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyErrorGenerating   = "error_generating"
	KeyCopied            = "copied"
	KeyCopy              = "copy"
	KeyOpen              = "open"
	KeyResults           = "results"
	KeyNoPlaylists       = "no_playlists"
	KeyStatsFormat       = "stats_format"
	KeyElapsedFormat     = "elapsed_format"
	KeyLabelMulti        = "label_multi"
	KeyLabelSingle       = "label_single"

	// Progress phases
	KeyPhaseStarting   = "phase_starting"
	KeyPhaseParsing    = "phase_parsing"
	KeyPhaseChunking   = "phase_chunking"
	KeyPhaseProcessing = "phase_processing"
	KeyPhaseChunk      = "phase_chunk"
	KeyPhaseFinalizing = "phase_finalizing"
	KeyPhaseDone       = "phase_done"
	KeyPhaseNoValid    = "phase_no_valid"
	KeyPhaseCancelled  = "phase_cancelled"
	KeyPhaseFailed     = "phase_failed"
)

// Language codes
const (
	LangSystem   = "system"
	LangEnglish  = "en"
	LangRussian  = "ru"
	LangPortugue = "pt"
	LangJapanese = "ja"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; "system" resolves to the OS locale
func (l *Localization) SetLanguage(code string) {
	if code == LangSystem {
		code = lang.SystemLocale().LanguageString()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
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
	if texts, exists := l.texts[LangEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized format for key applied to args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LangEnglish:  "English",
		LangRussian:  "Русский",
		LangPortugue: "Português",
		LangJapanese: "日本語",
	}
}

// ProgressMessage returns the localized status text for a progress report
func (l *Localization) ProgressMessage(p model.Progress) string {
	switch p.Phase {
	case model.PhaseStarting:
		return l.GetText(KeyPhaseStarting)
	case model.PhaseParsing:
		return l.GetText(KeyPhaseParsing)
	case model.PhaseChunking:
		return l.GetText(KeyPhaseChunking)
	case model.PhaseProcessing:
		if p.Chunk > 0 {
			return l.Format(KeyPhaseChunk, p.Chunk, p.TotalChunks)
		}
		return l.Format(KeyPhaseProcessing, p.TotalChunks)
	case model.PhaseFinalizing:
		return l.GetText(KeyPhaseFinalizing)
	case model.PhaseDone:
		return l.GetText(KeyPhaseDone)
	case model.PhaseNoValid:
		return l.GetText(KeyPhaseNoValid)
	case model.PhaseCancelled:
		return l.GetText(KeyPhaseCancelled)
	case model.PhaseFailed:
		return l.GetText(KeyPhaseFailed)
	default:
		return p.Message
	}
}

// ResultLabel returns the localized display label for a playlist link
func (l *Localization) ResultLabel(r model.PlaylistResult) string {
	return r.LabelWith(l.GetText(KeyLabelMulti), l.GetText(KeyLabelSingle))
}

// ChunkSizeLabel returns the localized option text for a chunk size
func (l *Localization) ChunkSizeLabel(size model.ChunkSize) string {
	if size.IsUnlimited() {
		return l.GetText(KeyUnlimited)
	}
	return size.String()
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts[LangEnglish] = map[string]string{
		KeyAppTitle:          "YT Playlist Maker",
		KeyGenerate:          "Generate",
		KeyCancel:            "Cancel",
		KeyExportCSV:         "Export CSV",
		KeyClear:             "Clear",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyExportDirectory:   "Export Directory",
		KeyAutoReveal:        "Reveal exported file",
		KeyChunkSize:         "Videos per playlist",
		KeyUnlimited:         "Unlimited",
		KeyUnlimitedWarning:  "Very long playlist URLs may be rejected by YouTube",
		KeySave:              "Save",
		KeyBrowse:            "Browse",
		KeyEnterURLs:         "Paste YouTube URLs or video IDs, one per line",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyPleaseEnterURLs:   "Please enter YouTube URLs",
		KeyAlreadyRunning:    "Generation is already running",
		KeyNoResultsToExport: "No playlists to export",
		KeyExported:          "Exported to",
		KeyErrorExporting:    "Error exporting CSV",
		KeyErrorOpeningFile:  "Error opening file",
		KeyErrorGenerating:   "An error occurred during processing",
		KeyCopied:            "URL copied to clipboard",
		KeyCopy:              "Copy",
		KeyOpen:              "Open",
		KeyResults:           "Playlists",
		KeyNoPlaylists:       "No playlists were generated",
		KeyStatsFormat:       "Total: %d · Valid: %d · Invalid: %d",
		KeyElapsedFormat:     "Elapsed: %s",
		KeyLabelMulti:        "Playlist %d/%d (%d videos)",
		KeyLabelSingle:       "Playlist (%d videos)",
		KeyPhaseStarting:     "Starting...",
		KeyPhaseParsing:      "Parsing URLs...",
		KeyPhaseChunking:     "Creating chunks...",
		KeyPhaseProcessing:   "Processing %d chunks...",
		KeyPhaseChunk:        "Processing chunk %d/%d...",
		KeyPhaseFinalizing:   "Preparing results...",
		KeyPhaseDone:         "Done!",
		KeyPhaseNoValid:      "No valid URLs found",
		KeyPhaseCancelled:    "Cancelled",
		KeyPhaseFailed:       "Generation failed",
	}

	// Russian texts
	l.texts[LangRussian] = map[string]string{
		KeyAppTitle:          "YT Плейлисты",
		KeyGenerate:          "Создать",
		KeyCancel:            "Отмена",
		KeyExportCSV:         "Экспорт CSV",
		KeyClear:             "Очистить",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyExportDirectory:   "Папка экспорта",
		KeyAutoReveal:        "Показать файл после экспорта",
		KeyChunkSize:         "Видео в плейлисте",
		KeyUnlimited:         "Без ограничений",
		KeyUnlimitedWarning:  "YouTube может отклонить слишком длинные ссылки",
		KeySave:              "Сохранить",
		KeyBrowse:            "Обзор",
		KeyEnterURLs:         "Вставьте ссылки YouTube или ID видео, по одной в строке",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyPleaseEnterURLs:   "Пожалуйста, введите ссылки YouTube",
		KeyAlreadyRunning:    "Создание уже выполняется",
		KeyNoResultsToExport: "Нет плейлистов для экспорта",
		KeyExported:          "Сохранено в",
		KeyErrorExporting:    "Ошибка экспорта CSV",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyErrorGenerating:   "Во время обработки произошла ошибка",
		KeyCopied:            "Ссылка скопирована",
		KeyCopy:              "Копировать",
		KeyOpen:              "Открыть",
		KeyResults:           "Плейлисты",
		KeyNoPlaylists:       "Плейлисты не созданы",
		KeyStatsFormat:       "Всего: %d · Корректных: %d · Некорректных: %d",
		KeyElapsedFormat:     "Прошло: %s",
		KeyLabelMulti:        "Плейлист %d/%d (%d видео)",
		KeyLabelSingle:       "Плейлист (%d видео)",
		KeyPhaseStarting:     "Запуск...",
		KeyPhaseParsing:      "Разбор ссылок...",
		KeyPhaseChunking:     "Разбиение на части...",
		KeyPhaseProcessing:   "Обработка частей: %d...",
		KeyPhaseChunk:        "Обработка части %d/%d...",
		KeyPhaseFinalizing:   "Подготовка результатов...",
		KeyPhaseDone:         "Готово!",
		KeyPhaseNoValid:      "Корректные ссылки не найдены",
		KeyPhaseCancelled:    "Отменено",
		KeyPhaseFailed:       "Ошибка создания",
	}

	// Portuguese texts
	l.texts[LangPortugue] = map[string]string{
		KeyAppTitle:          "YT Playlist Maker",
		KeyGenerate:          "Gerar",
		KeyCancel:            "Cancelar",
		KeyExportCSV:         "Exportar CSV",
		KeyClear:             "Limpar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyExportDirectory:   "Diretório de Exportação",
		KeyAutoReveal:        "Mostrar arquivo exportado",
		KeyChunkSize:         "Vídeos por playlist",
		KeyUnlimited:         "Ilimitado",
		KeyUnlimitedWarning:  "URLs muito longas podem ser rejeitadas pelo YouTube",
		KeySave:              "Salvar",
		KeyBrowse:            "Navegar",
		KeyEnterURLs:         "Cole URLs do YouTube ou IDs de vídeo, um por linha",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyPleaseEnterURLs:   "Por favor, digite URLs do YouTube",
		KeyAlreadyRunning:    "A geração já está em andamento",
		KeyNoResultsToExport: "Nenhuma playlist para exportar",
		KeyExported:          "Exportado para",
		KeyErrorExporting:    "Erro ao exportar CSV",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyErrorGenerating:   "Ocorreu um erro durante o processamento",
		KeyCopied:            "URL copiada",
		KeyCopy:              "Copiar",
		KeyOpen:              "Abrir",
		KeyResults:           "Playlists",
		KeyNoPlaylists:       "Nenhuma playlist foi gerada",
		KeyStatsFormat:       "Total: %d · Válidos: %d · Inválidos: %d",
		KeyElapsedFormat:     "Tempo: %s",
		KeyLabelMulti:        "Playlist %d/%d (%d vídeos)",
		KeyLabelSingle:       "Playlist (%d vídeos)",
		KeyPhaseStarting:     "Iniciando...",
		KeyPhaseParsing:      "Analisando URLs...",
		KeyPhaseChunking:     "Criando partes...",
		KeyPhaseProcessing:   "Processando %d partes...",
		KeyPhaseChunk:        "Processando parte %d/%d...",
		KeyPhaseFinalizing:   "Preparando resultados...",
		KeyPhaseDone:         "Concluído!",
		KeyPhaseNoValid:      "Nenhuma URL válida encontrada",
		KeyPhaseCancelled:    "Cancelado",
		KeyPhaseFailed:       "Falha na geração",
	}

	// Japanese texts
	l.texts[LangJapanese] = map[string]string{
		KeyAppTitle:          "YouTube プレイリストメーカー",
		KeyGenerate:          "生成",
		KeyCancel:            "キャンセル",
		KeyExportCSV:         "CSVエクスポート",
		KeyClear:             "クリア",
		KeySettings:          "設定",
		KeyFile:              "ファイル",
		KeyLanguage:          "言語",
		KeyExportDirectory:   "エクスポート先",
		KeyAutoReveal:        "エクスポート後にファイルを表示",
		KeyChunkSize:         "プレイリストあたりの動画数",
		KeyUnlimited:         "無制限",
		KeyUnlimitedWarning:  "長すぎるURLはYouTubeで開けない場合があります",
		KeySave:              "保存",
		KeyBrowse:            "参照",
		KeyEnterURLs:         "YouTube URLまたは動画IDを1行に1つずつ貼り付けてください",
		KeySettingsSaved:     "設定を保存しました",
		KeyPleaseEnterURLs:   "YouTube URLを入力してください。",
		KeyAlreadyRunning:    "すでに処理中です",
		KeyNoResultsToExport: "エクスポートするプレイリストがありません",
		KeyExported:          "エクスポート先",
		KeyErrorExporting:    "CSVのエクスポートに失敗しました",
		KeyErrorOpeningFile:  "ファイルを開けませんでした",
		KeyErrorGenerating:   "処理中にエラーが発生しました。",
		KeyCopied:            "URLをコピーしました",
		KeyCopy:              "コピー",
		KeyOpen:              "開く",
		KeyResults:           "プレイリスト",
		KeyNoPlaylists:       "生成されたプレイリストがありません",
		KeyStatsFormat:       "合計: %d · 有効: %d · 無効: %d",
		KeyElapsedFormat:     "経過時間: %s",
		KeyLabelMulti:        "プレイリスト %d/%d (%d件の動画)",
		KeyLabelSingle:       "プレイリスト (%d件の動画)",
		KeyPhaseStarting:     "処理を開始しています...",
		KeyPhaseParsing:      "URLを解析中...",
		KeyPhaseChunking:     "チャンクを作成中...",
		KeyPhaseProcessing:   "%d個のチャンクを処理開始...",
		KeyPhaseChunk:        "チャンク %d/%d を処理中...",
		KeyPhaseFinalizing:   "結果を準備中...",
		KeyPhaseDone:         "処理完了！",
		KeyPhaseNoValid:      "有効なURLが見つかりませんでした",
		KeyPhaseCancelled:    "キャンセルされました",
		KeyPhaseFailed:       "処理に失敗しました",
	}
}
