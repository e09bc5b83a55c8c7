package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ytget/yt-playlist-maker/internal/model"
)

// CSV layout
const (
	FieldQuote     = `"`
	FieldSeparator = ","
	RowSeparator   = "\n"
	FileNamePrefix = "youtube_playlists_"
	FileExtension  = ".csv"
)

// Localized header rows keyed by language code
var headers = map[string][]string{
	"en": {"Chunk #", "Video count", "Playlist URL"},
	"ru": {"Часть №", "Количество видео", "URL плейлиста"},
	"pt": {"Parte nº", "Número de vídeos", "URL da playlist"},
	"ja": {"チャンク番号", "動画数", "プレイリストURL"},
}

// DefaultHeader is the English header row
var DefaultHeader = headers["en"]

// HeaderFor returns the header row for lang, falling back to English
func HeaderFor(lang string) []string {
	if h, ok := headers[strings.ToLower(lang)]; ok {
		return h
	}
	return DefaultHeader
}

// BuildCSV renders the header and one row per result in the given order.
// Every field is quoted, inner quotes are doubled and there is no trailing newline.
func BuildCSV(header []string, results []model.PlaylistResult) string {
	rows := make([]string, 0, len(results)+1)
	rows = append(rows, joinRow(header))
	for _, r := range results {
		rows = append(rows, joinRow([]string{
			strconv.Itoa(r.ChunkIndex),
			strconv.Itoa(r.Count),
			r.URL,
		}))
	}
	return strings.Join(rows, RowSeparator)
}

func joinRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = quoteField(f)
	}
	return strings.Join(quoted, FieldSeparator)
}

func quoteField(field string) string {
	return FieldQuote + strings.ReplaceAll(field, FieldQuote, FieldQuote+FieldQuote) + FieldQuote
}

// FileName returns the export file name for t, e.g. youtube_playlists_1700000000000.csv
func FileName(t time.Time) string {
	return fmt.Sprintf("%s%d%s", FileNamePrefix, t.UnixMilli(), FileExtension)
}
