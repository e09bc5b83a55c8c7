package cli

import (
	"strings"

	"github.com/ytget/yt-playlist-maker/internal/model"
)

type labelFormats struct {
	multi  string
	single string
	stats  string
}

var labels = map[string]labelFormats{
	"en": {model.DefaultMultiPartLabelFormat, model.DefaultSinglePartLabelFormat, "Total: %d, valid: %d, invalid: %d"},
	"ru": {"Плейлист %d/%d (%d видео)", "Плейлист (%d видео)", "Всего: %d, корректных: %d, некорректных: %d"},
	"pt": {"Playlist %d/%d (%d vídeos)", "Playlist (%d vídeos)", "Total: %d, válidos: %d, inválidos: %d"},
	"ja": {"プレイリスト %d/%d (%d件の動画)", "プレイリスト (%d件の動画)", "合計: %d, 有効: %d, 無効: %d"},
}

func labelsFor(lang string) labelFormats {
	if l, ok := labels[strings.ToLower(lang)]; ok {
		return l
	}
	return labels["en"]
}
