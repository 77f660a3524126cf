// Package i18n holds the interface strings for each supported edition.
package i18n

import "github.com/matheuskafuri/wikiscroll/internal/wiki"

// Text keys
const (
	KeyLoading          = "loading"
	KeyReadOnWikipedia  = "read_on_wikipedia"
	KeyNoImage          = "no_image"
	KeyShare            = "share"
	KeyShareUnsupported = "share_unsupported"
	KeyShareCopied      = "share_copied"
	KeyLoadFailed       = "load_failed"
	KeyOpenFailed       = "open_failed"
	KeyLanguage         = "language"
	KeyNext             = "next"
	KeyPrev             = "prev"
	KeyHelp             = "help"
	KeyQuit             = "quit"
	KeyEmpty            = "empty"
)

var texts = map[wiki.Language]map[string]string{
	wiki.English: {
		KeyLoading:          "Loading knowledge...",
		KeyReadOnWikipedia:  "Read on Wikipedia",
		KeyNoImage:          "No Image Available",
		KeyShare:            "share",
		KeyShareUnsupported: "Sharing is not supported in this environment.",
		KeyShareCopied:      "Link copied to clipboard.",
		KeyLoadFailed:       "Couldn't load articles. Press r to retry.",
		KeyOpenFailed:       "Couldn't open the browser",
		KeyLanguage:         "language",
		KeyNext:             "next",
		KeyPrev:             "prev",
		KeyHelp:             "help",
		KeyQuit:             "quit",
		KeyEmpty:            "No articles yet. Press r to load.",
	},
	wiki.Korean: {
		KeyLoading:          "지식을 불러오는 중...",
		KeyReadOnWikipedia:  "위키백과 읽기",
		KeyNoImage:          "이미지 없음",
		KeyShare:            "공유",
		KeyShareUnsupported: "공유하기가 지원되지 않는 환경입니다.",
		KeyShareCopied:      "링크가 클립보드에 복사되었습니다.",
		KeyLoadFailed:       "문서를 불러오지 못했습니다. r 키로 다시 시도하세요.",
		KeyOpenFailed:       "브라우저를 열 수 없습니다",
		KeyLanguage:         "언어",
		KeyNext:             "다음",
		KeyPrev:             "이전",
		KeyHelp:             "도움말",
		KeyQuit:             "종료",
		KeyEmpty:            "아직 문서가 없습니다. r 키로 불러오세요.",
	},
}

// T returns the text for key in lang, falling back to English and then to
// the key itself.
func T(lang wiki.Language, key string) string {
	if m, ok := texts[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := texts[wiki.English][key]; ok {
		return s
	}
	return key
}
