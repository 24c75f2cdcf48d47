package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"golang.org/x/text/language"
)

// Languages with translated API messages; the first is the fallback.
var supportedLanguages = []language.Tag{
	language.TraditionalChinese,
	language.English,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

type messageKey int

const (
	msgEmptyPath messageKey = iota
	msgLoaded
	msgInvalidJSON
)

var messages = map[language.Tag]map[messageKey]string{
	language.TraditionalChinese: {
		msgEmptyPath:   "請輸入資料夾路徑",
		msgLoaded:      "載入完成",
		msgInvalidJSON: "無效的請求內容",
	},
	language.English: {
		msgEmptyPath:   "Please enter a folder path",
		msgLoaded:      "Loaded",
		msgInvalidJSON: "Invalid request body",
	},
}

// message picks the translation for r's Accept-Language header.
func message(r *http.Request, key messageKey) string {
	tags, _, _ := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	_, idx, _ := languageMatcher.Match(tags...)
	return messages[supportedLanguages[idx]][key]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
