package constants

import "time"

var FetchConfig = struct {
	MaxRetries     int
	AttemptTimeout time.Duration
	RetryDelay     time.Duration
}{
	MaxRetries:     3,                      // 3회 시도 후 포기
	AttemptTimeout: 8 * time.Second,        // 시도당 타임아웃
	RetryDelay:     500 * time.Millisecond, // 실패 후 고정 대기
}

var APIConfig = struct {
	EnkaBaseURL  string
	UserAgent    string
	AssetBaseURL string
}{
	EnkaBaseURL:  "https://enka.network/api/uid",
	UserAgent:    "genshin-build-viewer/1.0",
	AssetBaseURL: "https://enka.network/ui",
}

// DefaultRelayRoutes is the ordered relay list, cycled per attempt.
var DefaultRelayRoutes = []string{
	"encoded:https://corsproxy.io/?url=",
	"wrapped:https://api.allorigins.win/get?url=",
}

var ReferenceConfig = struct {
	CharactersURL  string
	LocURL         string
	Locale         string
	FallbackLocale string
	Timeout        time.Duration
	SnapshotTTL    time.Duration
}{
	CharactersURL:  "https://raw.githubusercontent.com/EnkaNetwork/API-docs/master/store/characters.json",
	LocURL:         "https://raw.githubusercontent.com/EnkaNetwork/API-docs/master/store/loc.json",
	Locale:         "jp",
	FallbackLocale: "ja",
	Timeout:        15 * time.Second,
	SnapshotTTL:    24 * time.Hour,
}

var RedisConfig = struct {
	ReadyTimeout time.Duration
}{
	ReadyTimeout: 5 * time.Second,
}

var ElementIconConfig = struct {
	BaseURL string
}{
	BaseURL: "https://raw.githubusercontent.com/MadeBaruna/paimon-moe/main/static/images/elements",
}

var ViewerConfig = struct {
	DefaultUID string
}{
	DefaultUID: "801630705",
}

var StringLimits = struct {
	Signature    int
	SelectorName int
}{
	Signature:    60,
	SelectorName: 12,
}
