package opensubtitles

import "time"

// --- Common types ---

// LanguageCode is an ISO 639-1 or 639-2/B language code.
type LanguageCode string

// SortDirection defines the sorting order for search results.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// FilterInclusion defines include/exclude filter options.
type FilterInclusion string

const (
	Include FilterInclusion = "include"
	Exclude FilterInclusion = "exclude"
)

// FilterInclusionOnly defines include/exclude/only filter options.
type FilterInclusionOnly string

const (
	IncludeOnly FilterInclusionOnly = "include"
	ExcludeOnly FilterInclusionOnly = "exclude"
	Only        FilterInclusionOnly = "only"
)

// FilterTrustedSources defines include/only options for trusted sources.
type FilterTrustedSources string

const (
	IncludeTrusted FilterTrustedSources = "include"
	OnlyTrusted    FilterTrustedSources = "only"
)

// FeatureType is the kind of a feature as used by the discover endpoints.
type FeatureType string

const (
	FeatureMovie  FeatureType = "movie"
	FeatureTVShow FeatureType = "tvshow"
)

// PaginatedResponse holds the pagination envelope of list responses.
type PaginatedResponse struct {
	TotalPages int `json:"total_pages"`
	TotalCount int `json:"total_count"`
	PerPage    int `json:"per_page"`
	Page       int `json:"page"`
}

// ApiDataWrapper is the common "id"/"type" pair wrapping every API entity.
type ApiDataWrapper struct {
	ID   string `json:"id"`
	Type string `json:"type"` // e.g. "subtitle", "feature"
}

// UploaderInfo contains details about the subtitle uploader. Fields are
// pointers because the API nulls them for anonymous uploads.
type UploaderInfo struct {
	UploaderID *int    `json:"uploader_id"`
	Name       *string `json:"name"`
	Rank       *string `json:"rank"`
}

// RelatedLink represents links found in subtitle details.
type RelatedLink struct {
	Label  string  `json:"label"`
	URL    string  `json:"url"`
	ImgURL *string `json:"img_url"`
}

// BaseUserInfo contains user details common to login and infos/user.
type BaseUserInfo struct {
	AllowedDownloads int    `json:"allowed_downloads"`
	Level            string `json:"level"`
	UserID           int    `json:"user_id"`
	ExtInstalled     bool   `json:"ext_installed"`
	VIP              bool   `json:"vip"`
}

// --- Auth types ---

// LoginRequest is the request body for the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginUser extends BaseUserInfo with fields specific to the login response.
type LoginUser struct {
	BaseUserInfo
	AllowedTranslations int `json:"allowed_translations"`
}

// LoginResponse is the response from the login endpoint. BaseURL may be a
// bare VIP hostname that the client must switch to for the session.
type LoginResponse struct {
	User    LoginUser `json:"user"`
	BaseURL string    `json:"base_url"`
	Token   string    `json:"token"`
	Status  int       `json:"status"`
}

// LogoutResponse is the response from the logout endpoint.
type LogoutResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// UserInfo contains details from the /infos/user endpoint.
type UserInfo struct {
	BaseUserInfo
	DownloadsCount     int `json:"downloads_count"`
	RemainingDownloads int `json:"remaining_downloads"`
}

// GetUserInfoResponse wraps the UserInfo data.
type GetUserInfoResponse struct {
	Data UserInfo `json:"data"`
}

// --- Infos types ---

// Language is a single entry of the /infos/languages listing.
type Language struct {
	LanguageCode LanguageCode `json:"language_code"`
	LanguageName string       `json:"language_name"`
}

// GetLanguagesResponse wraps the supported language list.
type GetLanguagesResponse struct {
	Data []Language `json:"data"`
}

// GetFormatsResponse wraps the supported subtitle output formats.
type GetFormatsResponse struct {
	Data struct {
		OutputFormats []string `json:"output_formats"`
	} `json:"data"`
}

// --- Subtitle types ---

// SubtitleFeatureDetails is the nested feature info within a subtitle.
type SubtitleFeatureDetails struct {
	FeatureID       int     `json:"feature_id"`
	FeatureType     string  `json:"feature_type"` // "Movie", "Episode"
	Year            int     `json:"year"`
	Title           string  `json:"title"`
	MovieName       string  `json:"movie_name"`
	IMDbID          *int    `json:"imdb_id"`
	TMDBID          *int    `json:"tmdb_id"`
	SeasonNumber    *int    `json:"season_number"`
	EpisodeNumber   *int    `json:"episode_number"`
	ParentIMDbID    *int    `json:"parent_imdb_id"`
	ParentTMDBID    *int    `json:"parent_tmdb_id"`
	ParentTitle     *string `json:"parent_title"`
	ParentFeatureID *int    `json:"parent_feature_id"`
}

// SubtitleFile is a single file within a subtitle entry. FileID is the
// identifier the /download endpoint expects.
type SubtitleFile struct {
	FileID   int    `json:"file_id"`
	CDNumber int    `json:"cd_number"`
	FileName string `json:"file_name"`
}

// SubtitleAttributes holds the details of a subtitle entry.
type SubtitleAttributes struct {
	SubtitleID        string                 `json:"subtitle_id"`
	Language          LanguageCode           `json:"language"`
	DownloadCount     int                    `json:"download_count"`
	NewDownloadCount  int                    `json:"new_download_count"`
	HearingImpaired   bool                   `json:"hearing_impaired"`
	HD                bool                   `json:"hd"`
	FPS               *float64               `json:"fps"`
	Votes             int                    `json:"votes"`
	Ratings           float64                `json:"ratings"`
	FromTrusted       bool                   `json:"from_trusted"`
	ForeignPartsOnly  bool                   `json:"foreign_parts_only"`
	UploadDate        time.Time              `json:"upload_date"`
	AITranslated      bool                   `json:"ai_translated"`
	MachineTranslated bool                   `json:"machine_translated"`
	MoviehashMatch    *bool                  `json:"moviehash_match,omitempty"`
	Release           string                 `json:"release"`
	Comments          *string                `json:"comments"`
	LegacySubtitleID  *int                   `json:"legacy_subtitle_id"`
	NbCD              *int                   `json:"nb_cd"`
	Slug              *string                `json:"slug"`
	Uploader          UploaderInfo           `json:"uploader"`
	FeatureDetails    SubtitleFeatureDetails `json:"feature_details"`
	URL               string                 `json:"url"`
	RelatedLinks      []RelatedLink          `json:"related_links"`
	Files             []SubtitleFile         `json:"files"`
}

// Subtitle is a full subtitle entry.
type Subtitle struct {
	ApiDataWrapper
	Attributes SubtitleAttributes `json:"attributes"`
}

// SearchSubtitlesParams defines query parameters for the /subtitles
// endpoint. Optional fields are pointers; nil fields are omitted from the
// query string.
type SearchSubtitlesParams struct {
	ID                *int                  `url:"id,omitempty"` // feature ID
	IMDbID            *int                  `url:"imdb_id,omitempty"`
	TMDBID            *int                  `url:"tmdb_id,omitempty"`
	ParentIMDbID      *int                  `url:"parent_imdb_id,omitempty"`
	ParentTMDBID      *int                  `url:"parent_tmdb_id,omitempty"`
	ParentFeatureID   *int                  `url:"parent_feature_id,omitempty"`
	Query             *string               `url:"query,omitempty"`
	SeasonNumber      *int                  `url:"season_number,omitempty"`
	EpisodeNumber     *int                  `url:"episode_number,omitempty"`
	Moviehash         *string               `url:"moviehash,omitempty"` // must match ^[a-f0-9]{16}$
	Languages         *string               `url:"languages,omitempty"` // comma-separated, sorted
	Type              *string               `url:"type,omitempty"`      // "movie", "episode", "all"
	Year              *int                  `url:"year,omitempty"`
	AITranslated      *FilterInclusion      `url:"ai_translated,omitempty"`
	MachineTranslated *FilterInclusion      `url:"machine_translated,omitempty"`
	HearingImpaired   *FilterInclusionOnly  `url:"hearing_impaired,omitempty"`
	ForeignPartsOnly  *FilterInclusionOnly  `url:"foreign_parts_only,omitempty"`
	TrustedSources    *FilterTrustedSources `url:"trusted_sources,omitempty"`
	MoviehashMatch    *string               `url:"moviehash_match,omitempty"` // "include", "only"
	UploaderID        *int                  `url:"uploader_id,omitempty"`
	OrderBy           *string               `url:"order_by,omitempty"`
	OrderDirection    *SortDirection        `url:"order_direction,omitempty"`
	Page              *int                  `url:"page,omitempty"`
}

// SearchSubtitlesResponse wraps the paginated subtitle results.
type SearchSubtitlesResponse struct {
	PaginatedResponse
	Data []Subtitle `json:"data"`
}

// DownloadRequest is the request body for the /download endpoint.
type DownloadRequest struct {
	FileID        int      `json:"file_id"`
	SubFormat     *string  `json:"sub_format,omitempty"`
	FileName      *string  `json:"file_name,omitempty"`
	InFPS         *float64 `json:"in_fps,omitempty"`
	OutFPS        *float64 `json:"out_fps,omitempty"`
	Timeshift     *float64 `json:"timeshift,omitempty"`
	ForceDownload *bool    `json:"force_download,omitempty"`
}

// DownloadResponse is the response from the /download endpoint. Link is a
// temporary URL for the converted subtitle payload; Remaining is the
// download quota left for the account.
type DownloadResponse struct {
	Link         string    `json:"link"`
	FileName     string    `json:"file_name"`
	Requests     int       `json:"requests"`
	Remaining    int       `json:"remaining"`
	Message      string    `json:"message"`
	ResetTime    string    `json:"reset_time"`
	ResetTimeUTC time.Time `json:"reset_time_utc"`
}

// --- Discover types ---

// DiscoverParams defines common query parameters for discover endpoints.
type DiscoverParams struct {
	Language *LanguageCode `url:"language,omitempty"` // single code or "all"
	Type     *FeatureType  `url:"type,omitempty"`
}

// FeatureAttributes holds the fields shared by popular movie and tvshow
// features. Season/episode fields are nil for movies.
type FeatureAttributes struct {
	FeatureID       string               `json:"feature_id"`
	FeatureType     string               `json:"feature_type"` // "Movie", "Tvshow", "Episode"
	Title           string               `json:"title"`
	OriginalTitle   *string              `json:"original_title"`
	Year            string               `json:"year"`
	IMDbID          *int                 `json:"imdb_id"`
	TMDBID          *int                 `json:"tmdb_id"`
	TitleAKA        []string             `json:"title_aka"`
	URL             string               `json:"url"`
	ImgURL          *string              `json:"img_url"`
	SeasonsCount    *int                 `json:"seasons_count"`
	SeasonNumber    *int                 `json:"season_number"`
	EpisodeNumber   *int                 `json:"episode_number"`
	ParentTitle     *string              `json:"parent_title"`
	SubtitlesCount  int                  `json:"subtitles_count"`
	SubtitlesCounts map[LanguageCode]int `json:"subtitles_counts"`
}

// Feature is a movie or tvshow entry returned by discover/popular.
type Feature struct {
	ApiDataWrapper
	Attributes FeatureAttributes `json:"attributes"`
}

// DiscoverPopularResponse wraps the list of popular features.
type DiscoverPopularResponse struct {
	Data []Feature `json:"data"`
}

// DiscoverLatestResponse wraps the 60 most recently uploaded subtitles.
type DiscoverLatestResponse struct {
	TotalPages int        `json:"total_pages"`
	TotalCount int        `json:"total_count"`
	Page       int        `json:"page"`
	Data       []Subtitle `json:"data"`
}

// DiscoverMostDownloadedResponse wraps paginated most downloaded subtitles.
type DiscoverMostDownloadedResponse struct {
	PaginatedResponse
	Data []Subtitle `json:"data"`
}

// --- Utilities types ---

// GuessitParams defines query parameters for /utilities/guessit.
type GuessitParams struct {
	Filename string `url:"filename"`
}

// GuessitResponse is the response from /utilities/guessit. All fields are
// pointers as they are null when not detected.
type GuessitResponse struct {
	Title            *string       `json:"title"`
	Year             *int          `json:"year"`
	Season           *int          `json:"season"`
	Episode          *int          `json:"episode"`
	EpisodeTitle     *string       `json:"episode_title"`
	Language         *LanguageCode `json:"language"`
	SubtitleLanguage *LanguageCode `json:"subtitle_language"`
	ScreenSize       *string       `json:"screen_size"`
	StreamingService *string       `json:"streaming_service"`
	Source           *string       `json:"source"`
	AudioCodec       *string       `json:"audio_codec"`
	AudioChannels    *string       `json:"audio_channels"`
	VideoCodec       *string       `json:"video_codec"`
	ReleaseGroup     *string       `json:"release_group"`
	Type             *string       `json:"type"` // "episode", "movie"
}

// --- Pointer helpers for optional request fields ---

// String returns a pointer to s.
func String(s string) *string { return &s }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }
