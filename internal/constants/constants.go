package constants

// DefaultBaseURL is the standard base URL for the OpenSubtitles REST API.
const DefaultBaseURL = "https://api.opensubtitles.com/api/v1"

// ApiPath is the common path prefix appended when the API returns a bare
// hostname (e.g. the VIP host in the login response).
const ApiPath = "/api/v1"
