package model

// Invalid thumbnails resolve to a placeholder image rather than an error, so nothing here can be validated offline.
// See https://developers.google.com/youtube/v3/docs/thumbnails

const thumbnailBaseURL = "https://i.ytimg.com"

// ImageFormat is a thumbnail encoding. WebP keeps the same or better quality at a smaller size.
type ImageFormat int

const (
	JPEG ImageFormat = iota
	WebP
)

func (f ImageFormat) String() string {
	switch f {
	case WebP:
		return "webp"
	default:
		return "jpg"
	}
}

// Resolution is a thumbnail size.
type Resolution int

const (
	// ResolutionDefault is 120x90.
	ResolutionDefault Resolution = iota
	// ResolutionHigh is 480x360.
	ResolutionHigh
	// ResolutionMaxres is 1280x720, not available for every video.
	ResolutionMaxres
	// ResolutionMedium is 320x180.
	ResolutionMedium
	// ResolutionStandard is 640x480, not available for every video.
	ResolutionStandard
)

// String returns the thumbnail file name stem for the resolution, e.g. "hqdefault".
func (r Resolution) String() string {
	switch r {
	case ResolutionHigh:
		return "hqdefault"
	case ResolutionMaxres:
		return "maxresdefault"
	case ResolutionMedium:
		return "mqdefault"
	case ResolutionStandard:
		return "sddefault"
	default:
		return "default"
	}
}
