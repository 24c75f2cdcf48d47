package config

import "time"

// PageSize is the number of thumbnails per grid page; the front end reads it
// from /api/images.
const PageSize = 20

const (
	DefaultPort = 4000
	ListenHost  = "127.0.0.1"
)

const (
	ShutdownTimeout = 30 * time.Second
)

// ImageExtensions is the allow-list used by the image lister, lower case and
// without the leading dot.
var ImageExtensions = []string{"png", "jpg", "jpeg", "webp"}

// MaxImageDimension caps width/height accepted by header verification.
const MaxImageDimension = 16384
