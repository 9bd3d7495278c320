package utils

import "strings"

const uploadSegment = "/upload/"

// MirrorImageURL inserts a horizontal-flip transform into a
// Cloudinary-style delivery URL, so a right-plumbing render can stand in
// for a missing left one (and vice versa). URLs without an /upload/
// segment are returned unchanged. Applying it twice is a no-op.
func MirrorImageURL(rawURL string) string {
	idx := strings.Index(rawURL, uploadSegment)
	if idx < 0 {
		return rawURL
	}

	rest := rawURL[idx+len(uploadSegment):]
	if strings.HasPrefix(rest, "a_hflip/") {
		return rawURL
	}

	return rawURL[:idx+len(uploadSegment)] + "a_hflip/" + rest
}
