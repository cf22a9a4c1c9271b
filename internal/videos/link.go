package videos

// mediaURLPrefix is the Google Drive direct-download template that the
// player frontend can use as a <video> src.
const mediaURLPrefix = "https://drive.google.com/uc?export=download&id="

// ResolveMediaURL maps a stored media identifier to a playable URL.
// Pure string work: malformed ids pass through unchanged, validation
// happened at insert time.
func ResolveMediaURL(mediaID string) string {
	return mediaURLPrefix + mediaID
}
