package transcripts

import (
	"path/filepath"
	"strings"
)

// allowedAudioExtensions covers the formats the transcription vendor accepts
// for prerecorded audio.
var allowedAudioExtensions = map[string]bool{
	"mp3":  true,
	"mp4":  true,
	"m4a":  true,
	"aac":  true,
	"wav":  true,
	"flac": true,
	"pcm":  true,
	"ogg":  true,
	"opus": true,
	"webm": true,
}

var audioContentTypes = map[string]string{
	"mp3":  "audio/mpeg",
	"mp4":  "audio/mp4",
	"m4a":  "audio/mp4",
	"aac":  "audio/aac",
	"wav":  "audio/wav",
	"flac": "audio/flac",
	"pcm":  "audio/L16",
	"ogg":  "audio/ogg",
	"opus": "audio/opus",
	"webm": "audio/webm",
}

// AllowedAudioFile reports whether filename carries an accepted audio extension.
func AllowedAudioFile(filename string) bool {
	return allowedAudioExtensions[extension(filename)]
}

func extension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// contentTypeFor maps a filename to the MIME type sent with the raw audio
// bytes. Unknown extensions fall back to octet-stream and let the vendor
// sniff the payload.
func contentTypeFor(filename string) string {
	if ct, ok := audioContentTypes[extension(filename)]; ok {
		return ct
	}
	return "application/octet-stream"
}
