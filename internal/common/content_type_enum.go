package common

import "strings"

// ContentType is the canonical kind of a chat message body.
type ContentType string

const (
	ContentTypeText     ContentType = "text"
	ContentTypeImage    ContentType = "image"
	ContentTypeAudio    ContentType = "audio"
	ContentTypeVideo    ContentType = "video"
	ContentTypeDocument ContentType = "document"
	ContentTypeSticker  ContentType = "sticker"
	ContentTypeLocation ContentType = "location"
	ContentTypeContact  ContentType = "contact"
)

// String returns the string representation
func (ct ContentType) String() string {
	return string(ct)
}

func (ct ContentType) IsValid() bool {
	switch ct {
	case ContentTypeText, ContentTypeImage, ContentTypeAudio, ContentTypeVideo,
		ContentTypeDocument, ContentTypeSticker, ContentTypeLocation, ContentTypeContact:
		return true
	}
	return false
}

// HasFile reports whether messages of this type carry an attachment.
func (ct ContentType) HasFile() bool {
	switch ct {
	case ContentTypeImage, ContentTypeAudio, ContentTypeVideo, ContentTypeDocument, ContentTypeSticker:
		return true
	}
	return false
}

func DetectContentType(mimeType string) ContentType {
	lowerMimeType := strings.ToLower(mimeType)
	switch {
	case strings.HasPrefix(lowerMimeType, "image/webp"):
		return ContentTypeSticker
	case strings.HasPrefix(lowerMimeType, "image/"):
		return ContentTypeImage
	case strings.HasPrefix(lowerMimeType, "video/"):
		return ContentTypeVideo
	case strings.HasPrefix(lowerMimeType, "audio/"):
		return ContentTypeAudio
	}
	return ContentTypeDocument
}
