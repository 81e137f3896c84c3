package model

import "strings"

// Domain constants shared across the consumers.
const (
	ExtensionJPEG = "jpeg"
	ExtensionPNG  = "png"

	ContentTypeJPEG = "image/jpeg"
	ContentTypePNG  = "image/png"
)

// Metadata field names an image record may carry. Anything else is dropped.
const (
	MetadataCaption      = "Caption"
	MetadataDate         = "Date"
	MetadataPhotographer = "Photographer"
)

// Subjects and bodies of the operator notifications.
const (
	SubjectUploadSuccessful = "File Upload Successful"
	SubjectUploadRejected   = "File Upload Rejected"

	BodyUploadSuccessful = "Your file upload was successful!"
	RejectionBodyPrefix  = "Your file upload was rejected due to the following reason: "
)

// Extension returns the lower-cased file extension of an object key, without
// the dot. Keys with no extension yield "".
func Extension(key string) string {
	i := strings.LastIndex(key, ".")
	if i < 0 || i == len(key)-1 {
		return ""
	}
	return strings.ToLower(key[i+1:])
}

// AllowedExtension reports whether an object with the given extension may be
// admitted to the catalog.
func AllowedExtension(ext string) bool {
	return ext == ExtensionJPEG || ext == ExtensionPNG
}

// ContentTypeForExtension returns the content type an object with the given
// extension must declare, or "" for extensions that are never admitted.
func ContentTypeForExtension(ext string) string {
	switch ext {
	case ExtensionJPEG:
		return ContentTypeJPEG
	case ExtensionPNG:
		return ContentTypePNG
	}
	return ""
}

// ValidMetadataField reports whether name is one of the fixed metadata
// fields.
func ValidMetadataField(name string) bool {
	switch name {
	case MetadataCaption, MetadataDate, MetadataPhotographer:
		return true
	}
	return false
}
