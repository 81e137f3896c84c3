package model

import (
	"net/url"
	"strings"
)

// SQSBody is the JSON body of a queue message that arrived through an SNS
// subscription. Message holds the inner payload verbatim.
type SQSBody struct {
	Message string `json:"Message"`
}

// S3EventRecords is the payload the object store publishes on bucket
// lifecycle events. Bucket test notifications carry no Records array.
type S3EventRecords struct {
	Records []S3EventRecord `json:"Records"`
}

// S3EventRecord describes one object lifecycle event.
type S3EventRecord struct {
	EventName string   `json:"eventName"`
	S3        S3Entity `json:"s3"`
}

// S3Entity locates the object an event refers to.
type S3Entity struct {
	Bucket S3Bucket `json:"bucket"`
	Object S3Object `json:"object"`
}

// S3Bucket names the bucket an event originated from.
type S3Bucket struct {
	Name string `json:"name"`
}

// S3Object carries the URL-encoded key of the affected object.
type S3Object struct {
	Key string `json:"key"`
}

// Removed reports whether the record describes an object deletion rather
// than a creation.
func (r S3EventRecord) Removed() bool {
	return strings.HasPrefix(r.EventName, "ObjectRemoved")
}

// StatusEvent reports the outcome of an upload to the status notifier.
type StatusEvent struct {
	UploadStatus string `json:"uploadStatus"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// Upload status values for StatusEvent.UploadStatus.
const (
	UploadStatusSuccess = "success"
	UploadStatusFailure = "failure"
)

// MetadataMessage is the JSON payload of a metadata-change event. The field
// being set travels in the metadata_type message attribute, not the body.
type MetadataMessage struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// MetadataTypeAttribute is the message attribute naming the metadata field a
// MetadataMessage sets.
const MetadataTypeAttribute = "metadata_type"

// DecodeObjectKey reverses the transport escaping applied to object keys in
// event payloads, turning "+" back into spaces and percent-decoding the rest.
func DecodeObjectKey(key string) (string, error) {
	return url.QueryUnescape(key)
}
