package model

// ImageRecord represents a single item in the images DynamoDB table, one per
// admitted object. ImageName is the decoded object key and the partition key.
type ImageRecord struct {
	ImageName  string            `dynamodbav:"imageName"`
	UploadedAt string            `dynamodbav:"uploadedAt"`
	Status     string            `dynamodbav:"status"`
	Metadata   map[string]string `dynamodbav:"metadata"`
}

// Status constants for ImageRecord.Status.
const (
	StatusPendingMetadata = "pending_metadata"
	StatusActive          = "active"
	StatusRejected        = "rejected"
)
