package razorpay

import "context"

// DocumentPurpose says what an uploaded document is for.
type DocumentPurpose string

const DocumentPurposeDisputeEvidence DocumentPurpose = "dispute_evidence"

// Document is a file uploaded to Razorpay.
type Document struct {
	ID        DocumentID      `json:"id" decode:"required"`
	Entity    Entity          `json:"entity"`
	Purpose   DocumentPurpose `json:"purpose"`
	Name      string          `json:"name"`
	Size      int64           `json:"size"`
	MimeType  string          `json:"mime_type"`
	CreatedAt UnixTime        `json:"created_at"`
}

// DocumentService groups the /documents endpoints.
type DocumentService struct {
	c *Client
}

// Fetch loads the metadata of one document.
func (s *DocumentService) Fetch(ctx context.Context, id DocumentID) (*Document, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Get[Document](ctx, s.c, RequestDescriptor{
		Path:      "/documents/" + id.String(),
		Operation: "documents.fetch",
	})
}
