package ingestion

// Document holds the raw extracted text of one resume and its cleaned form.
// Contact extraction and format detection read Raw; segmentation reads Cleaned.
type Document struct {
	Raw      string
	Cleaned  string
	Metadata *Metadata
}

// NewDocument wraps raw text that did not come from a file
func NewDocument(raw string) *Document {
	return &Document{
		Raw:      raw,
		Cleaned:  CleanText(raw),
		Metadata: NewMetadata(raw, ""),
	}
}

// LoadDocument extracts and cleans the text of the file at path
func LoadDocument(path string) (*Document, error) {
	raw, err := ExtractText(path)
	if err != nil {
		return nil, err
	}
	return &Document{
		Raw:      raw,
		Cleaned:  CleanText(raw),
		Metadata: NewMetadata(raw, path),
	}, nil
}

// IsEmpty reports whether extraction produced no usable text
func (d *Document) IsEmpty() bool {
	return d == nil || d.Cleaned == ""
}
