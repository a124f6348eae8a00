package apiary

// Reserved names recognized literally during import and conversion. These are
// heuristics over discovery-derived schemas, not guarantees: a schema that
// happens to use one of these names for an ordinary field will be
// misclassified.
const (
	// RequestFieldName marks the method parameter that carries the request body.
	RequestFieldName = "request$"

	// EmptyTypeName is the response type URL the importer assigns to methods
	// without a response body.
	EmptyTypeName = "empty$"
	// EmptyTypeURL is the second spelling of the void response type. Both are
	// accepted; neither is canonical.
	EmptyTypeURL = "Empty"

	// KeyFieldName and ValueFieldName name the fields of a map entry type.
	KeyFieldName   = "key"
	ValueFieldName = "value"

	// NextPageTokenFieldName is the response field whose presence marks a
	// method as page streaming.
	NextPageTokenFieldName = "nextPageToken"
)

// IsEmptyType reports whether typeURL denotes the void response type.
func IsEmptyType(typeURL string) bool {
	return typeURL == EmptyTypeName || typeURL == EmptyTypeURL
}
