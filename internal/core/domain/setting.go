package domain

// Setting is a single global key→value configuration row. No versioning.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	AuditFields
}
