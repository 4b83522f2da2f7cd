package dto

// UploadResponse carries the stored object's key and public URL.
type UploadResponse struct {
	URL     string `json:"url"`
	Key     string `json:"key"`
	Message string `json:"message"`
}
