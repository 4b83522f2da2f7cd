package dto

// UpdateSettingRequest sets a single key's value.
type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

// BulkUpdateSettingsRequest upserts several keys at once.
type BulkUpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required"`
}

// SettingResponse defines the data returned for a single setting.
type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SettingsResponse is the full store flattened to a key→value object.
type SettingsResponse struct {
	Settings map[string]string `json:"settings"`
}
