package settings

// UpdateSettingsRequest carries a partial document that is merged over the
// current one; absent keys keep their stored values.
// @Description Partial settings document to merge and save
type UpdateSettingsRequest struct {
	Settings map[string]any `json:"settings" binding:"required"`
}

// UpdateValueRequest writes a single leaf addressed by dotted path.
// @Description Single settings value update
type UpdateValueRequest struct {
	Path  string `json:"path" binding:"required" example:"whisper.language"`
	Value any    `json:"value"`
}

// SettingsRepository persists the raw saved document. Load returns what was
// last saved; merging with defaults is the service's job.
type SettingsRepository interface {
	Load() (SettingsTree, error)
	Save(tree SettingsTree) error
}
