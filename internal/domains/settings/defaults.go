package settings

// DefaultTree builds a fresh copy of the factory settings document. Every
// load merges the saved file over this, so adding a key here rolls it out to
// existing installations on their next read.
func DefaultTree() SettingsTree {
	return SettingsTree{
		"audio": map[string]any{
			"chunk_size":  1024,
			"format":      "paInt16",
			"channels":    1,
			"sample_rate": 44100,
			"gain":        2.0,
			"duration":    5,
		},
		"whisper": map[string]any{
			"model_size":                  "base",
			"language":                    "ja",
			"temperature":                 0.0,
			"compression_ratio_threshold": 2.4,
			"logprob_threshold":           -1.0,
			"no_speech_threshold":         0.6,
			"condition_on_previous_text":  true,
			"initial_prompt":              "これは日本語の音声です。",
		},
		"device": map[string]any{
			"selected_device_index": nil,
			"selected_device_name":  nil,
			"auto_select_default":   true,
			"test_device_on_select": true,
		},
		"ui": map[string]any{
			"show_advanced_options":    false,
			"auto_save_recordings":     true,
			"show_quality_analysis":    true,
			"show_level_monitoring":    true,
			"auto_start_recording":     false,
			"auto_recording_threshold": 300,
			"auto_recording_delay":     1.0,
		},
		"transcription": map[string]any{
			"auto_transcribe":     false,
			"save_transcriptions": true,
			"save_recordings":     true,
		},
		"extraction": map[string]any{
			"auto_extract_tasks":  false,
			"auto_extract_events": false,
			"apply_dictionary":    true,
		},
		"troubleshooting": map[string]any{
			"retry_count":           3,
			"timeout_seconds":       10,
			"enable_error_recovery": true,
			"log_errors":            true,
		},
		"llm": map[string]any{
			"api_key":     "",
			"provider":    "openai",
			"model":       "gpt-3.5-turbo",
			"temperature": 0.3,
			"max_tokens":  1000,
			"enabled":     false,
		},
		"shortcuts": map[string]any{
			"enabled":        true,
			"global_hotkeys": true,
			"keys": map[string]any{
				"start_recording":  "F9",
				"stop_recording":   "F10",
				"transcribe":       "F11",
				"clear_text":       "F12",
				"save_recording":   "Ctrl+Shift+S",
				"open_settings":    "Ctrl+Shift+O",
				"open_dictionary":  "Ctrl+Shift+D",
				"open_commands":    "Ctrl+Shift+C",
				"voice_correction": "Ctrl+Shift+V",
			},
			"modifiers": map[string]any{
				"ctrl":  true,
				"shift": false,
				"alt":   false,
			},
		},
	}
}
