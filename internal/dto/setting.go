package dto

import "github.com/bizgrid/erp_backend/internal/core/domain"

// SaveSettingRequest creates or replaces a setting value.
type SaveSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

// SettingResponse is the setting representation returned by the API.
type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ToSettingResponse converts a domain Setting to its response DTO.
func ToSettingResponse(s *domain.Setting) SettingResponse {
	return SettingResponse{Key: s.Key, Value: s.Value}
}

// ToSettingResponses maps a slice of domain settings.
func ToSettingResponses(settings []domain.Setting) []SettingResponse {
	out := make([]SettingResponse, len(settings))
	for i := range settings {
		out[i] = ToSettingResponse(&settings[i])
	}
	return out
}
