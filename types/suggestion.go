package types

import (
	"encoding/json"
	"time"
)

// Suggestion represents a single feedback entry stored in the database.
// Entries are append-only: once created they are never updated or deleted.
type Suggestion struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Impact    string    `json:"impact"`
	Extra     string    `json:"extra"`
	CreatedAt time.Time `json:"created_at"`
}

// SuggestionCreate represents the request body for submitting a suggestion.
// Accepted as JSON or form-encoded; validation happens after binding, so the
// individual fields carry no binding constraints here.
type SuggestionCreate struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Type    string `json:"type" form:"type"`
	Message string `json:"message" form:"message"`
	Impact  string `json:"impact,omitempty" form:"impact"`
	Extra   string `json:"extra,omitempty" form:"extra"`
}

// UnmarshalJSON decodes a submission leniently: a field that is absent or not
// a JSON string (number, bool, null, nested value) becomes the empty string
// instead of failing the decode. Whether an empty field is acceptable is up
// to validation, which can attach the accurate rejection reason.
func (r *SuggestionCreate) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Name = stringOrEmpty(raw["name"])
	r.Email = stringOrEmpty(raw["email"])
	r.Type = stringOrEmpty(raw["type"])
	r.Message = stringOrEmpty(raw["message"])
	r.Impact = stringOrEmpty(raw["impact"])
	r.Extra = stringOrEmpty(raw["extra"])
	return nil
}

func stringOrEmpty(data json.RawMessage) string {
	if len(data) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ""
	}
	return s
}
