package types

import "encoding/json"

// OptionalString distinguishes an absent JSON field from one explicitly set
// to null or "". Absent leaves the stored value untouched; null and ""
// both clear it.
type OptionalString struct {
	Set   bool
	Value string
}

// UnmarshalJSON records that the field was present. An explicit null
// decodes as the empty string.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = ""
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON encodes an unset field as null.
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
