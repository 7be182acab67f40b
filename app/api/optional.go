package api

import "encoding/json"

// OptionalUint distinguishes an absent JSON field from an explicit null,
// which sparse updates to nullable references need.
type OptionalUint struct {
	Set   bool
	Valid bool
	Value uint
}

func (o *OptionalUint) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ref returns the field as a nullable reference: nil when the field held
// an explicit null.
func (o OptionalUint) Ref() *uint {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
