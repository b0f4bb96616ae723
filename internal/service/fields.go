package service

import "github.com/stemsi/campus-api/internal/model"

// The helpers below implement the update rule: a supplied value replaces
// the stored one only when it is truthy. nil, "" and 0 keep the stored value.

func orString(v *string, stored string) string {
	if v != nil && *v != "" {
		return *v
	}
	return stored
}

func orNullString(v *string, stored *string) *string {
	if v != nil && *v != "" {
		s := *v
		return &s
	}
	return stored
}

func orFloat(v *float64, stored *float64) *float64 {
	if v != nil && *v != 0 {
		f := *v
		return &f
	}
	return stored
}

func orInt(v *int, stored *int) *int {
	if v != nil && *v != 0 {
		n := *v
		return &n
	}
	return stored
}

// nullIfEmpty maps "" to NULL.
func nullIfEmpty(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// imageOrDefault substitutes the default image for an absent or empty URL.
func imageOrDefault(v *string) *string {
	if v == nil || *v == "" {
		s := model.DefaultImageURL
		return &s
	}
	s := *v
	return &s
}
