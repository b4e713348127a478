package service

import "github.com/noah-isme/school-records-api/internal/models"

// Helpers used by Update*Request.Apply: a nil source leaves the target untouched.

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt64(dst *int64, src *int64) {
	if src != nil {
		*dst = *src
	}
}

func setDate(dst *models.Date, src *models.Date) {
	if src != nil && !src.IsZero() {
		*dst = *src
	}
}

// setOptionalID replaces an optional reference; a non-nil zero clears it.
func setOptionalID(dst **int64, src *int64) {
	if src == nil {
		return
	}
	if *src == 0 {
		*dst = nil
		return
	}
	id := *src
	*dst = &id
}

func setOptionalDate(dst **models.Date, src *models.Date) {
	if src == nil {
		return
	}
	if src.IsZero() {
		*dst = nil
		return
	}
	d := *src
	*dst = &d
}
