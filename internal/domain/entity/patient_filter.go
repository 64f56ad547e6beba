package entity

// AllSpecialists is the filter sentinel meaning "do not filter by specialist".
const AllSpecialists = "ALL"

// PatientFilter is a domain-level filter for querying patients.
// Used by repository layer to avoid coupling with delivery DTOs.
type PatientFilter struct {
	Specialist string // Exact match; empty or AllSpecialists disables it
	Code       string // Case-sensitive substring of patient_code
	StartDate  string // Format: YYYY-MM-DD, inclusive
	EndDate    string // Format: YYYY-MM-DD, inclusive
}

// HasSpecialist reports whether the filter narrows by specialist.
func (f *PatientFilter) HasSpecialist() bool {
	return f.Specialist != "" && f.Specialist != AllSpecialists
}
