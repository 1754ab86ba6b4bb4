package dto

// UpdatePatientProfileRequest - обновление профиля пациента.
// Все поля опциональны: nil означает "не менять".
type UpdatePatientProfileRequest struct {
	DateOfBirth *string `json:"date_of_birth,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Gender      *string `json:"gender,omitempty" binding:"omitempty,is-gender"`
	BloodGroup  *string `json:"blood_group,omitempty"`
	HeightCm    *float64 `json:"height_cm,omitempty"`
	WeightKg    *float64 `json:"weight_kg,omitempty"`

	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	Country *string `json:"country,omitempty"`
	Zipcode *string `json:"zipcode,omitempty"`

	EmergencyContactName  *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`

	InsuranceProvider     *string `json:"insurance_provider,omitempty"`
	InsurancePolicyNumber *string `json:"insurance_policy_number,omitempty"`
	InsuranceExpiryDate   *string `json:"insurance_expiry_date,omitempty" binding:"omitempty,datetime=2006-01-02"`

	MedicalConditions  []string `json:"medical_conditions,omitempty"`
	Allergies          []string `json:"allergies,omitempty"`
	CurrentMedications []string `json:"current_medications,omitempty"`
}
