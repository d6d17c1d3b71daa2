package profile

// UpdateProfileRequest carries partial profile edits; nil fields are left
// untouched. Profile edits after an order is confirmed never alter that
// order's snapshotted delivery address.
type UpdateProfileRequest struct {
	FullName             *string  `json:"full_name,omitempty"`
	Phone                *string  `json:"phone,omitempty"`
	City                 *string  `json:"city,omitempty"`
	Gender               *string  `json:"gender,omitempty"`
	DateOfBirth          *string  `json:"date_of_birth,omitempty"`
	AddressLine1         *string  `json:"address_line1,omitempty"`
	AddressLine2         *string  `json:"address_line2,omitempty"`
	State                *string  `json:"state,omitempty"`
	Pincode              *string  `json:"pincode,omitempty"`
	DeliveryInstructions *string  `json:"delivery_instructions,omitempty"`
	Height               *float64 `json:"height,omitempty"`
	Weight               *float64 `json:"weight,omitempty"`
	TargetWeight         *float64 `json:"target_weight,omitempty"`
	FitnessGoal          *string  `json:"fitness_goal,omitempty"`
	DietaryPreference    *string  `json:"dietary_preference,omitempty"`
	Allergies            *string  `json:"allergies,omitempty"`
	ProteinTarget        *int     `json:"protein_target,omitempty"`
}
