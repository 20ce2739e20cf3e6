package models

// CoverRecommendation is a recommended cover amount with its rationale
type CoverRecommendation struct {
	RecommendedCover float64 `json:"recommendedCover"`
	Reason           string  `json:"reason"`
}

// CoverGap compares required and existing cover
type CoverGap struct {
	Required float64 `json:"required"`
	Actual   float64 `json:"actual"`
	Gap      float64 `json:"gap"`
}

// ProtectionGap holds life and health shortfalls
type ProtectionGap struct {
	Life   CoverGap `json:"life"`
	Health CoverGap `json:"health"`
}

// InsuranceRecommendation is the output of the insurance calculator
type InsuranceRecommendation struct {
	Policy           string               `json:"policy"`
	TermLife         CoverRecommendation  `json:"termLife"`
	HealthInsurance  CoverRecommendation  `json:"healthInsurance"`
	PersonalAccident *CoverRecommendation `json:"personalAccident,omitempty"`
	Riders           []string             `json:"riders"`
	ActionSteps      []string             `json:"actionSteps"`
	ProtectionGap    ProtectionGap        `json:"protectionGap"`
	Priority         InsurancePriority    `json:"priority"`
}
