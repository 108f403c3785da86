package model

// Purpose is the semantic purpose of a form field. The taxonomy is a closed
// contract: adding a purpose requires updating the rule, heuristic, and
// pattern tables in lockstep.
type Purpose string

// Purpose constants.
const (
	PurposeFirstName          Purpose = "firstName"
	PurposeLastName           Purpose = "lastName"
	PurposeFullName           Purpose = "fullName"
	PurposeEmail              Purpose = "email"
	PurposePhone              Purpose = "phone"
	PurposeAddress            Purpose = "address"
	PurposeCity               Purpose = "city"
	PurposeState              Purpose = "state"
	PurposeZipCode            Purpose = "zipCode"
	PurposeCountry            Purpose = "country"
	PurposeCurrentTitle       Purpose = "currentTitle"
	PurposeCurrentCompany     Purpose = "currentCompany"
	PurposeYearsExperience    Purpose = "yearsExperience"
	PurposeDesiredSalary      Purpose = "desiredSalary"
	PurposeAvailableStartDate Purpose = "availableStartDate"
	PurposeResumeUpload       Purpose = "resumeUpload"
	PurposeCoverLetterUpload  Purpose = "coverLetterUpload"
	PurposeWhyInterested      Purpose = "whyInterested"
	PurposeWhyQualified       Purpose = "whyQualified"
	PurposeCareerGoals        Purpose = "careerGoals"
	PurposeAdditionalInfo     Purpose = "additionalInfo"
	PurposeUnknown            Purpose = "unknown"
)

// AllPurposes returns the full taxonomy in declaration order, excluding
// unknown. The order is significant: heuristic ties break by it, and prompts
// enumerate it verbatim.
func AllPurposes() []Purpose {
	return []Purpose{
		PurposeFirstName,
		PurposeLastName,
		PurposeFullName,
		PurposeEmail,
		PurposePhone,
		PurposeAddress,
		PurposeCity,
		PurposeState,
		PurposeZipCode,
		PurposeCountry,
		PurposeCurrentTitle,
		PurposeCurrentCompany,
		PurposeYearsExperience,
		PurposeDesiredSalary,
		PurposeAvailableStartDate,
		PurposeResumeUpload,
		PurposeCoverLetterUpload,
		PurposeWhyInterested,
		PurposeWhyQualified,
		PurposeCareerGoals,
		PurposeAdditionalInfo,
	}
}

// ValidPurpose reports whether p is part of the taxonomy (including unknown).
func ValidPurpose(p Purpose) bool {
	if p == PurposeUnknown {
		return true
	}
	for _, known := range AllPurposes() {
		if p == known {
			return true
		}
	}
	return false
}
