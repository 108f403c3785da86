package heuristic

import "github.com/formsense/formsense/internal/model"

// defaultProfiles returns the keyword dictionaries per purpose. Declaration
// order is the tie-break order.
func defaultProfiles() []profile {
	return []profile{
		{
			purpose:      model.PurposeFirstName,
			names:        []string{"first_name", "firstname", "first-name", "fname"},
			placeholders: []string{"first name"},
			labels:       []string{"first name", "given name"},
			kinds:        []model.FieldKind{model.KindText},
		},
		{
			purpose:      model.PurposeLastName,
			names:        []string{"last_name", "lastname", "last-name", "lname", "surname"},
			placeholders: []string{"last name"},
			labels:       []string{"last name", "family name", "surname"},
			kinds:        []model.FieldKind{model.KindText},
		},
		{
			purpose:      model.PurposeFullName,
			names:        []string{"full_name", "fullname", "full-name", "your_name"},
			placeholders: []string{"full name", "your name"},
			labels:       []string{"full name"},
			kinds:        []model.FieldKind{model.KindText},
		},
		{
			purpose:      model.PurposeEmail,
			names:        []string{"email", "e-mail", "mail"},
			placeholders: []string{"email", "you@"},
			labels:       []string{"email"},
			kinds:        []model.FieldKind{model.KindEmail, model.KindText},
		},
		{
			purpose:      model.PurposePhone,
			names:        []string{"phone", "mobile", "cell", "telephone"},
			placeholders: []string{"phone", "(555)"},
			labels:       []string{"phone", "mobile"},
			kinds:        []model.FieldKind{model.KindTel, model.KindText},
		},
		{
			purpose:      model.PurposeAddress,
			names:        []string{"address", "street", "addr1", "address1"},
			placeholders: []string{"street address"},
			labels:       []string{"address", "street"},
			kinds:        []model.FieldKind{model.KindText},
		},
		{
			purpose:      model.PurposeCity,
			names:        []string{"city", "town", "locality"},
			placeholders: []string{"city"},
			labels:       []string{"city"},
			kinds:        []model.FieldKind{model.KindText},
		},
		{
			purpose:      model.PurposeState,
			names:        []string{"state", "province", "region"},
			placeholders: []string{"state"},
			labels:       []string{"state", "province"},
			kinds:        []model.FieldKind{model.KindText, model.KindSelect},
		},
		{
			purpose:      model.PurposeZipCode,
			names:        []string{"zip", "postal", "zipcode", "postcode"},
			placeholders: []string{"zip", "postal code"},
			labels:       []string{"zip", "postal"},
			kinds:        []model.FieldKind{model.KindText, model.KindNumber},
		},
		{
			purpose:      model.PurposeCountry,
			names:        []string{"country", "nation"},
			placeholders: []string{"country"},
			labels:       []string{"country"},
			kinds:        []model.FieldKind{model.KindSelect, model.KindText},
		},
		{
			purpose:      model.PurposeCurrentTitle,
			names:        []string{"job_title", "jobtitle", "current_title", "position_title", "title"},
			placeholders: []string{"job title", "current title"},
			labels:       []string{"job title", "current title", "current position"},
			kinds:        []model.FieldKind{model.KindText},
		},
		{
			purpose:      model.PurposeCurrentCompany,
			names:        []string{"company", "employer", "organization", "org_name"},
			placeholders: []string{"company", "employer"},
			labels:       []string{"current company", "employer", "company"},
			kinds:        []model.FieldKind{model.KindText},
		},
		{
			purpose:      model.PurposeYearsExperience,
			names:        []string{"years_experience", "experience_years", "yoe", "years_of_experience"},
			placeholders: []string{"years"},
			labels:       []string{"years of experience", "experience"},
			kinds:        []model.FieldKind{model.KindNumber, model.KindText, model.KindSelect},
		},
		{
			purpose:      model.PurposeDesiredSalary,
			names:        []string{"salary", "compensation", "pay_expectation", "desired_pay"},
			placeholders: []string{"salary", "$"},
			labels:       []string{"salary", "compensation"},
			kinds:        []model.FieldKind{model.KindText, model.KindNumber},
		},
		{
			purpose:      model.PurposeAvailableStartDate,
			names:        []string{"start_date", "startdate", "available", "availability"},
			placeholders: []string{"start date", "mm/dd"},
			labels:       []string{"start date", "available to start", "availability"},
			kinds:        []model.FieldKind{model.KindDate, model.KindText},
		},
		{
			purpose:      model.PurposeResumeUpload,
			names:        []string{"resume", "cv", "curriculum"},
			placeholders: []string{"resume"},
			labels:       []string{"resume", "cv"},
			kinds:        []model.FieldKind{model.KindFile},
		},
		{
			purpose:      model.PurposeCoverLetterUpload,
			names:        []string{"cover_letter", "coverletter", "cover-letter"},
			placeholders: []string{"cover letter"},
			labels:       []string{"cover letter"},
			kinds:        []model.FieldKind{model.KindFile, model.KindTextarea},
		},
		{
			purpose:      model.PurposeWhyInterested,
			names:        []string{"why_interested", "motivation", "why_apply"},
			placeholders: []string{"why are you interested"},
			labels:       []string{"why are you interested", "why do you want"},
			kinds:        []model.FieldKind{model.KindTextarea},
		},
		{
			purpose:      model.PurposeWhyQualified,
			names:        []string{"why_qualified", "qualifications", "why_fit"},
			placeholders: []string{"why are you a good fit"},
			labels:       []string{"why are you qualified", "good fit"},
			kinds:        []model.FieldKind{model.KindTextarea},
		},
		{
			purpose:      model.PurposeCareerGoals,
			names:        []string{"career_goals", "goals", "five_years"},
			placeholders: []string{"career goals"},
			labels:       []string{"career goals", "where do you see yourself"},
			kinds:        []model.FieldKind{model.KindTextarea},
		},
		{
			purpose:      model.PurposeAdditionalInfo,
			names:        []string{"additional", "comments", "notes", "anything_else"},
			placeholders: []string{"additional information", "anything else"},
			labels:       []string{"additional information", "comments"},
			kinds:        []model.FieldKind{model.KindTextarea},
		},
	}
}
