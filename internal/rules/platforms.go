package rules

import "github.com/formsense/formsense/internal/model"

// defaultPlatformRules returns the built-in rule tables. Greenhouse and
// Lever use stable field names across tenants; Workday exposes its
// automation ids through the element id; iCIMS and Taleo use numbered but
// predictable field names.
func defaultPlatformRules() map[model.PlatformType][]Rule {
	return map[model.PlatformType][]Rule{
		model.PlatformGreenhouse: {
			{Purpose: model.PurposeFirstName, Predicates: []Predicate{
				{Attr: AttrName, Op: OpEquals, Value: "first_name"},
				{Attr: AttrID, Op: OpEquals, Value: "first_name"},
			}},
			{Purpose: model.PurposeLastName, Predicates: []Predicate{
				{Attr: AttrName, Op: OpEquals, Value: "last_name"},
				{Attr: AttrID, Op: OpEquals, Value: "last_name"},
			}},
			{Purpose: model.PurposeEmail, Predicates: []Predicate{
				{Attr: AttrName, Op: OpEquals, Value: "email"},
				{Attr: AttrID, Op: OpEquals, Value: "email"},
			}},
			{Purpose: model.PurposePhone, Predicates: []Predicate{
				{Attr: AttrName, Op: OpEquals, Value: "phone"},
				{Attr: AttrID, Op: OpEquals, Value: "phone"},
			}},
			{Purpose: model.PurposeResumeUpload, Predicates: []Predicate{
				{Attr: AttrName, Op: OpEquals, Value: "resume"},
				{Attr: AttrID, Op: OpContains, Value: "resume"},
			}},
			{Purpose: model.PurposeCoverLetterUpload, Predicates: []Predicate{
				{Attr: AttrName, Op: OpEquals, Value: "cover_letter"},
				{Attr: AttrID, Op: OpContains, Value: "cover_letter"},
			}},
			{Purpose: model.PurposeCurrentCompany, Predicates: []Predicate{
				{Attr: AttrName, Op: OpContains, Value: "company"},
			}},
			{Purpose: model.PurposeWhyInterested, Predicates: []Predicate{
				{Attr: AttrName, Op: OpRegex, Value: `question_\d+.*interest`},
			}},
		},
		model.PlatformLever: {
			{Purpose: model.PurposeFullName, Predicates: []Predicate{
				{Attr: AttrName, Op: OpEquals, Value: "name"},
			}},
			{Purpose: model.PurposeEmail, Predicates: []Predicate{
				{Attr: AttrName, Op: OpEquals, Value: "email"},
			}},
			{Purpose: model.PurposePhone, Predicates: []Predicate{
				{Attr: AttrName, Op: OpEquals, Value: "phone"},
			}},
			{Purpose: model.PurposeCurrentCompany, Predicates: []Predicate{
				{Attr: AttrName, Op: OpEquals, Value: "org"},
			}},
			{Purpose: model.PurposeResumeUpload, Predicates: []Predicate{
				{Attr: AttrName, Op: OpEquals, Value: "resume"},
			}},
			{Purpose: model.PurposeAdditionalInfo, Predicates: []Predicate{
				{Attr: AttrName, Op: OpEquals, Value: "comments"},
			}},
		},
		model.PlatformWorkday: {
			{Purpose: model.PurposeFirstName, Predicates: []Predicate{
				{Attr: AttrID, Op: OpContains, Value: "legalnamesection_firstname"},
				{Attr: AttrID, Op: OpContains, Value: "firstname"},
			}},
			{Purpose: model.PurposeLastName, Predicates: []Predicate{
				{Attr: AttrID, Op: OpContains, Value: "legalnamesection_lastname"},
				{Attr: AttrID, Op: OpContains, Value: "lastname"},
			}},
			{Purpose: model.PurposeEmail, Predicates: []Predicate{
				{Attr: AttrID, Op: OpContains, Value: "email"},
			}},
			{Purpose: model.PurposePhone, Predicates: []Predicate{
				{Attr: AttrID, Op: OpContains, Value: "phone-number"},
				{Attr: AttrID, Op: OpContains, Value: "phonenumber"},
			}},
			{Purpose: model.PurposeAddress, Predicates: []Predicate{
				{Attr: AttrID, Op: OpContains, Value: "addresssection_addressline"},
			}},
			{Purpose: model.PurposeCity, Predicates: []Predicate{
				{Attr: AttrID, Op: OpContains, Value: "addresssection_city"},
			}},
			{Purpose: model.PurposeZipCode, Predicates: []Predicate{
				{Attr: AttrID, Op: OpContains, Value: "addresssection_postalcode"},
			}},
			{Purpose: model.PurposeResumeUpload, Predicates: []Predicate{
				{Attr: AttrID, Op: OpContains, Value: "resumeattachments"},
				{Attr: AttrKind, Op: OpEquals, Value: "file"},
			}},
		},
		model.PlatformICIMS: {
			{Purpose: model.PurposeFirstName, Predicates: []Predicate{
				{Attr: AttrID, Op: OpRegex, Value: `firstname\d*`},
			}},
			{Purpose: model.PurposeLastName, Predicates: []Predicate{
				{Attr: AttrID, Op: OpRegex, Value: `lastname\d*`},
			}},
			{Purpose: model.PurposeEmail, Predicates: []Predicate{
				{Attr: AttrID, Op: OpRegex, Value: `email\d*`},
			}},
			{Purpose: model.PurposePhone, Predicates: []Predicate{
				{Attr: AttrID, Op: OpRegex, Value: `phone\d*`},
			}},
		},
		model.PlatformTaleo: {
			{Purpose: model.PurposeFirstName, Predicates: []Predicate{
				{Attr: AttrName, Op: OpContains, Value: "firstname"},
			}},
			{Purpose: model.PurposeLastName, Predicates: []Predicate{
				{Attr: AttrName, Op: OpContains, Value: "lastname"},
			}},
			{Purpose: model.PurposeEmail, Predicates: []Predicate{
				{Attr: AttrName, Op: OpContains, Value: "email"},
			}},
			{Purpose: model.PurposeDesiredSalary, Predicates: []Predicate{
				{Attr: AttrName, Op: OpContains, Value: "expectedsalary"},
				{Attr: AttrName, Op: OpContains, Value: "desiredsalary"},
			}},
		},
	}
}
