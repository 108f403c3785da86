package match

import "github.com/formsense/formsense/internal/model"

// fieldPatterns returns the ordered pattern table for form fields. More
// specific purposes sit above the generic ones they would otherwise shadow
// (first/last name above full name, cover letter above resume).
func fieldPatterns() []patternEntry {
	return []patternEntry{
		{purpose: model.PurposeFirstName, exprs: []string{
			`first[\s_-]?name`, `\bfname\b`, `given[\s_-]?name`,
		}},
		{purpose: model.PurposeLastName, exprs: []string{
			`last[\s_-]?name`, `\blname\b`, `family[\s_-]?name`, `surname`,
		}},
		{purpose: model.PurposeFullName, exprs: []string{
			`full[\s_-]?name`, `your[\s_-]?name`, `legal[\s_-]?name`,
		}},
		{purpose: model.PurposeEmail, exprs: []string{
			`e-?mail`,
		}},
		{purpose: model.PurposePhone, exprs: []string{
			`phone`, `mobile`, `\bcell\b`, `telephone`,
		}},
		{purpose: model.PurposeCoverLetterUpload, exprs: []string{
			`cover[\s_-]?letter`,
		}},
		{purpose: model.PurposeResumeUpload, exprs: []string{
			`resume`, `\bcv\b`, `curriculum[\s_-]?vitae`,
		}},
		{purpose: model.PurposeAddress, exprs: []string{
			`street`, `address[\s_-]?(line)?[\s_-]?1?\b`,
		}},
		{purpose: model.PurposeCity, exprs: []string{
			`\bcity\b`, `\btown\b`,
		}},
		{purpose: model.PurposeState, exprs: []string{
			`\bstate\b`, `province`,
		}},
		{purpose: model.PurposeZipCode, exprs: []string{
			`zip[\s_-]?code`, `\bzip\b`, `post(al)?[\s_-]?code`,
		}},
		{purpose: model.PurposeCountry, exprs: []string{
			`country`,
		}},
		{purpose: model.PurposeYearsExperience, exprs: []string{
			`years?[\s_-]?(of[\s_-]?)?experience`, `\byoe\b`,
		}},
		{purpose: model.PurposeDesiredSalary, exprs: []string{
			`salary`, `compensation`, `desired[\s_-]?pay`,
		}},
		{purpose: model.PurposeAvailableStartDate, exprs: []string{
			`start[\s_-]?date`, `available[\s_-]?(to[\s_-]?)?start`, `availability`,
		}},
		{purpose: model.PurposeCurrentTitle, exprs: []string{
			`(job|current|position)[\s_-]?title`,
		}},
		{purpose: model.PurposeCurrentCompany, exprs: []string{
			`(current[\s_-]?)?(company|employer)`, `organization`,
		}},
		{purpose: model.PurposeWhyInterested, exprs: []string{
			`why.*(interested|apply|join)`, `motivation`,
		}},
		{purpose: model.PurposeWhyQualified, exprs: []string{
			`why.*(qualified|fit|hire)`, `qualifications`,
		}},
		{purpose: model.PurposeCareerGoals, exprs: []string{
			`career[\s_-]?goals`, `(five|5|ten|10)[\s_-]?years`,
		}},
		{purpose: model.PurposeAdditionalInfo, exprs: []string{
			`additional[\s_-]?(info|information|comments)`, `anything[\s_-]?else`, `\bnotes\b`,
		}},
	}
}

// questionPatterns returns the ordered category table for free-text
// questions.
func questionPatterns() []patternEntry {
	return []patternEntry{
		{purpose: model.PurposeWhyInterested, exprs: []string{
			`why.*(interested|apply|applying|join|excited)`,
			`what.*(attracts|draws|excites).*you`,
			`interest.*in.*(this|the|our).*(role|position|company|team)`,
		}},
		{purpose: model.PurposeWhyQualified, exprs: []string{
			`why.*(qualified|good fit|right fit|hire you|choose you)`,
			`what.*makes.*you.*(good|great|strong|unique)`,
			`describe.*your.*(strengths|qualifications)`,
		}},
		{purpose: model.PurposeCareerGoals, exprs: []string{
			`career.*goals`,
			`where.*see.*yourself`,
			`(five|5|ten|10).*years`,
			`long.?term.*(goals|plans|aspirations)`,
		}},
		{purpose: model.PurposeYearsExperience, exprs: []string{
			`how.*(many|much).*(years|experience)`,
			`years.*of.*experience`,
		}},
		{purpose: model.PurposeDesiredSalary, exprs: []string{
			`salary.*(expectation|requirement|range)`,
			`compensation.*(expect|require)`,
			`desired.*salary`,
		}},
		{purpose: model.PurposeAvailableStartDate, exprs: []string{
			`when.*(can|could|are).*you.*(start|available)`,
			`start.*date`,
			`notice.*period`,
		}},
		{purpose: model.PurposeAdditionalInfo, exprs: []string{
			`anything.*else`,
			`additional.*(information|comments|details)`,
			`other.*relevant`,
		}},
	}
}
