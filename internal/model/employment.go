package model

import "fmt"

// EmploymentType is the normalized employment type from a job's criteria
// section. LinkedIn localizes the value by posting language, so lookup
// goes through a multilingual alias table.
type EmploymentType string

const (
	EmploymentFullTime     EmploymentType = "fulltime"
	EmploymentPartTime     EmploymentType = "parttime"
	EmploymentInternship   EmploymentType = "internship"
	EmploymentPerDiem      EmploymentType = "perdiem"
	EmploymentNights       EmploymentType = "nights"
	EmploymentOther        EmploymentType = "other"
	EmploymentSummer       EmploymentType = "summer"
	EmploymentVolunteer    EmploymentType = "volunteer"
	EmploymentSelfEmployed EmploymentType = "contract"
)

// employmentAliases maps localized values to employment types. Keys are
// lowercase with dashes and spaces already stripped, matching how the
// scraper normalizes criteria values before lookup.
var employmentAliases = map[string]EmploymentType{
	"fulltime":            EmploymentFullTime,
	"períodointegral":     EmploymentFullTime,
	"estágio/trainee":     EmploymentFullTime,
	"cunormăîntreagă":     EmploymentFullTime,
	"tiempocompleto":      EmploymentFullTime,
	"vollzeit":            EmploymentFullTime,
	"voltijds":            EmploymentFullTime,
	"tempointegral":       EmploymentFullTime,
	"全职":                  EmploymentFullTime,
	"plnýúvazek":          EmploymentFullTime,
	"fuldtid":             EmploymentFullTime,
	"دوامكامل":            EmploymentFullTime,
	"kokopäivätyö":        EmploymentFullTime,
	"tempsplein":          EmploymentFullTime,
	"πλήρηςαπασχόληση":    EmploymentFullTime,
	"teljesmunkaidő":      EmploymentFullTime,
	"tempopieno":          EmploymentFullTime,
	"heltid":              EmploymentFullTime,
	"jornadacompleta":     EmploymentFullTime,
	"pełnyetat":           EmploymentFullTime,
	"정규직":                 EmploymentFullTime,
	"100%":                EmploymentFullTime,
	"全職":                  EmploymentFullTime,
	"งานประจำ":            EmploymentFullTime,
	"tamzamanli":          EmploymentFullTime,
	"повназайнятість":     EmploymentFullTime,
	"toànthờigian":        EmploymentFullTime,
	"parttime":            EmploymentPartTime,
	"teilzeit":            EmploymentPartTime,
	"částečnýúvazek":      EmploymentPartTime,
	"deltid":              EmploymentPartTime,
	"internship":          EmploymentInternship,
	"prácticas":           EmploymentInternship,
	"ojt(onthejobtraining)": EmploymentInternship,
	"praktikum":           EmploymentInternship,
	"praktik":             EmploymentInternship,
	"perdiem":             EmploymentPerDiem,
	"nights":              EmploymentNights,
	"other":               EmploymentOther,
	"summer":              EmploymentSummer,
	"volunteer":           EmploymentVolunteer,
	"contract":            EmploymentSelfEmployed,
}

// EmploymentTypeFromAlias resolves a normalized (lowercase, no dashes or
// spaces) employment type value.
func EmploymentTypeFromAlias(alias string) (EmploymentType, error) {
	if t, ok := employmentAliases[alias]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown employment type %q", alias)
}
