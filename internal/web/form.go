package web

import (
	"net/http"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/services"
)

const dateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("form")
	})
	return v
}

// applicationForm holds the raw values of the application form.
type applicationForm struct {
	JobTitle          string `form:"job_title" validate:"required,max=255"`
	CompanyName       string `form:"company_name" validate:"required,max=255"`
	Location          string `form:"location" validate:"max=255"`
	ApplicationStatus string `form:"application_status" validate:"omitempty,oneof=wishlist applied interviewing offer rejected"`
	JobPostingURL     string `form:"job_posting_url" validate:"omitempty,url"`
	AppliedDate       string `form:"applied_date" validate:"omitempty,datetime=2006-01-02"`
	Notes             string `form:"notes"`
	IsDemo            bool   `form:"is_demo"`
	Tags              string `form:"tags" validate:"max=1000"`
}

// parseApplicationForm reads and validates the posted form. The returned
// map holds a message per invalid field, or is nil.
func parseApplicationForm(r *http.Request) (applicationForm, map[string]string) {
	if err := r.ParseForm(); err != nil {
		return applicationForm{}, map[string]string{"form": "could not read the submitted form"}
	}

	value := func(name string) string {
		return strings.TrimSpace(r.PostForm.Get(name))
	}

	form := applicationForm{
		JobTitle:          value("job_title"),
		CompanyName:       value("company_name"),
		Location:          value("location"),
		ApplicationStatus: value("application_status"),
		JobPostingURL:     value("job_posting_url"),
		AppliedDate:       value("applied_date"),
		Notes:             value("notes"),
		IsDemo:            r.PostForm.Has("is_demo"),
		Tags:              value("tags"),
	}

	err := validate.Struct(form)
	if err == nil {
		return form, nil
	}

	errs := map[string]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = err.Error()
		return form, errs
	}
	for _, fe := range verrs {
		errs[fe.Field()] = fieldMessage(fe)
	}
	return form, errs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "url":
		return "Enter a valid URL"
	case "datetime":
		return "Enter a date as YYYY-MM-DD"
	case "oneof":
		return "Choose one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "max":
		return "Must be at most " + fe.Param() + " characters"
	}
	return "Invalid value"
}

// input converts a validated form into service input.
func (f applicationForm) input() models.JobApplicationInput {
	in := models.JobApplicationInput{
		JobTitle:          f.JobTitle,
		CompanyName:       f.CompanyName,
		Location:          optional(f.Location),
		ApplicationStatus: f.ApplicationStatus,
		JobPostingURL:     optional(f.JobPostingURL),
		Notes:             optional(f.Notes),
		IsDemo:            f.IsDemo,
		Tags:              services.NormalizeTagNames(strings.Split(f.Tags, ",")),
	}
	if t, err := time.Parse(dateLayout, f.AppliedDate); err == nil {
		in.AppliedDate = &t
	}
	return in
}

func formFromApplication(app *models.JobApplication) applicationForm {
	return applicationForm{
		JobTitle:          app.JobTitle,
		CompanyName:       app.CompanyName,
		Location:          deref(app.Location),
		ApplicationStatus: app.ApplicationStatus,
		JobPostingURL:     deref(app.JobPostingURL),
		AppliedDate:       formatDate(app.AppliedDate),
		Notes:             deref(app.Notes),
		IsDemo:            app.IsDemo,
		Tags:              strings.Join(app.TagNames(), ", "),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func isStatus(s string) bool {
	return slices.Contains(models.ApplicationStatuses, s)
}
