package service

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/MKhiriev/go-pet-tracker/internal/apierror"
	"github.com/MKhiriev/go-pet-tracker/models"
)

func validateRegister(req models.RegisterRequest) error {
	var errs fieldErrors
	validateEmail(&errs, "email", req.Email)
	if req.Password == "" {
		errs.add(required("password", "Password is required"))
	}
	if req.PasswordConfirmation != "" && req.PasswordConfirmation != req.Password {
		errs.add(apierror.FieldError{Field: "confirmPassword", Message: "Passwords do not match", Code: CodeMismatch})
	}
	return errs.err()
}

func validateLogin(req models.LoginRequest) error {
	var errs fieldErrors
	if strings.TrimSpace(req.Email) == "" {
		errs.add(required("email", "Email is required"))
	}
	if req.Password == "" {
		errs.add(required("password", "Password is required"))
	}
	return errs.err()
}

func validateEmail(errs *fieldErrors, field, email string) {
	if strings.TrimSpace(email) == "" {
		errs.add(required(field, "Email is required"))
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		errs.add(invalid(field, "Email is invalid"))
	}
}

func validateID(field, message string, id models.ID) error {
	if id.IsZero() {
		return apierror.Validation(required(field, message))
	}
	return nil
}

// validateEntry checks an entry input and returns it with a value payload.
func validateEntry(petID models.ID, in models.EntryInput) (models.EntryInput, error) {
	var errs fieldErrors
	if petID.IsZero() {
		errs.add(required("petId", "Pet is required"))
	}
	if strings.TrimSpace(in.Title) == "" {
		errs.add(required("title", "Title is required"))
	}

	in.Payload = models.ValuePayload(in.Payload)
	switch {
	case in.Type == "":
		errs.add(required("type", "Entry type is required"))
	case !in.Type.Known():
		errs.add(invalid("type", fmt.Sprintf("Unknown entry type %q", in.Type)))
	case in.Payload == nil:
		errs.add(required("details", "Details are required"))
	case in.Payload.EntryType() != in.Type:
		errs.add(apierror.FieldError{
			Field:   "details",
			Message: fmt.Sprintf("Details of type %q do not match entry type %q", in.Payload.EntryType(), in.Type),
			Code:    CodeMismatch,
		})
	default:
		validatePayload(&errs, in.Payload)
	}

	return in, errs.err()
}

func validatePayload(errs *fieldErrors, p models.EntryPayload) {
	switch v := p.(type) {
	case models.MedicalDetails:
		if strings.TrimSpace(v.Condition) == "" {
			errs.add(required("details.condition", "Condition is required"))
		}
	case models.DietDetails:
		if strings.TrimSpace(v.Food) == "" {
			errs.add(required("details.food", "Food is required"))
		}
		if v.Amount < 0 {
			errs.add(invalid("details.amount", "Amount cannot be negative"))
		}
	case models.HabitDetails:
		if strings.TrimSpace(v.Behavior) == "" {
			errs.add(required("details.behavior", "Behavior is required"))
		}
	case models.CommandDetails:
		if strings.TrimSpace(v.Command) == "" {
			errs.add(required("details.command", "Command is required"))
		}
		if v.Attempts < 0 {
			errs.add(invalid("details.attempts", "Attempts cannot be negative"))
		}
	}
}

var knownPermissions = map[models.Permission]bool{
	models.PermissionView:   true,
	models.PermissionEdit:   true,
	models.PermissionManage: true,
}

func validateInvite(petID models.ID, in models.InviteInput) error {
	var errs fieldErrors
	if petID.IsZero() {
		errs.add(required("petId", "Pet is required"))
	}
	validateEmail(&errs, "email", in.Email)
	for _, p := range in.Permissions {
		if !knownPermissions[p] {
			errs.add(invalid("permissions", fmt.Sprintf("Unknown permission %q", p)))
			break
		}
	}
	return errs.err()
}

func validateShare(petID models.ID, in models.ShareInput, now time.Time) error {
	var errs fieldErrors
	if petID.IsZero() {
		errs.add(required("petId", "Pet is required"))
	}
	validateEmail(&errs, "email", in.Email)
	switch {
	case in.Permission == "":
		errs.add(required("permission", "Permission is required"))
	case in.Permission != models.PermissionView && in.Permission != models.PermissionEdit:
		errs.add(invalid("permission", fmt.Sprintf("Notebooks cannot be shared with permission %q", in.Permission)))
	}
	if in.ExpiresAt != nil && !in.ExpiresAt.After(now) {
		errs.add(invalid("expiresAt", "Expiry must be in the future"))
	}
	return errs.err()
}

func validateTransition(from, to models.ShareStatus) error {
	if from.CanTransition(to) {
		return nil
	}
	return apierror.Validation(apierror.FieldError{
		Field:   "status",
		Message: fmt.Sprintf("Cannot change status from %s to %s", from, to),
		Code:    CodeInvalidTransition,
	})
}
