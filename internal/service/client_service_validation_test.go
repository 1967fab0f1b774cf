package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pet-tracker/internal/apierror"
	"github.com/MKhiriev/go-pet-tracker/models"
)

// fieldCodes maps every reported field to its code.
func fieldCodes(t *testing.T, err error) map[string]string {
	t.Helper()
	if err == nil {
		return nil
	}
	e, ok := apierror.As(err)
	require.True(t, ok, "expected *apierror.Error, got %T", err)
	require.Equal(t, apierror.KindValidation, e.Kind)

	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = f.Code
	}
	return out
}

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name string
		req  models.RegisterRequest
		want map[string]string
	}{
		{
			name: "valid",
			req:  models.RegisterRequest{Email: "test@example.com", Password: "secret"},
		},
		{
			name: "valid with confirmation",
			req:  models.RegisterRequest{Email: "test@example.com", Password: "secret", PasswordConfirmation: "secret"},
		},
		{
			name: "empty",
			req:  models.RegisterRequest{},
			want: map[string]string{"email": CodeRequiredField, "password": CodeRequiredField},
		},
		{
			name: "malformed email",
			req:  models.RegisterRequest{Email: "test@", Password: "secret"},
			want: map[string]string{"email": CodeInvalidValue},
		},
		{
			name: "confirmation mismatch",
			req:  models.RegisterRequest{Email: "test@example.com", Password: "secret", PasswordConfirmation: "other"},
			want: map[string]string{"confirmPassword": CodeMismatch},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fieldCodes(t, validateRegister(tt.req)))
		})
	}
}

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, validateLogin(models.LoginRequest{Email: "test@example.com", Password: "x"}))
	assert.Equal(t,
		map[string]string{"email": CodeRequiredField, "password": CodeRequiredField},
		fieldCodes(t, validateLogin(models.LoginRequest{Email: "  "})))
}

func TestValidateEntry_ConvertsPointerPayload(t *testing.T) {
	in := models.EntryInput{
		Type:    models.EntryDiet,
		Title:   "Breakfast",
		Payload: &models.DietDetails{Food: "kibble", Amount: 120, Unit: "g"},
	}

	got, err := validateEntry("p1", in)
	require.NoError(t, err)
	assert.Equal(t, models.DietDetails{Food: "kibble", Amount: 120, Unit: "g"}, got.Payload)
}

func TestValidateEntry_Payloads(t *testing.T) {
	tests := []struct {
		name    string
		typ     models.EntryType
		payload models.EntryPayload
		want    map[string]string
	}{
		{"medical ok", models.EntryMedical, models.MedicalDetails{Condition: "otitis"}, nil},
		{"medical no condition", models.EntryMedical, models.MedicalDetails{}, map[string]string{"details.condition": CodeRequiredField}},
		{"diet negative amount", models.EntryDiet, models.DietDetails{Food: "kibble", Amount: -1}, map[string]string{"details.amount": CodeInvalidValue}},
		{"habit no behavior", models.EntryHabit, models.HabitDetails{Frequency: "daily"}, map[string]string{"details.behavior": CodeRequiredField}},
		{"command ok", models.EntryCommand, models.CommandDetails{Command: "sit", Attempts: 3}, nil},
		{"nil pointer payload", models.EntryHabit, (*models.HabitDetails)(nil), map[string]string{"details": CodeRequiredField}},
		{"mismatch", models.EntryCommand, models.HabitDetails{Behavior: "barking"}, map[string]string{"details": CodeMismatch}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateEntry("p1", models.EntryInput{Type: tt.typ, Title: "t", Payload: tt.payload})
			assert.Equal(t, tt.want, fieldCodes(t, err))
		})
	}
}

func TestValidateInvite(t *testing.T) {
	ok := models.InviteInput{Email: "friend@example.com", Permissions: []models.Permission{models.PermissionView, models.PermissionManage}}
	assert.NoError(t, validateInvite("p1", ok))

	err := validateInvite("p1", models.InviteInput{Email: "friend@example.com", Permissions: []models.Permission{"view", "fly", "swim"}})
	e, _ := apierror.As(err)
	require.NotNil(t, e)
	require.Len(t, e.Fields, 1)
	assert.Equal(t, `Unknown permission "fly"`, e.Message)
}

func TestValidateShare(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)

	assert.NoError(t, validateShare("p1", models.ShareInput{Email: "vet@example.com", Permission: models.PermissionEdit, ExpiresAt: &future}, now))
	assert.Equal(t,
		map[string]string{"email": CodeRequiredField, "permission": CodeRequiredField, "expiresAt": CodeInvalidValue},
		fieldCodes(t, validateShare("p1", models.ShareInput{ExpiresAt: &now}, now)))
}

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		from, to models.ShareStatus
		ok       bool
	}{
		{models.StatusPending, models.StatusAccepted, true},
		{models.StatusPending, models.StatusRejected, true},
		{models.StatusPending, models.StatusRevoked, true},
		{models.StatusAccepted, models.StatusRevoked, true},
		{models.StatusAccepted, models.StatusRejected, false},
		{models.StatusRejected, models.StatusAccepted, false},
		{models.StatusRevoked, models.StatusRevoked, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := validateTransition(tt.from, tt.to)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, map[string]string{"status": CodeInvalidTransition}, fieldCodes(t, err))
		})
	}
}
