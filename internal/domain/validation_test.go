package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected *ValidationError, got %T", err)
	names := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidateContactInput(t *testing.T) {
	valid := ContactInput{
		Name:    "John Smith",
		Email:   "john.smith@techcorp.com",
		Subject: "Collaboration Opportunity",
		Message: "Would you be interested in discussing a project?",
	}

	tests := []struct {
		name       string
		mutate     func(in *ContactInput)
		wantFields []string
	}{
		{
			name:   "valid submission",
			mutate: func(in *ContactInput) {},
		},
		{
			name:       "email without at sign",
			mutate:     func(in *ContactInput) { in.Email = "invalid-email" },
			wantFields: []string{"email"},
		},
		{
			name:       "email without domain",
			mutate:     func(in *ContactInput) { in.Email = "user@" },
			wantFields: []string{"email"},
		},
		{
			name:       "email domain without dot",
			mutate:     func(in *ContactInput) { in.Email = "user@localhost" },
			wantFields: []string{"email"},
		},
		{
			name: "missing subject and message",
			mutate: func(in *ContactInput) {
				in.Subject = ""
				in.Message = ""
			},
			wantFields: []string{"subject", "message"},
		},
		{
			name:       "blank name",
			mutate:     func(in *ContactInput) { in.Name = "   " },
			wantFields: []string{"name"},
		},
		{
			name:       "everything missing",
			mutate:     func(in *ContactInput) { *in = ContactInput{} },
			wantFields: []string{"name", "email", "subject", "message"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			err := Validate(in)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.ElementsMatch(t, tt.wantFields, fieldNames(t, err))
		})
	}
}

func TestValidateStatusAndAnalyticsInput(t *testing.T) {
	require.NoError(t, Validate(StatusCheckInput{ClientName: "portfolio-frontend"}))
	assert.Equal(t, []string{"client_name"}, fieldNames(t, Validate(StatusCheckInput{})))

	require.NoError(t, Validate(AnalyticsInput{Section: "projects"}))
	assert.Equal(t, []string{"section"}, fieldNames(t, Validate(AnalyticsInput{Section: " "})))
}

func TestValidationErrorMessage(t *testing.T) {
	err := Validate(ContactInput{Name: "a", Email: "nope", Subject: "b", Message: "c"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email: value is not a valid email address")

	single := NewFieldError("client_name", "must be a string")
	assert.Equal(t, "validation failed: client_name: must be a string", single.Error())
}

func TestHasDottedDomain(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"a@b.co", true},
		{"first.last@mail.example.org", true},
		{"a@localhost", false},
		{"a@.com", false},
		{"a@example.", false},
		{"@example.com", false},
		{"example.com", false},
		{"a@", false},
	}
	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.want, HasDottedDomain(tt.addr))
		})
	}
}

func TestConstructorsUseGivenIdentity(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	sc := NewStatusCheck(StatusCheckInput{ClientName: "ci"}, "id-1", at)
	assert.Equal(t, "id-1", sc.ID)
	assert.Equal(t, at, sc.Timestamp)

	cm := NewContactMessage(ContactInput{Name: "n", Email: "e@x.io", Subject: "s", Message: "m"}, "id-2", at)
	assert.False(t, cm.IsRead)
	assert.Nil(t, cm.Response)
	assert.Equal(t, at, cm.Timestamp)

	ev := NewAnalyticsEvent(AnalyticsInput{Section: "about"}, "id-3", at)
	assert.Nil(t, ev.UserAgent)
	assert.Equal(t, "about", ev.Section)
}

func TestBind(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFields []string
	}{
		{
			name: "valid contact",
			body: `{"name":"Ada","email":"ada@example.com","subject":"hi","message":"hello"}`,
		},
		{
			name:       "wrong type reported with the missing fields",
			body:       `{"name":"Ada","email":5}`,
			wantFields: []string{"email", "subject", "message"},
		},
		{
			name:       "several wrong types",
			body:       `{"name":true,"email":"ada@example.com","subject":[],"message":{}}`,
			wantFields: []string{"name", "subject", "message"},
		},
		{
			name:       "null body",
			body:       `null`,
			wantFields: []string{"name", "email", "subject", "message"},
		},
		{
			name:       "array body",
			body:       `["Ada"]`,
			wantFields: []string{"body"},
		},
		{
			name:       "string body",
			body:       `"Ada"`,
			wantFields: []string{"body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in ContactInput
			err := Bind([]byte(tt.body), &in)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				assert.Equal(t, "ada@example.com", in.Email)
				return
			}
			assert.Equal(t, tt.wantFields, fieldNames(t, err))
		})
	}
}

func TestBindTypeErrorWinsOverRule(t *testing.T) {
	var in StatusCheckInput
	err := Bind([]byte(`{"client_name":42}`), &in)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "client_name", ve.Fields[0].Field)
	assert.Equal(t, "invalid type: got JSON number", ve.Fields[0].Message)
}

func TestBindOptionalPointer(t *testing.T) {
	var in AnalyticsInput
	require.NoError(t, Bind([]byte(`{"section":"hero","userAgent":null}`), &in))
	assert.Nil(t, in.UserAgent)

	require.NoError(t, Bind([]byte(`{"section":"hero","userAgent":"curl/8"}`), &in))
	require.NotNil(t, in.UserAgent)
	assert.Equal(t, "curl/8", *in.UserAgent)

	assert.Equal(t, []string{"userAgent"}, fieldNames(t, Bind([]byte(`{"section":"hero","userAgent":7}`), &in)))
}

func TestBindRejectsNonStruct(t *testing.T) {
	var s string
	err := Bind([]byte(`{}`), &s)
	require.Error(t, err)
	assert.False(t, IsValidation(err))
}
