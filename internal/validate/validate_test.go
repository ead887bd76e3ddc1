package validate

import (
	"testing"
	"time"

	"github.com/GoArmGo/CatalogApp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsObjectID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"valid lowercase hex", "507f1f77bcf86cd799439011", true},
		{"valid uppercase hex", "507F1F77BCF86CD799439011", true},
		{"too short", "507f1f77bcf86cd7994390", false},
		{"too long", "507f1f77bcf86cd79943901122", false},
		{"non-hex characters", "507f1f77bcf86cd79943901z", false},
		{"empty", "", false},
		{"arbitrary string", "not-a-real-id", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsObjectID(tt.id))
		})
	}
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid ObjectID", "507f1f77bcf86cd799439011", false},
		{"plain string of 3+ chars", "abc", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too short non-ObjectID", "ab", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCreateUserRequest(t *testing.T) {
	t.Run("valid email passes", func(t *testing.T) {
		err := ValidateCreateUserRequest(domain.CreateUserRequest{Email: "user@example.com"})
		require.NoError(t, err)
	})

	tests := []struct {
		name  string
		email string
	}{
		{"empty email", ""},
		{"whitespace email", "   "},
		{"missing at sign", "userexample.com"},
		{"missing domain", "user@"},
		{"missing tld", "user@example"},
		{"spaces inside", "us er@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCreateUserRequest(domain.CreateUserRequest{Email: tt.email})
			assert.Error(t, err)
		})
	}
}

func TestValidateCreateMediaRequest(t *testing.T) {
	valid := domain.CreateMediaRequest{
		Title:       "Inception",
		Description: "A mind-bending thriller",
		Type:        domain.MediaTypeMovie,
		ReleaseYear: 2010,
		Genre:       "sci-fi",
	}

	t.Run("valid request passes", func(t *testing.T) {
		require.NoError(t, ValidateCreateMediaRequest(valid))
	})

	t.Run("series type passes", func(t *testing.T) {
		req := valid
		req.Type = domain.MediaTypeSeries
		require.NoError(t, ValidateCreateMediaRequest(req))
	})

	t.Run("release year upper bound follows the current year", func(t *testing.T) {
		req := valid
		req.ReleaseYear = time.Now().Year() + 5
		require.NoError(t, ValidateCreateMediaRequest(req))

		req.ReleaseYear = time.Now().Year() + 6
		require.Error(t, ValidateCreateMediaRequest(req))
	})

	tests := []struct {
		name   string
		mutate func(*domain.CreateMediaRequest)
	}{
		{"blank title", func(r *domain.CreateMediaRequest) { r.Title = "  " }},
		{"blank description", func(r *domain.CreateMediaRequest) { r.Description = "" }},
		{"invalid type", func(r *domain.CreateMediaRequest) { r.Type = "documentary" }},
		{"year before 1900", func(r *domain.CreateMediaRequest) { r.ReleaseYear = 1899 }},
		{"zero year", func(r *domain.CreateMediaRequest) { r.ReleaseYear = 0 }},
		{"blank genre", func(r *domain.CreateMediaRequest) { r.Genre = " " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, ValidateCreateMediaRequest(req))
		})
	}
}
