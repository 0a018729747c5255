package item

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

func TestCreateRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRequest
		wantErr string // substring of the validation message, "" = valid
	}{
		{
			name: "valid",
			req:  CreateRequest{Nom: "Laptop", Prix: floatPtr(999.99)},
		},
		{
			name: "name at max length",
			req:  CreateRequest{Nom: strings.Repeat("a", 255), Prix: floatPtr(1)},
		},
		{
			name:    "empty name",
			req:     CreateRequest{Nom: "", Prix: floatPtr(10)},
			wantErr: "nom",
		},
		{
			name:    "name too long",
			req:     CreateRequest{Nom: strings.Repeat("a", 256), Prix: floatPtr(10)},
			wantErr: "at most 255",
		},
		{
			name:    "missing price",
			req:     CreateRequest{Nom: "Item Incomplet"},
			wantErr: "prix",
		},
		{
			name:    "zero price",
			req:     CreateRequest{Nom: "Item Prix Zéro", Prix: floatPtr(0)},
			wantErr: "greater than 0",
		},
		{
			name:    "negative price",
			req:     CreateRequest{Nom: "Item Prix Négatif", Prix: floatPtr(-10)},
			wantErr: "greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Fields)
		})
	}
}

func TestUpdateRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     UpdateRequest
		wantErr string
	}{
		{
			name: "empty payload is valid",
			req:  UpdateRequest{},
		},
		{
			name: "name only",
			req:  UpdateRequest{Nom: strPtr("Clavier")},
		},
		{
			name: "price only",
			req:  UpdateRequest{Prix: floatPtr(12.5)},
		},
		{
			name:    "explicit empty name rejected",
			req:     UpdateRequest{Nom: strPtr("")},
			wantErr: "nom",
		},
		{
			name:    "name too long rejected",
			req:     UpdateRequest{Nom: strPtr(strings.Repeat("x", 256))},
			wantErr: "at most 255",
		},
		{
			name:    "zero price rejected",
			req:     UpdateRequest{Prix: floatPtr(0)},
			wantErr: "greater than 0",
		},
		{
			name:    "negative price rejected",
			req:     UpdateRequest{Prix: floatPtr(-10)},
			wantErr: "greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUpdateRequestApply(t *testing.T) {
	it := Item{ID: 3, Nom: "Écran", Prix: 299.99}

	// Absent fields keep their prior values.
	(&UpdateRequest{Prix: floatPtr(249.99)}).Apply(&it)
	assert.Equal(t, "Écran", it.Nom)
	assert.Equal(t, 249.99, it.Prix)

	(&UpdateRequest{Nom: strPtr("Écran 4K")}).Apply(&it)
	assert.Equal(t, "Écran 4K", it.Nom)
	assert.Equal(t, 249.99, it.Prix)

	// Empty update touches nothing.
	(&UpdateRequest{}).Apply(&it)
	assert.Equal(t, int64(3), it.ID)
	assert.Equal(t, "Écran 4K", it.Nom)
	assert.Equal(t, 249.99, it.Prix)
}
