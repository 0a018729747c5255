// Package item defines the item resource and its validation contract.
//
// An item carries a name (nom) and a price (prix). Names are 1 to 255
// characters; prices are strictly greater than zero. Zero is rejected,
// not accepted as a free item.
package item

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Item is the stored representation of an item.
type Item struct {
	ID   int64   `gorm:"primaryKey" json:"id"`
	Nom  string  `gorm:"type:varchar(255);not null" json:"nom"`
	Prix float64 `gorm:"not null" json:"prix"`
}

// TableName fixes the relational table name.
func (Item) TableName() string {
	return "items"
}

// CreateRequest is the payload for creating an item. Both fields are
// required. Prix is a pointer so that an explicit zero reaches the gt
// constraint instead of being mistaken for a missing field.
type CreateRequest struct {
	Nom  string   `json:"nom" validate:"required,min=1,max=255"`
	Prix *float64 `json:"prix" validate:"required,gt=0"`
}

// UpdateRequest is the payload for a partial update. A nil field means
// "leave unchanged"; a present field must satisfy the same bounds as on
// create.
type UpdateRequest struct {
	Nom  *string  `json:"nom" validate:"omitnil,min=1,max=255"`
	Prix *float64 `json:"prix" validate:"omitnil,gt=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the JSON field names clients actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError reports the fields of a request that violated their
// constraints. All failing fields are collected before the request is
// rejected; nothing is persisted.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, "; ")
}

// Validate checks the create payload against the item constraints.
func (r *CreateRequest) Validate() error {
	return checkStruct(r)
}

// Validate checks the fields present in the update payload. Absent
// fields are not validated.
func (r *UpdateRequest) Validate() error {
	return checkStruct(r)
}

// Apply copies the fields present in the request onto it, leaving absent
// fields untouched.
func (r *UpdateRequest) Apply(it *Item) {
	if r.Nom != nil {
		it.Nom = *r.Nom
	}
	if r.Prix != nil {
		it.Prix = *r.Prix
	}
}

func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, describe(fe))
	}
	return &ValidationError{Fields: fields}
}

// describe turns a field error into a client-facing message.
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: field is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s: must not be empty", fe.Field())
	case "max":
		return fmt.Sprintf("%s: must be at most %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s: must be greater than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s: invalid value", fe.Field())
	}
}
