package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/storefront-labs/olist-api/pkg/validation"
)

type createInput struct {
	ID    string `json:"customer_id" validate:"required"`
	Zip   string `json:"customer_zip_code_prefix" validate:"required,min=5,max=10"`
	State string `json:"customer_state" validate:"required,len=2"`
}

type patchInput struct {
	Zip   *string `json:"customer_zip_code_prefix,omitempty" validate:"omitempty,min=5,max=10"`
	State *string `json:"customer_state,omitempty" validate:"omitempty,len=2"`
}

func TestValidator_Struct_Valid(t *testing.T) {
	v := validation.New()

	err := v.Struct(createInput{ID: "c1", Zip: "12345", State: "SP"})
	if err != nil {
		t.Errorf("Struct() = %v, want nil", err)
	}
}

func TestValidator_Struct_FieldNamesFromJSONTags(t *testing.T) {
	v := validation.New()

	err := v.Struct(createInput{ID: "c1", Zip: "12345", State: "SPX"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var vErr *validation.Error
	if !errors.As(err, &vErr) {
		t.Fatalf("error type = %T, want *validation.Error", err)
	}

	if len(vErr.Fields) != 1 {
		t.Fatalf("len(Fields) = %d, want 1", len(vErr.Fields))
	}
	if vErr.Fields[0].Field != "customer_state" {
		t.Errorf("Field = %q, want %q", vErr.Fields[0].Field, "customer_state")
	}
	if !strings.Contains(err.Error(), "customer_state") {
		t.Errorf("Error() = %q, should name the violated field", err.Error())
	}
}

func TestValidator_Struct_ReportsAllViolations(t *testing.T) {
	v := validation.New()

	err := v.Struct(createInput{ID: "", Zip: "123", State: "S"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var vErr *validation.Error
	if !errors.As(err, &vErr) {
		t.Fatalf("error type = %T, want *validation.Error", err)
	}

	if len(vErr.Fields) != 3 {
		t.Errorf("len(Fields) = %d, want 3", len(vErr.Fields))
	}
}

func TestValidator_Struct_OmitemptySkipsNilFields(t *testing.T) {
	v := validation.New()

	if err := v.Struct(patchInput{}); err != nil {
		t.Errorf("Struct() = %v, want nil for empty patch", err)
	}

	bad := "S"
	err := v.Struct(patchInput{State: &bad})
	if err == nil {
		t.Fatal("expected validation error for short state")
	}
}
