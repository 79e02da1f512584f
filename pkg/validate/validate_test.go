package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signupForm struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     string  `json:"role" validate:"required,in=farmer,buyer"`
	Age      int     `json:"age" validate:"nullable,gte=18"`
	Price    *float64 `json:"price" validate:"nullable,gt=0"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(signupForm{
		Name:     "Ravi",
		Email:    "ravi@example.com",
		Password: "secret1",
		Role:     "farmer",
		Age:      30,
	})
	assert.Empty(t, errs)
}

func TestStructRequired(t *testing.T) {
	errs := Struct(signupForm{})
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
	assert.Contains(t, errs, "role")
	// nullable fields stay quiet when absent
	assert.NotContains(t, errs, "age")
	assert.NotContains(t, errs, "price")
}

func TestStructEmail(t *testing.T) {
	errs := Struct(signupForm{Name: "x", Email: "not-an-email", Password: "secret1", Role: "buyer"})
	assert.Equal(t, "The email must be a valid email address.", errs["email"])
}

func TestStructMinLength(t *testing.T) {
	errs := Struct(signupForm{Name: "x", Email: "a@b.co", Password: "abc", Role: "buyer"})
	assert.Contains(t, errs["password"], "at least 6")
}

func TestStructInRule(t *testing.T) {
	errs := Struct(signupForm{Name: "x", Email: "a@b.co", Password: "secret1", Role: "admin"})
	assert.Equal(t, "The selected role is invalid.", errs["role"])

	// every listed value passes, not just the first
	for _, role := range []string{"farmer", "buyer"} {
		errs := Struct(signupForm{Name: "x", Email: "a@b.co", Password: "secret1", Role: role})
		assert.NotContains(t, errs, "role")
	}
}

func TestStructNullablePointer(t *testing.T) {
	bad := -1.0
	errs := Struct(signupForm{Name: "x", Email: "a@b.co", Password: "secret1", Role: "buyer", Price: &bad})
	assert.Contains(t, errs, "price")

	good := 12.5
	errs = Struct(signupForm{Name: "x", Email: "a@b.co", Password: "secret1", Role: "buyer", Price: &good})
	assert.NotContains(t, errs, "price")
}

func TestStructNumericBounds(t *testing.T) {
	errs := Struct(signupForm{Name: "x", Email: "a@b.co", Password: "secret1", Role: "buyer", Age: 15})
	assert.Contains(t, errs, "age")
}

func TestSplitRules(t *testing.T) {
	assert.Equal(t, []string{"required", "email"}, splitRules("required,email"))
	assert.Equal(t, []string{"nullable", "in=active,sold,pending"}, splitRules("nullable,in=active,sold,pending"))
}
