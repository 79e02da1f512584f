// Package validate provides struct-tag validation for request bodies.
//
// Rules are comma-separated in the `validate` tag:
//
//	required            field must not be zero/empty
//	nullable            if empty (or a nil pointer), skip remaining rules
//	email               valid email address
//	numeric             any number
//	min=N               string: min char length | number: min value
//	max=N               string: max char length | number: max value
//	gt=N  / gte=N       number > N / >= N
//	lt=N  / lte=N       number < N / <= N
//	in=a,b,c            value must be one of the listed items
//
// Pointer fields are dereferenced before rules run, so optional patch fields
// validate naturally with `nullable`.
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Struct validates all exported fields of v carrying a `validate` tag.
// Returns fieldName → message; an empty map means no errors. Field names in
// the map come from the json tag when present.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		value := deref(rv.Field(i))
		rules := splitRules(tag)

		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			rule = strings.TrimSpace(rule)
			if rule == "" || rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, name, value); msg != "" {
				errs[name] = msg
				break // first failing rule per field
			}
		}
	}

	return errs
}

// HasErrors reports whether the map holds any validation failures.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

func applyRule(rule, field string, v reflect.Value) string {
	raw := stringValue(v)
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}
	case "email":
		if !emailRE.MatchString(raw) {
			return fmt.Sprintf("The %s must be a valid email address.", field)
		}
	case "numeric":
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Sprintf("The %s field must be a number.", field)
		}
	case "min":
		n := mustParseFloat(param)
		if isNumericKind(v) {
			if toFloat(v) < n {
				return fmt.Sprintf("The %s must be at least %s.", field, param)
			}
		} else if float64(len([]rune(raw))) < n {
			return fmt.Sprintf("The %s must be at least %s characters.", field, param)
		}
	case "max":
		n := mustParseFloat(param)
		if isNumericKind(v) {
			if toFloat(v) > n {
				return fmt.Sprintf("The %s must not be greater than %s.", field, param)
			}
		} else if float64(len([]rune(raw))) > n {
			return fmt.Sprintf("The %s must not exceed %s characters.", field, param)
		}
	case "gt":
		if toFloat(v) <= mustParseFloat(param) {
			return fmt.Sprintf("The %s must be greater than %s.", field, param)
		}
	case "gte":
		if toFloat(v) < mustParseFloat(param) {
			return fmt.Sprintf("The %s must be greater than or equal to %s.", field, param)
		}
	case "lt":
		if toFloat(v) >= mustParseFloat(param) {
			return fmt.Sprintf("The %s must be less than %s.", field, param)
		}
	case "lte":
		if toFloat(v) > mustParseFloat(param) {
			return fmt.Sprintf("The %s must be less than or equal to %s.", field, param)
		}
	case "in":
		for _, a := range strings.Split(param, ",") {
			if raw == strings.TrimSpace(a) {
				return ""
			}
		}
		return fmt.Sprintf("The selected %s is invalid.", field)
	}
	return ""
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonFieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return strings.ToLower(f.Name)
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return strings.ToLower(f.Name)
	}
	return name
}

// splitRules tokenises a validate tag. The in= rule swallows the rest of
// the tag, since its allowed values are themselves comma-separated.
func splitRules(tag string) []string {
	var rules []string
	rest := tag
	for rest != "" {
		if strings.HasPrefix(rest, "in=") {
			rules = append(rules, rest)
			break
		}
		var tok string
		tok, rest, _ = strings.Cut(rest, ",")
		rules = append(rules, tok)
	}
	return rules
}

func hasRule(rules []string, want string) bool {
	for _, r := range rules {
		if strings.TrimSpace(r) == want {
			return true
		}
	}
	return false
}

// deref unwraps pointers; a nil pointer yields an invalid Value treated as
// empty everywhere.
func deref(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isEmpty(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Bool:
		return false // a set bool is never "missing"
	default:
		return v.IsZero()
	}
}

func isNumericKind(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	if !v.IsValid() {
		return 0
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	default:
		f, _ := strconv.ParseFloat(stringValue(v), 64)
		return f
	}
}

func stringValue(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}
	return fmt.Sprintf("%v", v.Interface())
}

func mustParseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}
