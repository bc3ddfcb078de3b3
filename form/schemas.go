package form

import "strings"

type FieldKind int

const (
	Text FieldKind = iota
	Email
	Phone
	Number
	Multiline
	Secret
)

// Field describes one input of a form schema: what to label it, how to edit
// it, and which rules gate submission. One schema drives both rendering and
// validation, so there is a single form widget instead of a hand-built
// modal per entity.
type Field struct {
	Key   string
	Label string
	Kind  FieldKind
	Rules []Rule
}

// normalized applies per-kind input cleanup before rules run. Phones are
// matched with spaces stripped, like the web client does.
func (f Field) normalized(value string) string {
	if f.Kind == Phone {
		return strings.ReplaceAll(value, " ", "")
	}
	return value
}

// CustomerFields is the create/edit schema for customer records.
func CustomerFields() []Field {
	return []Field{
		{Key: "name", Label: "Full name", Kind: Text, Rules: []Rule{
			{Kind: Required},
			{Kind: MinLength, Length: 2},
			{Kind: MaxLength, Length: 100},
		}},
		{Key: "email", Label: "Email", Kind: Email, Rules: []Rule{
			{Kind: Required},
			{Kind: Pattern, Pattern: EmailPattern, Message: "Email is not valid"},
		}},
		{Key: "phone", Label: "Phone", Kind: Phone, Rules: []Rule{
			{Kind: Required},
			{Kind: Pattern, Pattern: PhonePattern, Message: "Phone is not valid (e.g. +84813600380 or 0813600380)"},
		}},
		{Key: "address", Label: "Address", Kind: Text, Rules: []Rule{
			{Kind: MaxLength, Length: 255},
		}},
	}
}

// PartFields is the create/edit schema for part records, including the
// stock bounds cross-check.
func PartFields() []Field {
	return []Field{
		{Key: "partName", Label: "Part name", Kind: Text, Rules: []Rule{
			{Kind: Required},
			{Kind: MaxLength, Length: 100},
		}},
		{Key: "partNumber", Label: "Part number", Kind: Text, Rules: []Rule{
			{Kind: Required},
			{Kind: MaxLength, Length: 50},
		}},
		{Key: "manufacturer", Label: "Manufacturer", Kind: Text, Rules: []Rule{
			{Kind: MaxLength, Length: 100},
		}},
		{Key: "price", Label: "Price", Kind: Number, Rules: []Rule{
			{Kind: NumericRange, Min: 0, Message: "Price cannot be negative"},
		}},
		{Key: "stock", Label: "Stock", Kind: Number, Rules: []Rule{
			{Kind: NumericRange, Min: 0, Message: "Stock cannot be negative"},
		}},
		{Key: "minStock", Label: "Min stock", Kind: Number, Rules: []Rule{
			{Kind: NumericRange, Min: 0, Message: "Min stock cannot be negative"},
		}},
		{Key: "maxStock", Label: "Max stock", Kind: Number, Rules: []Rule{
			{Kind: NumericRange, Min: 0, Message: "Max stock cannot be negative"},
			{Kind: CrossField, Other: "minStock",
				Holds:   func(max, min float64) bool { return max >= min },
				Message: "Max stock must be greater than or equal to min stock"},
		}},
		{Key: "warrantyMonths", Label: "Warranty (months)", Kind: Number, Rules: []Rule{
			{Kind: NumericRange, Min: 0, Max: 120, HasMax: true},
		}},
	}
}

// ClaimFields is the create schema for warranty claims filed by customers.
func ClaimFields() []Field {
	return []Field{
		{Key: "vehicleVin", Label: "Vehicle VIN", Kind: Text, Rules: []Rule{
			{Kind: Required},
			{Kind: Pattern, Pattern: VINPattern, Message: "VIN must be 17 characters (no I, O or Q)"},
		}},
		{Key: "description", Label: "Description", Kind: Multiline, Rules: []Rule{
			{Kind: Required},
			{Kind: MinLength, Length: 10},
			{Kind: MaxLength, Length: 2000},
		}},
	}
}

// FeedbackFields is the schema for claim feedback.
func FeedbackFields() []Field {
	return []Field{
		{Key: "rating", Label: "Rating", Kind: Number, Rules: []Rule{
			{Kind: Required},
			{Kind: NumericRange, Min: 1, Max: 5, HasMax: true, Message: "Rating must be between 1 and 5"},
		}},
		{Key: "comment", Label: "Comment", Kind: Multiline, Rules: []Rule{
			{Kind: MaxLength, Length: 1000},
		}},
	}
}

// LoginFields gates the login form.
func LoginFields() []Field {
	return []Field{
		{Key: "username", Label: "Username", Kind: Text, Rules: []Rule{
			{Kind: Required},
		}},
		{Key: "password", Label: "Password", Kind: Secret, Rules: []Rule{
			{Kind: Required},
		}},
	}
}

// RegisterFields is the account sign-up schema.
func RegisterFields() []Field {
	return []Field{
		{Key: "username", Label: "Username", Kind: Text, Rules: []Rule{
			{Kind: Required},
			{Kind: MinLength, Length: 3},
			{Kind: MaxLength, Length: 50},
		}},
		{Key: "password", Label: "Password", Kind: Secret, Rules: []Rule{
			{Kind: Required},
			{Kind: MinLength, Length: 6},
		}},
		{Key: "name", Label: "Full name", Kind: Text, Rules: []Rule{
			{Kind: Required},
			{Kind: MinLength, Length: 2},
			{Kind: MaxLength, Length: 100},
		}},
		{Key: "email", Label: "Email", Kind: Email, Rules: []Rule{
			{Kind: Required},
			{Kind: Pattern, Pattern: EmailPattern, Message: "Email is not valid"},
		}},
		{Key: "phone", Label: "Phone", Kind: Phone, Rules: []Rule{
			{Kind: Required},
			{Kind: Pattern, Pattern: PhonePattern, Message: "Phone is not valid (e.g. +84813600380 or 0813600380)"},
		}},
	}
}

// ForgotPasswordFields asks only for the account email.
func ForgotPasswordFields() []Field {
	return []Field{
		{Key: "email", Label: "Email", Kind: Email, Rules: []Rule{
			{Kind: Required},
			{Kind: Pattern, Pattern: EmailPattern, Message: "Email is not valid"},
		}},
	}
}

// ResetPasswordFields takes the emailed token and the replacement password.
func ResetPasswordFields() []Field {
	return []Field{
		{Key: "token", Label: "Reset token", Kind: Text, Rules: []Rule{
			{Kind: Required},
		}},
		{Key: "newPassword", Label: "New password", Kind: Secret, Rules: []Rule{
			{Kind: Required},
			{Kind: MinLength, Length: 6},
		}},
	}
}
