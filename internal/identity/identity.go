// Package identity generates fake student identities for test data.
// Every draw comes from an injected random.Source; nothing is stored.
package identity

// Gender is the single-letter gender code of a generated identity.
type Gender string

const (
	Male   Gender = "M"
	Female Gender = "F"
)

// Identity holds a generated name.
type Identity struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Gender    Gender `json:"gender"`
}

// Student is an identity with a birth date and university email.
type Student struct {
	Identity
	BirthDate  string `json:"birth_date"`
	Email      string `json:"email"`
	University string `json:"university"`
}
