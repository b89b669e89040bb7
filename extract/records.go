// Package extract pattern-matches domain fields out of acquired document
// text. Extraction never fails: a field whose pattern does not match is
// simply nil, and the absence of one field never blocks another.
package extract

// ClientRecord holds the fields read from one carte vitale attestation.
// Optional fields are nil when their pattern did not match and serialize
// as JSON null.
type ClientRecord struct {
	File         string  `json:"file"`
	ClientName   *string `json:"client_name"`
	ClientNumber *string `json:"client_number"`
}

// OrdonnanceRecord holds the fields read from one eyeglass prescription.
// Title, FullName and Birthdate come from a single pattern and are
// populated together or not at all; the eye values are independent.
type OrdonnanceRecord struct {
	File      string  `json:"file"`
	Title     *string `json:"title"`
	FullName  *string `json:"full_name"`
	Birthdate *string `json:"birthdate"`
	EyeRight  *string `json:"eye_right"`
	EyeLeft   *string `json:"eye_left"`
}
