package space

// Space - storage space record. ID doubles as the primary key and the
// human-entered label, clients normalize it on their side.
type Space struct {
	ID    string `json:"id"`
	Image string `json:"image"`
	Alt   string `json:"alt"`
}

// Patch carries partial updates. Nil fields are left untouched.
type Patch struct {
	Image *string
	Alt   *string
}
