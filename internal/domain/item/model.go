package item

// Item - stored product record. Timestamps come from clients as opaque
// strings and are stored verbatim.
type Item struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Desc          string   `json:"desc"`
	Box           string   `json:"box"`
	ParentID      string   `json:"parentId,omitempty"`
	Image         string   `json:"image,omitempty"`
	Collaborators []string `json:"collaborators,omitempty"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	UpdatedAt     string   `json:"updatedAt,omitempty"`
}

// Patch carries partial updates. Nil fields are left untouched.
type Patch struct {
	Name          *string
	Desc          *string
	Box           *string
	ParentID      *string
	Image         *string
	Collaborators *[]string
	UpdatedAt     *string
}
