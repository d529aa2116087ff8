package dto

// Option is the minimal id/display projection the dashboard selects render.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserSummary matches the owner/provider projection of the device list.
type UserSummary struct {
	ID        string  `json:"id"`
	UserName  string  `json:"userName"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

type IsgMemberSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsgNumber string `json:"isgNumber"`
}
