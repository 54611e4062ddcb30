package domain

type User struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

// UsersResponse is the paged directory document.
type UsersResponse struct {
	Pages []UsersPage `json:"pages"`
}

type UsersPage struct {
	Users []User `json:"users"`
}
