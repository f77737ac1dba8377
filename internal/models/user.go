package models

import "strings"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type UnknownUser struct {
	Login    *string `json:"login"`
	Password *string `json:"password"`
	Name     string  `json:"name,omitempty"`
	Phone    string  `json:"phone,omitempty"`
}

type Address struct {
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	FacilityName string `json:"pgName"`
	RoomNumber   string `json:"roomNumber"`
}

// Line joins the postal part of the address, skipping empty parts.
func (a Address) Line() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Street, a.City, a.State, a.ZipCode} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

type Profile struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
}

type User struct {
	ID    string `json:"id"`
	Login string `json:"login"`
	Hash  string `json:"-"`
	Role  Role   `json:"role"`
	Profile
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
