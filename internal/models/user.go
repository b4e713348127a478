package models

// UserRole enumerates the roles a user account may hold.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
	RoleStaff   UserRole = "staff"
)

// User represents an application account. Password holds a bcrypt hash and is never serialised.
type User struct {
	ID       int64    `db:"id" json:"id"`
	Username string   `db:"username" json:"username"`
	Password string   `db:"password" json:"-"`
	Role     UserRole `db:"role" json:"role"`
	FullName string   `db:"full_name" json:"fullName"`
	Email    string   `db:"email" json:"email"`
	Avatar   string   `db:"avatar" json:"avatar"`
}

// UserInfo is the reduced projection returned by login.
type UserInfo struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
	FullName string   `json:"fullName"`
	Avatar   string   `json:"avatar"`
}

// Info projects the user into the login response shape.
func (u User) Info() UserInfo {
	return UserInfo{ID: u.ID, Username: u.Username, Role: u.Role, FullName: u.FullName, Avatar: u.Avatar}
}
