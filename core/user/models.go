package user

// Roles
const (
	RoleAdmin          = "admin"
	RoleInstructor     = "instructor"
	RoleStudent        = "student"
	RoleContentCreator = "content_creator"
)

var AllRoles = []string{RoleAdmin, RoleInstructor, RoleStudent, RoleContentCreator}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User is an account known to the app: either a seed (demo) user shipped with
// the fixture dataset or a locally registered one.
//
// Password holds the stored credential of a registered user, in whatever form
// the active PasswordScheme produced; seed users carry none. CreatedAt is kept
// as a date string to stay compatible with the persisted storage layout.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Password  string `json:"password,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func (u User) IsAdmin() bool          { return u.Role == RoleAdmin }
func (u User) IsInstructor() bool     { return u.Role == RoleInstructor }
func (u User) IsStudent() bool        { return u.Role == RoleStudent }
func (u User) IsContentCreator() bool { return u.Role == RoleContentCreator }

// Sanitized returns a copy of the user with the stored credential stripped.
// Session identity is only ever exposed (and persisted) in this form.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// Directory is read-only access to the seed user pool. A real user backend
// can implement it later without touching the session logic.
type Directory interface {
	GetUserByEmail(email string) (User, error)
	QueryAllUsers() ([]User, error)
}
