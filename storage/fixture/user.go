package fixture

import "github.com/eduflowhq/eduflow/core/user"

type userDirectory struct {
	db *userTable
}

var _ user.Directory = (*userDirectory)(nil) // interface compliance check

func NewUserDirectory(db *DB) user.Directory {
	return &userDirectory{db: db.user}
}

func (repo *userDirectory) GetUserByEmail(email string) (user.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	// exact, case-sensitive match as stored
	for _, usr := range repo.db.rows {
		if usr.Email == email {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userDirectory) QueryAllUsers() ([]user.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	users := make([]user.User, len(repo.db.rows))
	copy(users, repo.db.rows)
	return users, nil
}
