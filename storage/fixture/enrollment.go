package fixture

import "github.com/eduflowhq/eduflow/core/enrollment"

type enrollmentRepository struct {
	db *enrollmentTable
}

var _ enrollment.Repository = (*enrollmentRepository)(nil)

func NewEnrollmentRepository(db *DB) enrollment.Repository {
	return &enrollmentRepository{db: db.enrollment}
}

func (repo *enrollmentRepository) QueryEnrollmentsForUser(userID string) ([]enrollment.Enrollment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	enrs := make([]enrollment.Enrollment, 0, len(repo.db.rows))
	for _, enr := range repo.db.rows {
		if enr.UserID == userID {
			enrs = append(enrs, enr)
		}
	}
	return enrs, nil
}
