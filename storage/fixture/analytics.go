package fixture

import "github.com/eduflowhq/eduflow/core/analytics"

type analyticsRepository struct {
	db *analyticsTable
}

var _ analytics.Repository = (*analyticsRepository)(nil)

func NewAnalyticsRepository(db *DB) analytics.Repository {
	return &analyticsRepository{db: db.analytics}
}

func (repo *analyticsRepository) GetStats() (analytics.Stats, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.stats, nil
}
