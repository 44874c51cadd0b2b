package fixture

import "github.com/eduflowhq/eduflow/core/announcement"

type announcementRepository struct {
	db *announcementTable
}

var _ announcement.Repository = (*announcementRepository)(nil)

func NewAnnouncementRepository(db *DB) announcement.Repository {
	return &announcementRepository{db: db.announcement}
}

func (repo *announcementRepository) QueryAllAnnouncements() ([]announcement.Announcement, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	anns := make([]announcement.Announcement, len(repo.db.rows))
	copy(anns, repo.db.rows)
	return anns, nil
}
