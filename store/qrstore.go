package store

import (
	"errors"
	"sync"

	"github.com/ujjwalbarange/mesa-pos/models"
	"gorm.io/gorm"
)

// ErrPosterNotFound is returned when a poster id has no record.
var ErrPosterNotFound = errors.New("qr poster not found")

// QRStore records the printable table QR posters staff upload. The
// poster files themselves live on disk under the upload dir; the store
// holds the table mapping and public URL.
type QRStore interface {
	Save(poster *models.QRPoster) error
	List() ([]models.QRPoster, error)
	Find(id uint) (*models.QRPoster, error)
	Delete(id uint) error
}

// GormQRStore keeps poster records in Postgres.
type GormQRStore struct {
	db *gorm.DB
}

func NewGormQRStore(db *gorm.DB) *GormQRStore {
	return &GormQRStore{db: db}
}

func (s *GormQRStore) Save(poster *models.QRPoster) error {
	return s.db.Create(poster).Error
}

// List returns all posters, newest first.
func (s *GormQRStore) List() ([]models.QRPoster, error) {
	var posters []models.QRPoster
	if err := s.db.Order("created_at DESC").Find(&posters).Error; err != nil {
		return nil, err
	}
	return posters, nil
}

func (s *GormQRStore) Find(id uint) (*models.QRPoster, error) {
	var poster models.QRPoster
	if err := s.db.First(&poster, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPosterNotFound
		}
		return nil, err
	}
	return &poster, nil
}

func (s *GormQRStore) Delete(id uint) error {
	return s.db.Delete(&models.QRPoster{}, id).Error
}

// MemQRStore is the test double for QRStore.
type MemQRStore struct {
	mu      sync.Mutex
	nextID  uint
	posters []models.QRPoster
}

func NewMemQRStore() *MemQRStore {
	return &MemQRStore{}
}

func (s *MemQRStore) Save(poster *models.QRPoster) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	poster.ID = s.nextID
	s.posters = append(s.posters, *poster)
	return nil
}

func (s *MemQRStore) List() ([]models.QRPoster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.QRPoster, 0, len(s.posters))
	for i := len(s.posters) - 1; i >= 0; i-- {
		out = append(out, s.posters[i])
	}
	return out, nil
}

func (s *MemQRStore) Find(id uint) (*models.QRPoster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posters {
		if s.posters[i].ID == id {
			poster := s.posters[i]
			return &poster, nil
		}
	}
	return nil, ErrPosterNotFound
}

func (s *MemQRStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.posters[:0]
	for _, poster := range s.posters {
		if poster.ID != id {
			kept = append(kept, poster)
		}
	}
	s.posters = kept
	return nil
}
