// Package store persists in-progress table carts. Handlers mutate a
// cart in memory and write the whole snapshot back on every change, so
// a table can scan again mid-meal and find its cart intact.
package store

import (
	"errors"
	"sync"

	"github.com/ujjwalbarange/mesa-pos/models"
	"gorm.io/gorm"
)

// Store reads and writes the cart for one table. The table number is
// the only key; implementations must keep tables fully isolated.
type Store interface {
	Load(tableNumber string) (*models.TableCart, error)
	Save(cart *models.TableCart) error
	Clear(tableNumber string) error
}

// ---------------------------------------------
// GORM-BACKED STORE
// ---------------------------------------------

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Load returns the stored cart for the table, or a fresh empty cart
// when the table has none yet.
func (s *GormStore) Load(tableNumber string) (*models.TableCart, error) {
	var cart models.TableCart
	err := s.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Where("table_number = ?", tableNumber).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.TableCart{TableNumber: tableNumber}, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Save replaces the table's snapshot with the cart's current entries.
func (s *GormStore) Save(cart *models.TableCart) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.TableCart
		err := tx.Where("table_number = ?", cart.TableNumber).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			existing = models.TableCart{TableNumber: cart.TableNumber}
			if err := tx.Create(&existing).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", existing.CartID).
			Delete(&models.TableCartItem{}).Error; err != nil {
			return err
		}

		for i := range cart.Items {
			item := cart.Items[i]
			item.ID = 0
			item.CartID = existing.CartID
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		cart.CartID = existing.CartID
		return nil
	})
}

// Clear drops the table's cart entirely.
func (s *GormStore) Clear(tableNumber string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var cart models.TableCart
		err := tx.Where("table_number = ?", tableNumber).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cart.CartID).
			Delete(&models.TableCartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cart).Error
	})
}

// ---------------------------------------------
// IN-MEMORY STORE
// ---------------------------------------------

// MemStore keeps carts in memory. Test double for Store.
type MemStore struct {
	mu    sync.Mutex
	carts map[string][]models.TableCartItem
}

func NewMemStore() *MemStore {
	return &MemStore{carts: make(map[string][]models.TableCartItem)}
}

func (s *MemStore) Load(tableNumber string) (*models.TableCart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := &models.TableCart{TableNumber: tableNumber}
	cart.Items = append(cart.Items, s.carts[tableNumber]...)
	return cart, nil
}

func (s *MemStore) Save(cart *models.TableCart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.TableCartItem, len(cart.Items))
	copy(items, cart.Items)
	s.carts[cart.TableNumber] = items
	return nil
}

func (s *MemStore) Clear(tableNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, tableNumber)
	return nil
}
