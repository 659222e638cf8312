package repositories

import (
	"github.com/saokiritoni/HomePage-BE/db"
	"gorm.io/gorm"
)

// TxRepo opens one transactional unit of work. Repositories whose methods
// take a *gorm.DB run inside whatever transaction the caller passes in.
type TxRepo interface {
	Transaction(fn func(tx *gorm.DB) error) error
}

type DBTxRepo struct{}

func (r *DBTxRepo) Transaction(fn func(tx *gorm.DB) error) error {
	return db.DB.Transaction(fn)
}
