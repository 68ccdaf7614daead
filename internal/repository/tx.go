package repository

import "gorm.io/gorm"

// TxManager runs a function inside a single database transaction. Keeping the
// transaction handle an explicit parameter (rather than ambient state) lets
// services thread it through repository calls and lets tests substitute it.
type TxManager struct {
	db *gorm.DB
}

// NewTxManager creates a transaction manager over the given connection
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction executes fn inside a transaction. Any error returned by fn
// rolls the whole transaction back.
func (m *TxManager) Transaction(fn func(tx *gorm.DB) error) error {
	return m.db.Transaction(fn)
}
