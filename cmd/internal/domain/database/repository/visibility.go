package repository

import (
	"jobboard/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

// Visible applies the view to a query. Anything other than AllView
// filters soft deleted rows out.
func Visible(tx *gorm.DB, view entity.View) *gorm.DB {
	if view == entity.AllView {
		return tx
	}
	return tx.Where("is_deleted = ?", false)
}
