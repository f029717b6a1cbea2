package mysql

import (
	"gorm.io/gorm"

	"fieldsight-backend/internal/listing"
)

// applyQuery translates a normalized listing.Query into gorm clauses:
// the owner restriction for own-scoped reads, one WHERE per predicate,
// and the fixed newest-first order every list view shares.
func applyQuery(db *gorm.DB, q listing.Query) *gorm.DB {
	if q.Scope == listing.ScopeOwn {
		db = db.Where("created_by = ?", q.OwnerID)
	}
	for _, p := range q.Predicates {
		switch p.Op {
		case listing.OpEq:
			db = db.Where(p.Column+" = ?", p.Value)
		case listing.OpGte:
			db = db.Where(p.Column+" >= ?", p.Value)
		case listing.OpLte:
			db = db.Where(p.Column+" <= ?", p.Value)
		}
	}
	return db.Order("created_at DESC, id DESC")
}
