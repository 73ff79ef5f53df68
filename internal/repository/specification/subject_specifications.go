package specification

import "gorm.io/gorm"

// ByNormalizedName matches the derived lookup key exactly. The key must
// already be normalized (textnorm.Key); no folding happens at query time.
type ByNormalizedName struct {
	Key string
}

func (s ByNormalizedName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("normalized_name = ?", s.Key)
}
