package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// randomHex returns n hex characters from a fresh UUID
func randomHex(n int) string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:n]
}

// uniqueSlug derives a URL-safe slug from name and resolves collisions by
// appending -1, -2, ... until an unused candidate is found. Records with
// ownID are excluded from the collision check so re-saving an existing
// record is idempotent. A name that transliterates to nothing gets a
// random 8-character hex base instead.
func uniqueSlug(tx *gorm.DB, model interface{}, ownID uint, name string) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = randomHex(8)
	}
	candidate := base
	for suffix := 1; ; suffix++ {
		query := tx.Model(model).Where("slug = ?", candidate)
		if ownID != 0 {
			query = query.Where("id <> ?", ownID)
		}
		var count int64
		if err := query.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, suffix)
	}
}

// BeforeSave assigns a unique slug derived from the product name when none
// was set explicitly.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.Slug != "" {
		return nil
	}
	s, err := uniqueSlug(tx, &Product{}, p.ID, p.Name)
	if err != nil {
		return err
	}
	p.Slug = s
	return nil
}

// BeforeSave assigns a unique slug derived from the category label when
// none was set explicitly.
func (c *ProductCategory) BeforeSave(tx *gorm.DB) error {
	if c.Slug != "" {
		return nil
	}
	s, err := uniqueSlug(tx, &ProductCategory{}, c.ID, c.Label)
	if err != nil {
		return err
	}
	c.Slug = s
	return nil
}

// BeforeSave assigns a unique slug derived from the article title when
// none was set explicitly.
func (a *ProductArticle) BeforeSave(tx *gorm.DB) error {
	if a.Slug != "" {
		return nil
	}
	s, err := uniqueSlug(tx, &ProductArticle{}, a.ID, a.Title)
	if err != nil {
		return err
	}
	a.Slug = s
	return nil
}

// saveWithSlugRetry writes the record and recovers exactly once from a slug
// uniqueness race between two concurrent creations: the chosen slug gets a
// random 6-character hex suffix and the write is retried. A second
// conflict propagates; that needs operator attention.
func saveWithSlugRetry(db *gorm.DB, value interface{}, slugField *string) error {
	if err := db.Save(value).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		*slugField = fmt.Sprintf("%s-%s", *slugField, randomHex(6))
		return db.Save(value).Error
	}
	return nil
}

// SaveProduct persists the product, assigning a slug if needed
func SaveProduct(db *gorm.DB, p *Product) error {
	return saveWithSlugRetry(db, p, &p.Slug)
}

// SaveProductCategory persists the category, assigning a slug if needed
func SaveProductCategory(db *gorm.DB, c *ProductCategory) error {
	return saveWithSlugRetry(db, c, &c.Slug)
}

// SaveProductArticle persists the article, assigning a slug if needed
func SaveProductArticle(db *gorm.DB, a *ProductArticle) error {
	return saveWithSlugRetry(db, a, &a.Slug)
}
