// Package repository implements the persistence interfaces on gorm.
package repository

import (
	"errors"

	"github.com/geldtransfer/backoffice/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts gorm errors into domain errors so that
// storage concerns never leak past this layer. The error chain is walked
// because gorm wraps driver errors.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}
	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		switch {
		case errors.Is(cur, gorm.ErrRecordNotFound):
			return domain.ErrNotFound
		case errors.Is(cur, gorm.ErrDuplicatedKey):
			return domain.ErrUsernameTaken
		}
	}
	return err
}
