package repository

import "github.com/ikople24/smart-saard/entities"

type ListFilter struct {
	Province string
	District string
	Category string // matches parcels whose survey selects this category
	Limit    int
	Offset   int
}

type ParcelRepository interface {
	Create(p *entities.Parcel) error
	Update(p *entities.Parcel) error
	FindByID(id uint) (*entities.Parcel, error)
	FindByCode(code string) (*entities.Parcel, error)
	List(f ListFilter) ([]entities.Parcel, int64, error)
	All() ([]entities.Parcel, error)
	Delete(id uint) error
}
