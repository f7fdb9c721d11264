package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/ikople24/smart-saard/entities"
	"github.com/ikople24/smart-saard/pkg/parcel/repository"
)

type parcelRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ParcelRepository { return &parcelRepo{db} }

func (r *parcelRepo) Create(p *entities.Parcel) error { return r.db.Create(p).Error }

func (r *parcelRepo) Update(p *entities.Parcel) error { return r.db.Save(p).Error }

func (r *parcelRepo) FindByID(id uint) (*entities.Parcel, error) {
	var p entities.Parcel
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *parcelRepo) FindByCode(code string) (*entities.Parcel, error) {
	var p entities.Parcel
	if err := r.db.Where("parcel_code = ?", code).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *parcelRepo) List(f repository.ListFilter) ([]entities.Parcel, int64, error) {
	q := r.db.Model(&entities.Parcel{})
	if f.Province != "" {
		q = q.Where("province = ?", f.Province)
	}
	if f.District != "" {
		q = q.Where("district = ?", f.District)
	}
	if f.Category != "" {
		// survey_json is canonical, so the quoted key only appears when selected
		q = q.Where("survey_json LIKE ?", "%\""+f.Category+"\"%")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	var out []entities.Parcel
	if err := q.Order("parcel_code asc").Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *parcelRepo) All() ([]entities.Parcel, error) {
	var out []entities.Parcel
	return out, r.db.Order("parcel_code asc").Find(&out).Error
}

func (r *parcelRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Parcel{}, id).Error
}
