package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/ikople24/smart-saard/entities"
	"github.com/ikople24/smart-saard/pkg/refdata/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RefRepository { return &repo{db} }

func (r *repo) CreateDoc(d *entities.RefDocument) error { return r.db.Create(d).Error }

func (r *repo) BulkInsertChunks(cs []entities.RefChunk) error { return r.db.Create(&cs).Error }

func (r *repo) SearchChunks(q string, limit int) ([]entities.RefChunk, error) {
	var cs []entities.RefChunk
	err := r.db.Where("text LIKE ?", "%"+q+"%").
		Order("chunk_id ASC").Limit(limit).Find(&cs).Error
	return cs, err
}

func (r *repo) DocsByIDs(ids []uint) (map[uint]entities.RefDocument, error) {
	out := map[uint]entities.RefDocument{}
	if len(ids) == 0 {
		return out, nil
	}
	var ds []entities.RefDocument
	if err := r.db.Where("doc_id IN ?", ids).Find(&ds).Error; err != nil {
		return nil, err
	}
	for _, d := range ds {
		out[d.DocID] = d
	}
	return out, nil
}
