package repository

import "github.com/ikople24/smart-saard/entities"

type RefRepository interface {
	CreateDoc(d *entities.RefDocument) error
	BulkInsertChunks(cs []entities.RefChunk) error
	SearchChunks(q string, limit int) ([]entities.RefChunk, error)
	DocsByIDs(ids []uint) (map[uint]entities.RefDocument, error)
}
