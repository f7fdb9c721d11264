package service

import "github.com/ikople24/smart-saard/entities"

type RefService interface {
	UpsertDocument(title, tags, text, sourceURL string) (*entities.RefDocument, int, error)
	Search(q string, limit int) ([]entities.RefChunk, error)
	DocsMeta(ids []uint) (map[uint]entities.RefDocument, error)
}
