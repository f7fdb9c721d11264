package serviceImp

import (
	"errors"
	"strings"

	"github.com/ikople24/smart-saard/entities"
	"github.com/ikople24/smart-saard/pkg/refdata/repository"
	"github.com/ikople24/smart-saard/pkg/refdata/service"
)

// chunks stay LIKE-searchable; keep them paragraph-ish, not huge
const maxChunkRunes = 800

type refSvc struct{ repo repository.RefRepository }

func New(repo repository.RefRepository) service.RefService { return &refSvc{repo: repo} }

func (s *refSvc) UpsertDocument(title, tags, text, sourceURL string) (*entities.RefDocument, int, error) {
	title = strings.TrimSpace(title)
	text = strings.TrimSpace(text)
	if title == "" {
		return nil, 0, errors.New("title is required")
	}
	if text == "" {
		return nil, 0, errors.New("text is required")
	}

	doc := &entities.RefDocument{Title: title, Tags: tags, SourceURL: sourceURL}
	if err := s.repo.CreateDoc(doc); err != nil {
		return nil, 0, err
	}

	pieces := chunkText(text)
	cs := make([]entities.RefChunk, 0, len(pieces))
	for i, p := range pieces {
		cs = append(cs, entities.RefChunk{DocID: doc.DocID, Ord: i, Text: p})
	}
	if err := s.repo.BulkInsertChunks(cs); err != nil {
		return nil, 0, err
	}
	return doc, len(cs), nil
}

// chunkText groups paragraphs up to maxChunkRunes apiece.
func chunkText(text string) []string {
	paras := strings.Split(text, "\n")
	var out []string
	var cur strings.Builder
	curLen := 0
	flush := func() {
		if curLen > 0 {
			out = append(out, strings.TrimSpace(cur.String()))
			cur.Reset()
			curLen = 0
		}
	}
	for _, p := range paras {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n := len([]rune(p))
		if curLen > 0 && curLen+n > maxChunkRunes {
			flush()
		}
		if n > maxChunkRunes {
			// oversized paragraph becomes its own chunk, split hard
			r := []rune(p)
			for len(r) > 0 {
				end := maxChunkRunes
				if end > len(r) {
					end = len(r)
				}
				out = append(out, string(r[:end]))
				r = r[end:]
			}
			continue
		}
		cur.WriteString(p)
		cur.WriteString("\n")
		curLen += n + 1
	}
	flush()
	if len(out) == 0 {
		out = []string{text}
	}
	return out
}

func (s *refSvc) Search(q string, limit int) ([]entities.RefChunk, error) {
	if limit <= 0 {
		limit = 6
	}
	return s.repo.SearchChunks(q, limit)
}

func (s *refSvc) DocsMeta(ids []uint) (map[uint]entities.RefDocument, error) {
	return s.repo.DocsByIDs(ids)
}
