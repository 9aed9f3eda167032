package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blugelabs/bluge"

	"elective-hub/domain"
)

// CatalogService maintains a full-text index over elective and subject
// names. It sits entirely outside the realtime path; the roster CLI is
// its only caller.
type CatalogService struct {
	log    *slog.Logger
	writer *bluge.Writer
}

type CatalogHit struct {
	ID   string
	Kind string
	Name string
}

func NewCatalogService(log *slog.Logger, writer *bluge.Writer) *CatalogService {
	return &CatalogService{log: log, writer: writer}
}

// Index replaces the catalog entries for the given roster in one batch.
func (c *CatalogService) Index(electives []domain.Elective, subjects []domain.Subject) error {
	batch := bluge.NewBatch()
	for _, e := range electives {
		doc := bluge.NewDocument(fmt.Sprintf("elective:%d", e.ID)).
			AddField(bluge.NewTextField("name", e.Name).StoreValue()).
			AddField(bluge.NewKeywordField("kind", "elective").StoreValue())
		batch.Update(doc.ID(), doc)
	}
	for _, s := range subjects {
		doc := bluge.NewDocument(fmt.Sprintf("subject:%d", s.ID)).
			AddField(bluge.NewTextField("name", s.Name).StoreValue()).
			AddField(bluge.NewKeywordField("kind", "subject").StoreValue())
		batch.Update(doc.ID(), doc)
	}
	if err := c.writer.Batch(batch); err != nil {
		return fmt.Errorf("index catalog: %w", err)
	}
	c.log.Info("Catalog indexed", "electives", len(electives), "subjects", len(subjects))
	return nil
}

// Search matches the query against catalog names and returns up to
// limit hits.
func (c *CatalogService) Search(ctx context.Context, query string, limit int) ([]CatalogHit, error) {
	reader, err := c.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("open catalog reader: %w", err)
	}
	defer reader.Close()

	match := bluge.NewMatchQuery(query).SetField("name")
	request := bluge.NewTopNSearch(limit, match)

	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("search catalog: %w", err)
	}

	var hits []CatalogHit
	for {
		next, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if next == nil {
			break
		}
		var hit CatalogHit
		err = next.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.ID = string(value)
			case "kind":
				hit.Kind = string(value)
			case "name":
				hit.Name = string(value)
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		hits = append(hits, hit)
	}
	return hits, nil
}
