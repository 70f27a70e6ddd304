//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=../mocks/mock_library.go -package=mocks
// Package library provides full text search over the medical reference
// articles. One document per tumor label, indexed at startup; the
// notification sink re-touches the article for a label whenever a
// prediction names it.
package library

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/blugelabs/bluge"

	"neuroview/content"
	"neuroview/domain"
	"neuroview/domain/event"
	"neuroview/notify"
)

type Hit struct {
	Label   domain.TumorLabel
	Title   string
	Snippet string
	Score   float64
}

type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]Hit, error)
}

type Index struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewIndex(writer *bluge.Writer, log *slog.Logger) *Index {
	return &Index{writer: writer, log: log}
}

func bundleDocument(label domain.TumorLabel) *bluge.Document {
	bundle := content.Resolve(string(label))
	return bluge.NewDocument(string(label)).
		AddField(bluge.NewTextField("title", bundle.Name).StoreValue()).
		AddField(bluge.NewTextField("about", bundle.AboutResult).StoreValue()).
		AddField(bluge.NewTextField("symptoms", strings.Join(bundle.Symptoms, " "))).
		AddField(bluge.NewTextField("specialists", strings.Join(bundle.Specialists, " "))).
		AddField(bluge.NewTextField("lifestyle", strings.Join(bundle.Lifestyle, " "))).
		AddField(bluge.NewTextField("monitoring", strings.Join(bundle.Monitoring, " ")))
}

// IndexBundles writes one document per known label. Calling it again
// updates in place, so startup can run it unconditionally.
func (i *Index) IndexBundles() error {
	for _, label := range domain.KnownLabels {
		doc := bundleDocument(label)
		if err := i.writer.Update(doc.ID(), doc); err != nil {
			return fmt.Errorf("indexing %s: %w", label, err)
		}
	}
	i.log.Info("Reference articles indexed", "count", len(domain.KnownLabels))
	return nil
}

// Search matches the query against every indexed field and returns up
// to limit hits ordered by score. An empty query returns no hits.
func (i *Index) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	union := bluge.NewBooleanQuery()
	for _, field := range []string{"title", "about", "symptoms", "specialists", "lifestyle", "monitoring"} {
		union.AddShould(bluge.NewMatchQuery(query).SetField(field))
	}

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, union))
	if err != nil {
		return nil, err
	}

	var hits []Hit
	match, err := iterator.Next()
	for err == nil && match != nil {
		hit := Hit{Score: match.Score}
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.Label = domain.TumorLabel(value)
			case "title":
				hit.Title = string(value)
			case "about":
				hit.Snippet = snippet(string(value))
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		hits = append(hits, hit)
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, err
	}
	return hits, nil
}

// snippet keeps the first sentence, or the first 160 runes when the
// text has no period early enough.
func snippet(text string) string {
	if idx := strings.Index(text, ". "); idx >= 0 && idx < 160 {
		return text[:idx+1]
	}
	runes := []rune(text)
	if len(runes) <= 160 {
		return text
	}
	return string(runes[:160]) + "…"
}

// IndexingSink refreshes the article for a label each time a valid
// prediction names it. Unknown labels resolve to the fallback article.
func IndexingSink(index *Index) notify.Sink {
	return notify.SinkFunc(func(_ context.Context, e event.DomainEvent) error {
		received, ok := e.(event.PredictionReceived)
		if !ok || received.Response == nil || received.Response.TopPrediction == nil {
			return nil
		}
		doc := bundleDocument(domain.TumorLabel(received.Response.TopPrediction.Label))
		return index.writer.Update(doc.ID(), doc)
	})
}
