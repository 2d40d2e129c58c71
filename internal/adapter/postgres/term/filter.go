package term

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

const (
	sortByTitle     = "title"
	sortByCreatedAt = "created_at"
	sortByUpdatedAt = "updated_at"

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// orderBy returns the ORDER BY clause for f, defaulting to newest first.
func orderBy(f domain.TermFilter) string {
	col := sortByCreatedAt
	switch f.SortBy {
	case sortByTitle, sortByCreatedAt, sortByUpdatedAt:
		col = f.SortBy
	}

	dir := sortOrderDESC
	if strings.EqualFold(f.SortOrder, sortOrderASC) {
		dir = sortOrderASC
	}
	if col == sortByTitle {
		return "lower(t.title) " + dir + ", t.id"
	}
	return "t." + col + " " + dir + ", t.id"
}

// applyFilter adds the WHERE conditions of f to b.
func applyFilter(b sq.SelectBuilder, f domain.TermFilter) sq.SelectBuilder {
	if f.Search != nil {
		if s := strings.TrimSpace(*f.Search); s != "" {
			pattern := "%" + escapeLike(s) + "%"
			b = b.Where(sq.Or{
				sq.ILike{"t.title": pattern},
				sq.ILike{"t.definition": pattern},
			})
		}
	}
	if f.CategoryID != nil {
		b = b.Where(sq.Eq{"t.category_id": *f.CategoryID})
	}
	if f.Status != nil {
		b = b.Where(sq.Eq{"t.status": string(*f.Status)})
	}
	if f.AuthorID != nil {
		b = b.Where(sq.Eq{"t.author_id": *f.AuthorID})
	}

	if !f.Privileged {
		published := sq.Eq{"t.status": string(domain.TermStatusPublished)}
		if f.ViewerID != nil {
			b = b.Where(sq.Or{published, sq.Eq{"t.author_id": *f.ViewerID}})
		} else {
			b = b.Where(published)
		}
	}
	return b
}

// escapeLike escapes LIKE wildcards in user input.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
