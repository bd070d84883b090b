// spotlight/sources/psql/dao/dao.go
package dao

import (
	"fmt"
	"strings"

	"spotlight/spotlight/types"

	"gorm.io/gorm"
)

const likeEscape = `\`

// containsPattern turns a free-text term into a LIKE pattern, folding case with fold.
func containsPattern(term string, fold func(string) string) string {
	r := strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")
	return "%" + r.Replace(fold(term)) + "%"
}

const innovationNameLike = "LOWER(innovation_name) LIKE ? ESCAPE '" + likeEscape + "'"

// nameContains filters q to rows whose innovation name contains term, ignoring case.
// SQLite's LOWER only folds ASCII, so the term is folded the same way there;
// non-ASCII letters then match only in their stored case.
func nameContains(q *gorm.DB, term string) *gorm.DB {
	fold := strings.ToLower
	if q.Dialector != nil && q.Dialector.Name() == "sqlite" {
		fold = asciiLower
	}
	return q.Where(innovationNameLike, containsPattern(term, fold))
}

func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

func storeErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", types.ErrStore, err)
}
