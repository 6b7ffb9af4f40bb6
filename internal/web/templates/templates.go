// Package templates renders the server-side HTML pages from embedded
// template files.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/asvnatz/strafenkasse/internal/model"
)

//go:embed *.html
var files embed.FS

var funcs = template.FuncMap{
	"euro": func(amount float64) string {
		return fmt.Sprintf("%.2f €", amount)
	},
	"date": func(t time.Time) string {
		return t.Format("02.01.2006")
	},
	// isodate also accepts *time.Time, the filter fields are optional
	"isodate": func(v any) string {
		switch t := v.(type) {
		case time.Time:
			return t.Format("2006-01-02")
		case *time.Time:
			if t == nil {
				return ""
			}
			return t.Format("2006-01-02")
		default:
			return ""
		}
	},
}

var pages = template.Must(template.New("").Funcs(funcs).ParseFS(files, "*.html"))

// FlashMessage is a one-shot notice shown at the top of the next page.
type FlashMessage struct {
	Type    string // "success", "error" or "info"
	Message string
}

// PageData is the part of the view model every page shares.
type PageData struct {
	Title   string
	Session *model.Session
	Flash   *FlashMessage
}

// IsTreasurer reports whether the current session may write.
func (d PageData) IsTreasurer() bool {
	return d.Session != nil && d.Session.IsTreasurer()
}

// LoginData backs the login page.
type LoginData struct {
	PageData
}

// DashboardData backs the dashboard page.
type DashboardData struct {
	PageData
	Report model.DashboardReport
}

// PenaltiesData backs the ledger listing page.
type PenaltiesData struct {
	PageData
	Entries []model.PenaltyEntry
	Players []model.Player
	Types   []model.PenaltyType
	Filter  model.PenaltyFilter
	Total   float64
	Today   time.Time
}

// StatisticsData backs the statistics page.
type StatisticsData struct {
	PageData
	Report model.StatisticsReport
}

// PlayersData backs the player management page.
type PlayersData struct {
	PageData
	Players []model.Player
}

// PenaltyTypesData backs the penalty catalogue page.
type PenaltyTypesData struct {
	PageData
	Types []model.PenaltyType
}

// ExportData backs the export page.
type ExportData struct {
	PageData
	EntryCount int
	Preview    []model.PenaltyEntry
}

// Render writes the named page template.
func Render(w io.Writer, name string, data any) error {
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
