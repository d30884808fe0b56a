package web

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// TV renders the big-screen leaderboard. The page reloads itself to pick up new
// results; there is no push channel.
func TV(state DisplayState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		refresh := state.RefreshSecond
		if refresh <= 0 {
			refresh = 5
		}
		b.WriteString(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <meta http-equiv="refresh" content="` + itoa(refresh) + `"/>
    <title>Tournament ` + templ.EscapeString(state.Date) + `</title>
  </head>
  <body class="tv">
    <header>
      <h1>Leaderboard</h1>
      <p class="date">` + templ.EscapeString(state.Date) + ` · ` + itoa(state.RoundsPlayed) + ` rounds played</p>
    </header>
    <section class="standings">
`)
		if len(state.Standings) == 0 {
			b.WriteString(`      <p class="empty">No players yet.</p>
`)
		}
		for _, row := range state.Standings {
			b.WriteString(`      <div class="standing ` + medalClass(row.Rank) + `">
        <span class="rank">` + itoa(row.Rank) + `</span>
        <span class="avatar">` + templ.EscapeString(row.Initial) + `</span>
        <span class="name">` + templ.EscapeString(row.Name) + `</span>
        <span class="score ` + scoreClass(row.Score) + `">` + signedScore(row.Score) + `</span>
      </div>
`)
		}
		b.WriteString(`    </section>
    <section class="tables">
`)
		for _, table := range state.Tables {
			b.WriteString(`      <div id="table-` + templ.EscapeString(table.ID) + `" class="table status-` + templ.EscapeString(table.Status) + `">
        <h2>Round ` + itoa(table.CurrentRound) + `</h2>
        <p class="seats">` + templ.EscapeString(joinNames(table.Players)) + `</p>
        <p class="turn">` + templ.EscapeString(table.CurrentName) + `</p>
        <p class="timer timer-` + templ.EscapeString(table.TimerLevel) + `">` + templ.EscapeString(table.Clock) + `</p>
      </div>
`)
		}
		b.WriteString(`    </section>
  </body>
</html>
`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
