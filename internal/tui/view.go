package tui

import (
	"fmt"
	"strings"

	"github.com/lox/nawan/internal/deck"
	"github.com/lox/nawan/internal/game"
	"github.com/lox/nawan/internal/hand"
)

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	for seat := range m.snap.Players {
		b.WriteString(m.renderSeat(seat))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	title := HeaderStyle.Render(" ♠ ♥ NAWAN ♦ ♣ ")

	potLabel := fmt.Sprintf("POT Rs.%d / %d", m.snap.Pot, m.engine.PotLimit())
	if m.engine.PotFull() {
		return title + "  " + LimitStyle.Render("LIMIT REACHED  "+potLabel)
	}
	return title + "  " + PotStyle.Render(potLabel)
}

func (m Model) renderSeat(seat int) string {
	p := m.snap.Players[seat]

	marker := "  "
	if m.snap.Phase == game.PhaseBetting && seat == m.snap.CurrentTurn {
		marker = TurnStyle.Render("▶ ")
	}

	label := fmt.Sprintf("%-8s Rs.%-6d", p.Name, p.Balance)
	switch {
	case m.snap.Phase == game.PhaseShowdown && m.snap.IsWinner(p.ID):
		label = WinnerStyle.Render(label + " WINNER")
	case p.Status == game.StatusPacked:
		label = PackedStyle.Render(label)
	default:
		label = PlayerStyle.Render(label)
	}

	cards := m.renderCards(seat, p)

	bet := ""
	if p.CurrentBet > 0 {
		bet = FooterStyle.Render(fmt.Sprintf("  bet Rs.%d", p.CurrentBet))
	}

	return marker + label + "  " + cards + bet
}

// renderCards hides every hand except the human's own (once seen) until
// showdown reveals the table.
func (m Model) renderCards(seat int, p game.Player) string {
	if len(p.Cards) == 0 {
		return ""
	}

	reveal := m.snap.Phase == game.PhaseShowdown ||
		(seat == m.engine.HumanSeat() && p.Seen)
	if !reveal {
		if p.Seen {
			return FooterStyle.Render("🂠 🂠 🂠 (seen)")
		}
		return FooterStyle.Render("🂠 🂠 🂠")
	}

	parts := make([]string, 0, len(p.Cards)+1)
	for _, c := range p.Cards {
		parts = append(parts, renderCard(c))
	}
	parts = append(parts, ActionStyle.Render("("+hand.Label(p.Cards)+")"))
	return strings.Join(parts, " ")
}

func renderCard(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

func (m Model) renderFooter() string {
	action := ActionStyle.Render(m.snap.LastAction)

	var status string
	switch {
	case m.snap.Phase == game.PhaseIdle, m.snap.Phase == game.PhaseShowdown:
		status = FooterStyle.Render("press d to deal")
	case m.engine.IsHumanTurn():
		x1, x2 := m.engine.BetAmounts(m.engine.HumanSeat())
		status = TurnStyle.Render(fmt.Sprintf("your turn | b: Rs.%d  r: Rs.%d", x1, x2))
	default:
		waiting := m.snap.Players[m.snap.CurrentTurn].Name
		status = FooterStyle.Render(fmt.Sprintf("waiting on %s...", waiting))
	}

	return action + "\n" + status + "\n" + m.help.View(m.keys)
}
