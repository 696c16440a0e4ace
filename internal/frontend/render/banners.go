package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/cory-johannsen/eldara/internal/frontend/ansi"
	"github.com/cory-johannsen/eldara/internal/game/command"
)

type frame struct {
	topLeft, topRight, bottomLeft, bottomRight, horizontal, vertical string
}

var (
	singleFrame = frame{"┌", "┐", "└", "┘", "─", "│"}
	doubleFrame = frame{"╔", "╗", "╚", "╝", "═", "║"}
)

const titleArt = `
█████╗    ██████╗  ██╗   ██╗ ███████╗ ███╗   ██╗ ████████╗ ██╗   ██╗ ██████╗  ███████╗
██╔══██╗  ██╔══██╗ ██║   ██║ ██╔════╝ ████╗  ██║ ╚══██╔══╝ ██║   ██║ ██╔══██╗ ██╔════╝
███████║  ██║  ██║ ██║   ██║ █████╗   ██╔██╗ ██║    ██║    ██║   ██║ ██████╔╝ █████╗
██╔══██║  ██║  ██║ ╚██╗ ██╔╝ ██╔══╝   ██║╚██╗██║    ██║    ██║   ██║ ██╔══██╗ ██╔══╝
██║  ██║  ██████╔╝  ╚████╔╝  ███████╗ ██║ ╚████║    ██║    ╚██████╔╝ ██║  ██║ ███████╗
╚═╝  ╚═╝  ╚═════╝    ╚═══╝   ╚══════╝ ╚═╝  ╚═══╝    ╚═╝     ╚═════╝  ╚═╝  ╚═╝ ╚══════╝`

// textWidth is the number of terminal columns s occupies once escapes are removed.
func textWidth(s string) int {
	return runewidth.StringWidth(ansi.StripANSI(s))
}

// box draws lines inside f, centring each one in a body of inner columns.
// inner grows to fit the widest line.
func box(f frame, inner int, lines ...string) string {
	for _, l := range lines {
		if w := textWidth(l) + 2; w > inner {
			inner = w
		}
	}
	var b strings.Builder
	b.WriteString(f.topLeft + strings.Repeat(f.horizontal, inner) + f.topRight + "\n")
	for _, l := range lines {
		pad := inner - textWidth(l)
		left := pad / 2
		b.WriteString(f.vertical + strings.Repeat(" ", left) + l + strings.Repeat(" ", pad-left) + f.vertical + "\n")
	}
	b.WriteString(f.bottomLeft + strings.Repeat(f.horizontal, inner) + f.bottomRight)
	return b.String()
}

// Banner renders the title art, the welcome box, and the introduction to Eldara.
func (r *Renderer) Banner() string {
	var b strings.Builder
	b.WriteString(r.style.Style(titleArt, ansi.Bold, ansi.Cyan))
	b.WriteString("\n\n")
	b.WriteString(r.style.Style(box(doubleFrame, 43, "Welcome to the Adventure!"), ansi.Bold, ansi.Magenta))
	b.WriteString("\n\n")
	b.WriteString(r.intro())
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) intro() string {
	forest := ansi.Color256(28)
	s := func(text string, codes ...string) string {
		return r.style.Style(text, append([]string{ansi.Bold}, codes...)...)
	}
	paragraphs := []string{
		s("Welcome to the mystical realm of ", forest) + s("Eldara", ansi.Cyan) +
			s(", where ancient magic flows through emerald forests and ", forest) +
			s("crystalline lakes shimmer with otherworldly light", ansi.Color256(39)) +
			s(". Hidden within this enchanted land lies a ", forest) +
			s("legendary treasure", ansi.Yellow) +
			s(", sought after by brave adventurers for centuries.", forest),
		s("As you journey through the whispering woods and ", forest) +
			s("crumbling ruins", ansi.Color256(137)) + s(", you'll encounter ", forest) +
			s("friendly villagers", ansi.Color256(180)) + s(" who hold age-old secrets, and ", forest) +
			s("fearsome creatures", ansi.Red) + s(" who guard sacred places. The very air tingles with ", forest) +
			s("arcane energy", ansi.Magenta) + s(", while ", forest) +
			s("mysterious caves", ansi.Color256(240)) + s(" and ", forest) +
			s("towering mountains", ansi.Color256(248)) + s(" beckon you to explore their depths.", forest),
		s("Your quest will test both your ", forest) + s("courage", ansi.Red) + s(" and ", forest) +
			s("wisdom", ansi.Blue) + s(" as you unravel the mysteries of this magical realm. The ", forest) +
			s("treasure", ansi.Yellow) +
			s(" awaits those pure of heart and sharp of mind - will you be the one to discover its resting place?", forest),
	}
	for i, p := range paragraphs {
		paragraphs[i] = r.wrap(p)
	}
	return strings.Join(paragraphs, "\n\n") + "\n"
}

var handlerColor = map[string]string{
	command.HandlerMove:  ansi.Green,
	command.HandlerLook:  ansi.Cyan,
	command.HandlerTake:  ansi.Yellow,
	command.HandlerTalk:  ansi.Blue,
	command.HandlerFight: ansi.Red,
	command.HandlerHelp:  ansi.Magenta,
	command.HandlerQuit:  ansi.Yellow,
}

// Menu renders the command list in registry order. Movement commands collapse
// into a single row listing their short aliases.
func (r *Renderer) Menu(cmds []*command.Command) string {
	type row struct{ label, help, color string }
	var rows []row
	var moves []string
	for _, cmd := range cmds {
		if cmd.Category == command.CategoryMovement {
			name := cmd.Name
			if len(cmd.Aliases) > 0 {
				name = cmd.Aliases[0]
			}
			if len(moves) == 0 {
				rows = append(rows, row{help: "Movement", color: handlerColor[command.HandlerMove]})
			}
			moves = append(moves, name)
			continue
		}
		rows = append(rows, row{label: cmd.Name, help: cmd.Help, color: handlerColor[cmd.Handler]})
	}

	lines := make([]string, len(rows))
	inner := 0
	for i, rw := range rows {
		label := rw.label
		if label == "" {
			label = strings.Join(moves, ", ")
		}
		lines[i] = r.style.Style("▶ "+label, rw.color) + r.style.Style(": "+rw.help, ansi.Cyan)
		if w := textWidth(lines[i]) + 2; w > inner {
			inner = w
		}
	}
	const heading = " Commands "
	if w := runewidth.StringWidth(heading) + 4; w > inner {
		inner = w
	}

	var b strings.Builder
	left := (inner - runewidth.StringWidth(heading)) / 2
	right := inner - runewidth.StringWidth(heading) - left
	b.WriteString(r.style.Style(singleFrame.topLeft+strings.Repeat(singleFrame.horizontal, left), ansi.Bold, ansi.Cyan))
	b.WriteString(r.style.Style(heading, ansi.Bold, ansi.Yellow))
	b.WriteString(r.style.Style(strings.Repeat(singleFrame.horizontal, right)+singleFrame.topRight, ansi.Bold, ansi.Cyan))
	b.WriteString("\n")
	for _, l := range lines {
		pad := inner - 1 - textWidth(l)
		b.WriteString(r.style.Style(singleFrame.vertical+" ", ansi.Bold, ansi.Cyan))
		b.WriteString(l)
		b.WriteString(r.style.Style(strings.Repeat(" ", pad)+singleFrame.vertical, ansi.Bold, ansi.Cyan))
		b.WriteString("\n")
	}
	b.WriteString(r.style.Style(singleFrame.bottomLeft+strings.Repeat(singleFrame.horizontal, inner)+singleFrame.bottomRight, ansi.Bold, ansi.Cyan))
	b.WriteString("\n")
	return b.String()
}

// Prompt renders the boxed request for the next command.
func (r *Renderer) Prompt() string {
	return "\n" + r.style.Style(box(singleFrame, 21, "Enter a command:"), ansi.Bold, ansi.Blue) + "\n"
}

// Farewell renders the banner shown on quit or end of input.
func (r *Renderer) Farewell() string {
	return "\n" + r.style.Style(box(doubleFrame, 43, "Thanks for playing!"), ansi.Bold, ansi.Blue) + "\n"
}

// Victory renders the banner shown once the treasure has been taken.
//
// Precondition: moves >= 0.
func (r *Renderer) Victory(moves int) string {
	return "\n" + r.style.Style(box(doubleFrame, 52,
		"🎉 Congratulations! You found the treasure! 🎉",
		fmt.Sprintf("You completed the game in %d moves!", moves),
	), ansi.Bold, ansi.Green) + "\n"
}
