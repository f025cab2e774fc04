package platformer

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar = '▓'
	PlayerChar   = '█'
	EnemyChar    = '▒'
	CoinChar     = '●'
	SwordChar    = '═'
	HeartChar    = '♥'
	BarFull      = '■'
	BarEmpty     = '□'
)

// hudRows is the number of rows reserved above the playfield.
const hudRows = 1

// renderer draws one snapshot into a screen buffer.
// Scene space is scaled to fill the playfield, so the terminal size only
// changes how coarse the picture is.
type renderer struct {
	snap  Snapshot
	state core.GameState
}

func (r renderer) draw(dst *core.Screen) {
	dst.Clear()

	fieldW := dst.Width()
	fieldH := dst.Height() - hudRows
	if fieldW <= 0 || fieldH <= 0 {
		return
	}

	for _, b := range r.snap.Platforms {
		dst.DrawRectColored(r.project(b, fieldW, fieldH), PlatformChar, core.ColorBrown)
	}
	for _, b := range r.snap.Coins {
		dst.DrawRectColored(r.project(b, fieldW, fieldH), CoinChar, core.ColorBrightYellow)
	}
	for _, e := range r.snap.Enemies {
		dst.DrawRectColored(r.project(e.Box, fieldW, fieldH), EnemyChar, core.ColorRed)
	}
	for _, s := range r.snap.Swords {
		dst.DrawRectColored(r.project(s.Box, fieldW, fieldH), SwordChar, core.ColorGray)
	}
	r.drawPlayer(dst, fieldW, fieldH)
	r.drawHUD(dst)
}

// project maps a scene box to the cells it covers. Every visible box gets
// at least one cell.
func (r renderer) project(b core.Box, fieldW, fieldH int) core.Rect {
	sx := float64(fieldW) / r.snap.SceneW
	sy := float64(fieldH) / r.snap.SceneH

	x0 := int(math.Floor(b.X * sx))
	x1 := int(math.Ceil(b.Right() * sx))
	y0 := int(math.Floor(b.Y * sy))
	y1 := int(math.Ceil(b.Bottom() * sy))

	return core.NewRect(x0, y0+hudRows, max(x1-x0, 1), max(y1-y0, 1))
}

func (r renderer) drawPlayer(dst *core.Screen, fieldW, fieldH int) {
	p := r.snap.Player
	rect := r.project(p.Box, fieldW, fieldH)
	dst.DrawRectColored(rect, PlayerChar, playerColor(p))

	// Eye on the facing side of the top row.
	eyeX := rect.Right() - 1
	if p.FacingLeft {
		eyeX = rect.X
	}
	if rect.W > 1 {
		dst.SetColored(eyeX, rect.Y, '•', core.ColorBrightWhite)
	}
}

func playerColor(p PlayerView) core.Color {
	if p.Attacking {
		return core.ColorYellow
	}
	switch p.Tier {
	case TierHealthy:
		return core.ColorBrightBlue
	case TierWounded:
		return core.ColorOrange
	default:
		return core.ColorBrightRed
	}
}

func (r renderer) drawHUD(dst *core.Screen) {
	st := r.state

	left := fmt.Sprintf(" Score: %d  Level: %d  Time: %s ", st.Score, st.Level, formatClock(st.ElapsedSecs))
	dst.DrawText(0, 0, left)

	x := len(left)
	if st.Lives >= 0 {
		hearts := strings.Repeat(string(HeartChar), st.Lives)
		dst.DrawTextColored(x, 0, hearts, core.ColorRed)
		x += st.Lives + 1
	} else {
		dst.DrawText(x, 0, "∞ ")
		x += 2
	}

	p := r.snap.Player
	dst.DrawTextColored(x, 0, healthBar(p.Health, p.MaxHealth, 10), playerColor(PlayerView{Tier: p.Tier}))
	dst.DrawText(x+11, 0, fmt.Sprintf("%3d", p.Health))

	if r.snap.AttackCooldown == 0 {
		dst.DrawTextColored(x+15, 0, "⚔", core.ColorGray)
	}
}

// healthBar renders health as a bar of the given width.
func healthBar(health, maxHealth, width int) string {
	filled := 0
	if maxHealth > 0 {
		filled = core.Clamp(int(math.Ceil(float64(health*width)/float64(maxHealth))), 0, width)
	}
	return strings.Repeat(string(BarFull), filled) + strings.Repeat(string(BarEmpty), width-filled)
}

func formatClock(secs int) string {
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subLen := len([]rune(subtitle))

	boxW := max(titleLen, subLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-subLen)/2, boxY+3, subtitle)
}
