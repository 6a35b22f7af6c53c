package ui

import (
	"zzz/internal/render"
)

type Rect struct {
	X, Y, W, H int
}

type Layout struct {
	Scene     Rect
	Panel     Rect
	StatusH   int
	StatusBar int
	LogRows   int
}

func ComputeLayout(w, h int, theme Theme, scale float32) Layout {
	if scale <= 0 {
		scale = 1
	}

	dp := func(v int) int { return int(float32(v) * scale) }

	statusH := dp(theme.StatusHeightDp)
	margin := dp(theme.MarginDp)
	pad := dp(theme.PaddingDp)

	bodyH := h - statusH
	if bodyH < 0 {
		bodyH = 0
	}

	panelW := dp(theme.PanelWidthDp)
	if maxPanelW := w * 2 / 5; panelW > maxPanelW {
		panelW = maxPanelW
	}
	if panelW < 0 {
		panelW = 0
	}
	panelH := bodyH - margin*2
	if panelH < 0 {
		panelH = 0
	}
	panel := Rect{X: w - panelW - margin, Y: margin, W: panelW, H: panelH}

	rows := (panelH - pad*2 - render.LineHeight()) / render.LineHeight()
	if rows < 0 {
		rows = 0
	}

	sceneW := panel.X - margin
	if sceneW < 0 {
		sceneW = 0
	}

	return Layout{
		Scene:     Rect{X: 0, Y: 0, W: sceneW, H: bodyH},
		Panel:     panel,
		StatusH:   statusH,
		StatusBar: h - statusH,
		LogRows:   rows,
	}
}

// DrawShell clears the frame and draws the event panel and status bar around
// the scene area. lines are drawn oldest first; only the newest that fit are
// shown.
func DrawShell(fb *render.FrameBuffer, lines []string, status string, theme Theme, scale float32) Layout {
	layout := ComputeLayout(fb.W, fb.H, theme, scale)
	pad := int(float32(theme.PaddingDp) * scale)
	lh := render.LineHeight()

	fb.Clear(theme.Background)

	p := layout.Panel
	if p.W > 0 && p.H > 0 {
		fb.FillRect(p.X+2, p.Y+2, p.W, p.H, theme.Shadow)
		fb.FillRect(p.X, p.Y, p.W, p.H, theme.Panel)
		fb.StrokeRect(p.X, p.Y, p.W, p.H, 1, theme.Border)

		accentH := int(3 * scale)
		if accentH < 1 {
			accentH = 1
		}
		fb.FillRect(p.X, p.Y, p.W, accentH, theme.Accent)

		y := p.Y + pad + lh
		fb.DrawText(p.X+pad, y, "Events", theme.PanelDim)
		if len(lines) > layout.LogRows {
			lines = lines[len(lines)-layout.LogRows:]
		}
		for _, line := range lines {
			y += lh
			fb.DrawText(p.X+pad, y, clip(line, p.W-pad*2), theme.PanelText)
		}
	}

	fb.FillRect(0, layout.StatusBar, fb.W, layout.StatusH, theme.StatusBar)
	fb.StrokeRect(0, layout.StatusBar, fb.W, layout.StatusH, 1, theme.Border)
	fb.DrawText(pad, layout.StatusBar+(layout.StatusH+lh)/2-2, status, theme.StatusText)

	return layout
}

func clip(s string, width int) string {
	if render.MeasureText(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && render.MeasureText(string(r)+"...") > width {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
