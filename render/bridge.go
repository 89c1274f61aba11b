package render

import "github.com/gdamore/tcell/v2"

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

func style(fg, bg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(RGBToTcell(fg)).Background(RGBToTcell(bg))
}
