package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// overlayUI is the panel in the top-left corner listing device status,
// every action's pressed state and the recent triggers.
type overlayUI struct {
	ui      *ebitenui.UI
	status  *widget.Text
	actions *widget.Text
	history *widget.Text
}

func newOverlayUI() *overlayUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 160})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	dim := color.NRGBA{R: 0xb0, G: 0xb0, B: 0xc0, A: 0xff}

	o := &overlayUI{
		status:  widget.NewText(widget.TextOpts.Text("", &face, white)),
		actions: widget.NewText(widget.TextOpts.Text("", &face, white)),
		history: widget.NewText(widget.TextOpts.Text("", &face, dim)),
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(o.status)
	panel.AddChild(o.actions)
	panel.AddChild(o.history)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	o.ui = &ebitenui.UI{Container: root}
	return o
}

// refresh copies this frame's state into the labels and lays the panel out.
func (o *overlayUI) refresh(g *Game) {
	o.status.Label = g.statusText()
	o.actions.Label = g.actionsText()
	o.history.Label = g.historyText()
	o.ui.Update()
}
