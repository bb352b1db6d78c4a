package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/m2g-app/m2g/internal/render"
)

// tapRegion makes an arbitrary canvas object tappable.
type tapRegion struct {
	widget.BaseWidget
	content fyne.CanvasObject
	action  func()
}

func newTapRegion(content fyne.CanvasObject, action func()) *tapRegion {
	t := &tapRegion{content: content, action: action}
	t.ExtendBaseWidget(t)
	return t
}

func (t *tapRegion) Tapped(_ *fyne.PointEvent) {
	if t.action != nil {
		t.action()
	}
}

func (t *tapRegion) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

func (t *tapRegion) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.content)
}

// tappableIcon is a small clickable icon with hover feedback.
type tappableIcon struct {
	widget.BaseWidget
	icon    *canvas.Image
	minSize fyne.Size
	action  func()
}

func newTappableIcon(res fyne.Resource, action func(), minSize fyne.Size) *tappableIcon {
	icon := canvas.NewImageFromResource(res)
	icon.FillMode = canvas.ImageFillContain

	t := &tappableIcon{icon: icon, action: action, minSize: minSize}
	t.ExtendBaseWidget(t)
	return t
}

func (t *tappableIcon) Tapped(_ *fyne.PointEvent) {
	if t.action != nil {
		t.action()
	}
}

func (t *tappableIcon) MouseIn(_ *desktop.MouseEvent) { t.setHover(true) }

func (t *tappableIcon) MouseMoved(_ *desktop.MouseEvent) { t.setHover(true) }

func (t *tappableIcon) MouseOut() { t.setHover(false) }

func (t *tappableIcon) setHover(on bool) {
	safeDo("ui.tappable_icon.hover", func() {
		if on {
			t.icon.Translucency = 0.4
		} else {
			t.icon.Translucency = 0.0
		}
		t.icon.Refresh()
	})
}

func (t *tappableIcon) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

func (t *tappableIcon) MinSize() fyne.Size {
	if t.minSize.Width > 0 && t.minSize.Height > 0 {
		return t.minSize
	}
	return fyne.NewSize(32, 32)
}

func (t *tappableIcon) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.icon)
}

// colorButton is a filled button with explicit colors, outside the theme.
type colorButton struct {
	widget.BaseWidget
	text   *canvas.Text
	bg     *canvas.Rectangle
	action func()
}

func newColorButton(label string, bgColor, fgColor color.Color, action func()) *colorButton {
	t := canvas.NewText(label, fgColor)
	t.TextStyle = fyne.TextStyle{Bold: true}
	t.Alignment = fyne.TextAlignCenter

	bg := canvas.NewRectangle(bgColor)
	bg.CornerRadius = 8

	b := &colorButton{text: t, bg: bg, action: action}
	b.ExtendBaseWidget(b)
	return b
}

func (b *colorButton) Tapped(_ *fyne.PointEvent) {
	if b.action != nil {
		b.action()
	}
}

func (b *colorButton) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

func (b *colorButton) CreateRenderer() fyne.WidgetRenderer {
	return &colorButtonRenderer{b: b}
}

type colorButtonRenderer struct {
	b *colorButton
}

func (r *colorButtonRenderer) Layout(s fyne.Size) {
	r.b.bg.Resize(s)
	r.b.text.Resize(s)
}

func (r *colorButtonRenderer) MinSize() fyne.Size {
	min := r.b.text.MinSize()
	return fyne.NewSize(min.Width+40, min.Height+20)
}

func (r *colorButtonRenderer) Refresh() {
	r.b.bg.Refresh()
	r.b.text.Refresh()
}

func (r *colorButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.b.bg, r.b.text}
}

func (r *colorButtonRenderer) Destroy() {}

// sectionCard is one row on the home screen: icon chip, title, chevron.
func newSectionCard(card render.Card, onTap func()) fyne.CanvasObject {
	surface := canvas.NewRectangle(card.Surface)
	surface.CornerRadius = 12

	chip := canvas.NewRectangle(card.IconSurface)
	chip.CornerRadius = 8
	icon := canvas.NewImageFromResource(theme.NewColoredResource(iconResource(card.Icon), theme.ColorNamePrimary))
	icon.FillMode = canvas.ImageFillContain
	iconBox := container.NewGridWrap(fyne.NewSize(40, 40), container.NewStack(chip, container.NewPadded(icon)))

	title := canvas.NewText(card.Title, card.TitleColor)
	title.TextStyle = fyne.TextStyle{Bold: true}

	chevron := canvas.NewText("›", card.ChevronColor)
	chevron.TextSize = 22

	row := container.NewHBox(iconBox, container.NewCenter(title), layout.NewSpacer(), container.NewCenter(chevron))
	return newTapRegion(container.NewStack(surface, container.NewPadded(row)), onTap)
}
