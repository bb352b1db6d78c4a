package main

import (
	"image/color"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/m2g-app/m2g/internal/apperrors"
	"github.com/m2g-app/m2g/internal/nav"
	"github.com/m2g-app/m2g/internal/palette"
	"github.com/m2g-app/m2g/internal/render"
	"github.com/m2g-app/m2g/internal/viewmodel"
)

type m2gApp struct {
	window    fyne.Window
	vm        *viewmodel.ViewModel
	assetsDir string

	content *fyne.Container

	// editingNotes suppresses the wholesale rebuild while a keystroke's own
	// snapshot comes back, so the entry keeps its cursor.
	editingNotes bool

	appliedMode     int
	appliedTextSize float64
	themeApplied    bool

	panicNoticeOnce sync.Once
}

func newM2gApp(w fyne.Window, vm *viewmodel.ViewModel, assetsDir string) *m2gApp {
	a := &m2gApp{window: w, vm: vm, assetsDir: assetsDir}
	a.content = container.NewStack()
	w.SetContent(a.content)
	return a
}

// apply rebuilds the whole widget tree from a snapshot.
func (a *m2gApp) apply(snap render.Snapshot) {
	if a.editingNotes {
		return
	}
	a.safeDo("ui.apply", func() {
		a.applyTheme(snap)

		bg := canvas.NewRectangle(snap.Background)

		var active fyne.CanvasObject
		switch {
		case snap.Notes.Visible:
			active = a.buildNotes(snap)
		case snap.Reader.Visible:
			active = a.buildReader(snap)
		case snap.ActiveView == nav.Profile:
			active = a.buildProfile(snap)
		default:
			active = a.buildHome(snap)
		}

		body := container.NewBorder(nil, a.buildNavBar(snap), nil, nil, active)
		a.content.Objects = []fyne.CanvasObject{bg, body}
		a.content.Refresh()
	})
}

func (a *m2gApp) applyTheme(snap render.Snapshot) {
	mode := int(snap.Mode)
	size := snap.Profile.FontSliderValue
	if a.themeApplied && a.appliedMode == mode && a.appliedTextSize == size {
		return
	}
	fyne.CurrentApp().Settings().SetTheme(newM2gTheme(snap.Mode, size))
	a.appliedMode = mode
	a.appliedTextSize = size
	a.themeApplied = true
}

// showError surfaces an intent failure with its safe public message; raw
// causes stay in the log.
func (a *m2gApp) showError(err error) {
	if err == nil {
		return
	}
	dialog.ShowInformation("Errore", apperrors.PublicMessage(err), a.window)
}

func (a *m2gApp) assetPath(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(a.assetsDir, name)
}

func (a *m2gApp) buildHome(snap render.Snapshot) fyne.CanvasObject {
	h := snap.Header
	logo := canvas.NewText(h.LogoText, h.LogoTextColor)
	logo.TextStyle = fyne.TextStyle{Bold: true}
	logo.Alignment = fyne.TextAlignCenter
	logoBg := canvas.NewRectangle(h.LogoBackground)
	logoBg.CornerRadius = 10
	logoBox := container.NewGridWrap(fyne.NewSize(52, 52), container.NewStack(logoBg, container.NewCenter(logo)))

	welcome := canvas.NewText(h.WelcomeText, h.TextColor)
	welcome.TextStyle = fyne.TextStyle{Bold: true}
	header := container.NewPadded(container.NewHBox(logoBox, container.NewCenter(welcome)))

	cards := container.NewVBox()
	for _, card := range snap.Cards {
		title := card.Title
		cards.Add(newSectionCard(card, func() {
			a.showError(a.vm.OpenSection(title))
		}))
	}

	return container.NewBorder(header, nil, nil, nil, container.NewVScroll(container.NewPadded(cards)))
}

func (a *m2gApp) buildProfile(snap render.Snapshot) fyne.CanvasObject {
	p := snap.Profile

	title := canvas.NewText(p.Title, p.TitleColor)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	avatar := a.buildAvatar(p, 96, func() { a.showAvatarPicker() })

	nameEntry := widget.NewEntry()
	nameEntry.SetText(p.NameValue)
	nameEntry.OnSubmitted = func(s string) {
		if err := a.vm.SetDisplayName(s); err != nil {
			a.showError(err)
			nameEntry.SetText(p.NameValue)
		}
	}
	nameLabel := canvas.NewText(p.NameLabel, p.TextColor)

	notesBtn := newColorButton(p.NotesButtonLabel, p.ButtonBackground, p.ButtonForeground, func() {
		a.vm.OpenNotes()
	})
	uploadBtn := newColorButton(p.UploadLabel, p.ButtonBackground, p.ButtonForeground, func() {
		a.showAvatarPicker()
	})

	settingsTitle := canvas.NewText(p.SettingsTitle, p.TitleColor)
	settingsTitle.TextStyle = fyne.TextStyle{Bold: true}

	themeCheck := widget.NewCheck(p.ThemeLabel, func(on bool) {
		a.vm.SetThemeMode(themeModeFor(on))
	})
	themeCheck.SetChecked(p.ThemeSwitchOn)

	fontLabel := canvas.NewText(p.FontSizeLabel, p.TextColor)
	fontSlider := widget.NewSlider(p.FontSliderMin, p.FontSliderMax)
	fontSlider.Step = 1
	fontSlider.Value = p.FontSliderValue
	fontSlider.OnChangeEnded = func(v float64) {
		a.vm.SetFontSize(v)
	}

	form := container.NewVBox(
		container.NewCenter(title),
		container.NewCenter(avatar),
		container.NewCenter(uploadBtn),
		widget.NewSeparator(),
		nameLabel,
		nameEntry,
		container.NewCenter(notesBtn),
		widget.NewSeparator(),
		settingsTitle,
		themeCheck,
		fontLabel,
		fontSlider,
	)

	return container.NewVScroll(container.NewPadded(form))
}

func (a *m2gApp) buildAvatar(p render.ProfileForm, size float32, onTap func()) fyne.CanvasObject {
	var inner fyne.CanvasObject
	if p.AvatarIsDefault {
		icon := canvas.NewImageFromResource(theme.NewThemedResource(theme.AccountIcon()))
		icon.FillMode = canvas.ImageFillContain
		inner = icon
	} else {
		img := canvas.NewImageFromFile(a.assetPath(p.AvatarRef))
		img.FillMode = canvas.ImageFillContain
		inner = img
	}
	border := canvas.NewCircle(color.Transparent)
	border.StrokeColor = p.AvatarBorder
	border.StrokeWidth = 3

	box := container.NewGridWrap(fyne.NewSize(size, size), container.NewStack(inner, border))
	return newTapRegion(box, onTap)
}

func (a *m2gApp) buildNotes(snap render.Snapshot) fyne.CanvasObject {
	n := snap.Notes

	title := canvas.NewText(n.Title, n.TextColor)
	title.TextStyle = fyne.TextStyle{Bold: true}

	paper := canvas.NewRectangle(n.PaperSurface)
	paper.CornerRadius = 6

	entry := widget.NewMultiLineEntry()
	entry.Wrapping = fyne.TextWrapWord
	entry.SetText(n.Text)
	entry.OnChanged = func(s string) {
		a.editingNotes = true
		err := a.vm.EditNotes(s)
		a.editingNotes = false
		if err != nil {
			a.showError(err)
			entry.SetText(n.Text)
		}
	}

	saveBtn := newTappableIcon(theme.NewColoredResource(theme.DocumentSaveIcon(), theme.ColorNamePrimary), func() {
		a.showError(a.vm.SaveNotes())
	}, fyne.NewSize(28, 28))
	closeBtn := newTappableIcon(theme.NewThemedResource(theme.CancelIcon()), func() {
		a.vm.CloseOverlay()
	}, fyne.NewSize(28, 28))

	top := container.NewHBox(title, layout.NewSpacer(), container.NewPadded(saveBtn), container.NewPadded(closeBtn))
	sheet := container.NewStack(paper, container.NewPadded(entry))

	return container.NewPadded(container.NewBorder(top, nil, nil, nil, sheet))
}

func (a *m2gApp) buildReader(snap render.Snapshot) fyne.CanvasObject {
	r := snap.Reader

	title := canvas.NewText(r.Title, r.TitleColor)
	title.TextStyle = fyne.TextStyle{Bold: true}
	closeBtn := newTappableIcon(theme.NewThemedResource(theme.CancelIcon()), func() {
		a.vm.CloseOverlay()
	}, fyne.NewSize(28, 28))
	top := container.NewHBox(title, layout.NewSpacer(), container.NewPadded(closeBtn))

	var body fyne.CanvasObject
	if r.AudioControls {
		lyrics := widget.NewLabel(r.Lyrics)
		lyrics.Wrapping = fyne.TextWrapWord

		playBtn := newColorButton(r.Play.Label, r.Play.Background, r.Play.Foreground, func() {
			a.vm.TogglePlayback()
		})
		stopBtn := newColorButton(r.StopLabel, r.StopColor, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, func() {
			a.vm.StopPlayback()
		})
		controls := container.NewCenter(container.NewHBox(playBtn, stopBtn))
		body = container.NewBorder(controls, nil, nil, nil, container.NewVScroll(lyrics))
	} else if len(r.Pages) == 0 {
		empty := canvas.NewText(r.EmptyText, r.EmptyTextColor)
		empty.Alignment = fyne.TextAlignCenter
		body = container.NewCenter(empty)
	} else {
		pages := container.NewVBox()
		for _, page := range r.Pages {
			img := canvas.NewImageFromFile(a.assetPath(page))
			img.FillMode = canvas.ImageFillContain
			img.SetMinSize(fyne.NewSize(320, 440))
			pages.Add(img)
		}
		body = container.NewVScroll(pages)
	}

	return container.NewPadded(container.NewBorder(top, nil, nil, nil, body))
}

func (a *m2gApp) buildNavBar(snap render.Snapshot) fyne.CanvasObject {
	bar := snap.NavBar
	surface := canvas.NewRectangle(bar.Surface)

	home := a.buildNavButton(bar.Home, func() { a.vm.SelectView(nav.Home) })
	prof := a.buildNavButton(bar.Profile, func() { a.vm.SelectView(nav.Profile) })

	row := container.NewGridWithColumns(2, home, prof)
	return container.NewStack(surface, container.NewPadded(row))
}

func (a *m2gApp) buildNavButton(b render.NavButton, onTap func()) fyne.CanvasObject {
	bg := canvas.NewRectangle(b.Background)
	bg.CornerRadius = 8

	var icon fyne.CanvasObject
	if b.AvatarRef != "" {
		img := canvas.NewImageFromFile(a.assetPath(b.AvatarRef))
		img.FillMode = canvas.ImageFillContain
		icon = img
	} else {
		res := theme.NewColoredResource(iconResource(b.Icon), theme.ColorNameForeground)
		im := canvas.NewImageFromResource(res)
		im.FillMode = canvas.ImageFillContain
		icon = im
	}
	iconBox := container.NewGridWrap(fyne.NewSize(22, 22), icon)

	label := canvas.NewText(b.Label, b.Foreground)
	label.TextSize = 11
	label.Alignment = fyne.TextAlignCenter

	col := container.NewVBox(container.NewCenter(iconBox), label)
	return newTapRegion(container.NewStack(bg, container.NewPadded(col)), onTap)
}

func themeModeFor(dark bool) palette.Mode {
	if dark {
		return palette.Dark
	}
	return palette.Light
}

// iconResource maps catalog icon tokens to bundled icon resources.
func iconResource(name string) fyne.Resource {
	switch name {
	case "sunrise":
		return theme.UploadIcon()
	case "book-open":
		return theme.DocumentIcon()
	case "music":
		return theme.MediaMusicIcon()
	case "camera":
		return theme.MediaPhotoIcon()
	case "home":
		return theme.HomeIcon()
	case "play":
		return theme.MediaPlayIcon()
	case "pause":
		return theme.MediaPauseIcon()
	default:
		return theme.AccountIcon()
	}
}
