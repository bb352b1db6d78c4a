package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/pflag"

	"github.com/m2g-app/m2g/internal/audio"
	"github.com/m2g-app/m2g/internal/catalog"
	"github.com/m2g-app/m2g/internal/logger"
	"github.com/m2g-app/m2g/internal/settings"
	"github.com/m2g-app/m2g/internal/viewmodel"
)

func main() {
	storeKind := pflag.String("store", "prefs", "Settings backend: prefs or file")
	assetsDir := pflag.String("assets", "assets", "Directory holding page images and the audio track")
	mute := pflag.Bool("mute", false, "Run without sound output")
	pflag.Parse()

	logger.Init(logger.LevelInfo, nil)
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Unrecovered GUI panic", "scope", "main", "panic", fmt.Sprint(r))
			os.Exit(1)
		}
	}()

	myApp := app.NewWithID("com.m2g.app")
	myApp.SetIcon(appIcon())

	store, err := openSettings(myApp, *storeKind)
	if err != nil {
		logger.Error("Settings backend unavailable", "error", err)
		os.Exit(1)
	}

	w := myApp.NewWindow("M2G")
	w.SetIcon(appIcon())
	w.SetMaster()
	w.Resize(fyne.NewSize(390, 740))
	w.CenterOnScreen()

	opener := func(link string) {
		u, err := url.Parse(link)
		if err != nil {
			logger.Warn("External link unparseable")
			return
		}
		if err := myApp.OpenURL(u); err != nil {
			logger.Warn("External link handoff failed", "error", err)
		}
	}

	cat := catalog.Default()
	var backend audio.Backend = assetBackend{Backend: audio.NewSpeakerBackend(), dir: *assetsDir}
	if *mute {
		backend = audio.NopBackend{}
	}
	vm := viewmodel.New(store, backend, cat, opener)

	ui := newM2gApp(w, vm, *assetsDir)
	vm.SetListener(ui.apply)

	w.ShowAndRun()
}

// assetBackend resolves bare track names against the assets directory before
// handing them to the speaker.
type assetBackend struct {
	audio.Backend
	dir string
}

func (b assetBackend) Load(track string) error {
	if track != "" && !filepath.IsAbs(track) {
		track = filepath.Join(b.dir, track)
	}
	return b.Backend.Load(track)
}

func openSettings(myApp fyne.App, kind string) (settings.Store, error) {
	switch kind {
	case "prefs":
		return settings.NewPrefs(myApp.Preferences()), nil
	case "file":
		dir, err := settings.DefaultDir()
		if err != nil {
			return nil, err
		}
		return settings.NewDiskStore(dir)
	default:
		return nil, fmt.Errorf("unknown settings backend %q (want prefs or file)", kind)
	}
}
