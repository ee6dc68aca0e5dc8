package main

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/zoobzio/capitan"

	"github.com/ytget/character-browser/internal/api"
	"github.com/ytget/character-browser/internal/config"
	"github.com/ytget/character-browser/internal/loader"
	"github.com/ytget/character-browser/internal/state"
	"github.com/ytget/character-browser/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.character-browser"
	AppName = "Character Browser"

	WindowWidth  = 1024
	WindowHeight = 768
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize settings; environment variables win over stored preferences
	settings := config.NewSettings(myApp)
	if err := config.ApplyEnv(settings); err != nil {
		log.Printf("Ignoring environment overrides: %v", err)
	}

	hookSignalLogging()

	// Initialize services
	client := api.NewClient(settings.APIOptions())
	store := state.NewStore(client)
	pageLoader := loader.New(client, store)

	// Create and setup UI before the first load so no update is missed
	ui.NewRootUI(myWindow, store, settings)

	ctx, cancel := context.WithCancel(context.Background())
	pageLoader.Start(ctx)

	// Show and run
	myWindow.ShowAndRun()

	cancel()
	pageLoader.Stop()
	pageLoader.Wait()
	capitan.Shutdown()
}

// hookSignalLogging logs successful state and loader events; failures are logged where they happen
func hookSignalLogging() {
	capitan.Hook(state.PageChanged, func(_ context.Context, e *capitan.Event) {
		page, _ := state.KeyPage.From(e)
		log.Printf("Page changed to %d", page)
	})
	capitan.Hook(state.CharacterSelected, func(_ context.Context, e *capitan.Event) {
		id, _ := state.KeyCharacterID.From(e)
		name, _ := state.KeyCharacterName.From(e)
		log.Printf("Selected character %d (%s)", id, name)
	})
	capitan.Hook(state.CreateSucceeded, func(_ context.Context, e *capitan.Event) {
		id, _ := state.KeyCharacterID.From(e)
		name, _ := state.KeyCharacterName.From(e)
		log.Printf("Created character %d (%s)", id, name)
	})
	capitan.Hook(loader.PageLoaded, func(_ context.Context, e *capitan.Event) {
		page, _ := loader.KeyPage.From(e)
		total, _ := loader.KeyTotalPages.From(e)
		results, _ := loader.KeyResults.From(e)
		log.Printf("Loaded page %d of %d (%d characters)", page, total, results)
	})
}
