package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"

	"github.com/burrowgames/gridface/config"
	"github.com/burrowgames/gridface/fonts"
	"github.com/burrowgames/gridface/messaging"
	"github.com/burrowgames/gridface/presenter"
	"github.com/burrowgames/gridface/remote"
	"github.com/burrowgames/gridface/shared/messages"
	"github.com/burrowgames/gridface/textures"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

//go:embed all:assets/images
var assetFS embed.FS

var connectAddr = flag.String("connect", "",
	"address of the logic process (host:port); empty runs the built-in demo driver")

// Game drives the per-frame phases in their fixed order: drain, dispatch,
// draw. A failure in any phase ends the session; there is no partial
// degradation mode.
type Game struct {
	state   *presenter.State
	drawErr error
}

func NewGame(state *presenter.State) *Game {
	return &Game{state: state}
}

func (g *Game) Update() error {
	// Draw has no error return of its own; a rendering failure surfaces on
	// the next tick.
	if g.drawErr != nil {
		return g.drawErr
	}
	if err := g.state.Update(); err != nil {
		return err
	}
	return g.state.HandleInput()
}

func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.state.Draw(screen); err != nil && g.drawErr == nil {
		g.drawErr = err
	}
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.Window.Width, config.Window.Height
}

func main() {
	flag.Parse()

	fonts.LoadFont(fonts.UIRegular, goregular.TTF)
	fonts.LoadFontWithSize(fonts.UISmall, goregular.TTF, 10)

	pipes := messaging.NewPipes(messages.InboundTopics(), messages.OutboundTopics(), config.Protocol.ChannelCapacity)

	images, err := fs.Sub(assetFS, "assets/images")
	if err != nil {
		log.Fatalf("asset source: %v", err)
	}
	tex, err := textures.LoadAll(images)
	if err != nil {
		log.Fatalf("texture registry: %v", err)
	}

	if err := presenter.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	settings := presenter.DefaultSettings()
	if saved, err := presenter.LoadSettings(); err == nil && saved != nil {
		settings = *saved
	}

	state := presenter.NewState(pipes.Registry(), tex, settings)

	var bridge *remote.Bridge
	if *connectAddr != "" {
		bridge = remote.NewBridge(pipes)
		bridge.Connect(*connectAddr)
	} else {
		go runDemoDriver(pipes)
	}

	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowTitle(config.Window.Title)

	err = ebiten.RunGame(NewGame(state))
	if bridge != nil {
		if bridgeErr := bridge.LastError(); bridgeErr != nil {
			log.Printf("[remote] bridge: %v", bridgeErr)
		}
		bridge.Disconnect()
	}
	if err != nil {
		log.Fatal(err)
	}
}
