package tabletop

import (
	"io"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

const (
	playsheetZ     = -1
	playsheetAsset = "playsheet_black.png"
	donAsset       = "don.png"
	characterAsset = "character.png"
)

// Table is the top-level object: it owns the Donburi world holding every
// card, the camera, input state, the cursor, and the action log, and runs
// one tick per Update.
type Table struct {
	world   donburi.World
	log     *slog.Logger
	camera  *Camera
	assets  *Assets
	cursor  CursorState
	actions ActionQueue
	spawner Spawner
	focused *TextInput
	keys    keyBindings
	rows    []Row

	cardSize    Vec2
	layoutTween float32
	showHUD     bool
	dumpOut     io.Writer
	seq         uint64
	tick        uint64

	// Input state
	pollDevices  bool
	pointer      pointerState
	dragDeadZone float64
	injectQueue  []syntheticPointerEvent
	injectKeys   []Event
	events       []Event
	pickBuf      []pickCandidate
	drawBuf      []drawItem
	runeBuf      []rune
	keyBuf       []ebiten.Key

	tweens     []*TweenGroup
	testRunner *TestRunner
}

// NewTable creates an empty table from cfg: one camera centered on the
// world origin and no entities. Call Setup to deal the opening layout.
func NewTable(cfg Config) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	keys, err := resolveKeyBindings(cfg.Keys)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cardSize := cfg.Table.CardDimensions()
	t := &Table{
		world:        donburi.NewWorld(),
		log:          logger,
		camera:       NewCamera(Rect{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)}),
		assets:       NewAssets(cfg.Table.AssetsDir, logger),
		keys:         keys,
		rows:         DefaultRows(cardSize.Y),
		cardSize:     cardSize,
		layoutTween:  float32(cfg.Table.LayoutTweenSeconds),
		showHUD:      cfg.Window.ShowHUD,
		dumpOut:      os.Stderr,
		dragDeadZone: cfg.Table.DragDeadZone,
	}
	t.subscribeSpawner()
	return t, nil
}

// World returns the Donburi world that owns the table's entities.
func (t *Table) World() donburi.World {
	return t.world
}

// Camera returns the table's single camera.
func (t *Table) Camera() *Camera {
	return t.camera
}

// CardSize returns the width and height of a card sprite.
func (t *Table) CardSize() Vec2 {
	return t.cardSize
}

// SetDumpOutput redirects the debug entity dump (os.Stderr by default).
func (t *Table) SetDumpOutput(w io.Writer) {
	t.dumpOut = w
}

// SpawnCard creates a card with the next creation sequence number. A zero
// spec.Size gets the configured card size.
func (t *Table) SpawnCard(spec CardSpec) donburi.Entity {
	if spec.Size == (Vec2{}) {
		spec.Size = t.cardSize
	}
	t.seq++
	return SpawnCard(t.world, spec, t.seq)
}

// Setup deals the opening table: two playsheets, the configured Don cards
// for Player1 (each logged as a PlayCharacter action), and the configured
// character cards.
func (t *Table) Setup(s SetupConfig) {
	sheet := Sprite{Image: playsheetAsset, Size: Vec2{800, 800}, Color: ColorWhite}
	for _, y := range []float64{-250, 250} {
		tr := NewTransform(0, y, playsheetZ)
		tr.ScaleX, tr.ScaleY = 1.2, 0.45
		SpawnSprite(t.world, sheet, tr)
	}

	for range s.DonCards {
		card := t.SpawnCard(CardSpec{
			Asset:    donAsset,
			Owner:    Player1,
			Zone:     InPlay,
			Role:     DonCard,
			Caps:     DefaultCapabilities | Draggable,
			Position: Vec2{-100, -100},
		})
		t.actions.Enqueue(PlayCharacter{Entity: card})
	}
	for range s.CharacterCards {
		t.SpawnCard(CardSpec{
			Asset: characterAsset,
			Owner: Player1,
			Zone:  InPlay,
			Role:  CharacterCard,
			Caps:  DefaultCapabilities | Draggable,
		})
	}
	t.log.Info("table set up", "don_cards", s.DonCards, "character_cards", s.CharacterCards)
}

// Update runs one tick. Phases run in a fixed order:
//
//  1. collect: pointer and keyboard samples become the tick's events
//  2. cursor: pointer moves update the cursor state
//  3. dispatch: each event goes to the spawner, the focused input, the card
//     handlers, or the key bindings, and card hits are bridged to the ECS
//  4. events: Donburi subscribers run
//  5. animate: layout tweens advance
func (t *Table) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	t.tick++

	if t.testRunner != nil {
		t.testRunner.step(t)
	}

	clear(t.events)
	t.events = t.events[:0]
	t.collectPointer()
	t.collectKeyboard()

	t.updateCursor()
	t.dispatch()
	t.processEvents()
	t.updateTweens(dt)
}

// dispatch routes every collected event exactly once.
func (t *Table) dispatch() {
	for _, ev := range t.events {
		switch ev := ev.(type) {
		case CharEvent, KeyEvent:
			switch {
			case t.focused != nil:
				t.handleTextKey(t.focused, ev)
			case t.spawner.open:
				t.handleSpawnerKey(ev)
			default:
				if k, ok := ev.(KeyEvent); ok {
					t.handleKey(k)
				}
			}
		case PointerMoveEvent:
			// Consumed by the cursor phase.
		default:
			if t.spawner.open {
				t.handleSpawnerPointer(ev)
				continue
			}
			switch ev := ev.(type) {
			case ClickEvent:
				t.handleClick(ev)
			case DragEvent:
				t.handleDrag(ev)
			}
			t.bridgePointer(ev)
		}
	}
}

// processEvents runs Donburi subscribers in a fixed order, so an event
// published by an earlier subscriber is handled in the same tick.
func (t *Table) processEvents() {
	InteractionEventType.ProcessEvents(t.world)
	CardSpawnerOpenEvent.ProcessEvents(t.world)
	TextSubmittedEvent.ProcessEvents(t.world)
	TextCancelledEvent.ProcessEvents(t.world)
	CardSpawnerSelectedEvent.ProcessEvents(t.world)
}

// Tick returns the number of Updates run so far.
func (t *Table) Tick() uint64 {
	return t.tick
}
