package tabletop

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// EntityKind distinguishes the kinds of interactive entities on the table.
type EntityKind uint8

const (
	EntityKindCard EntityKind = iota // a playing card
)

// Owner identifies which player a card belongs to.
type Owner uint8

const (
	OwnerNone Owner = iota
	Player1
	Player2
)

func (o Owner) String() string {
	switch o {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	default:
		return "None"
	}
}

// Zone is the table area a card currently occupies.
type Zone uint8

const (
	ZoneNone Zone = iota
	InPlay
	InTrash
	InLifeFaceDown
	InLifeFaceUp
)

func (z Zone) String() string {
	switch z {
	case InPlay:
		return "InPlay"
	case InTrash:
		return "InTrash"
	case InLifeFaceDown:
		return "InLifeFaceDown"
	case InLifeFaceUp:
		return "InLifeFaceUp"
	default:
		return "None"
	}
}

// Role is a card's category. Each role lays out in its own row.
type Role uint8

const (
	RoleNone Role = iota
	CharacterCard
	DonCard
	LeaderCard
)

func (r Role) String() string {
	switch r {
	case CharacterCard:
		return "CharacterCard"
	case DonCard:
		return "DonCard"
	case LeaderCard:
		return "LeaderCard"
	default:
		return "None"
	}
}

// Capability is a bitmask of the interactions a card accepts.
type Capability uint8

const (
	RightClickable Capability = 1 << iota // secondary click toggles tap state
	LeftClickable                         // primary click is delivered to the card
	Draggable                             // drag moves the card
)

// DefaultCapabilities is what every card accepts unless its CardSpec sets Caps.
const DefaultCapabilities = RightClickable | LeftClickable

// Card annotates a table entity with its identity and categorical state.
type Card struct {
	Asset  string
	Kind   EntityKind
	Owner  Owner
	Zone   Zone
	Role   Role
	Caps   Capability
	Tapped bool
	// Seq is the card's creation order on its table; rows sort by it.
	Seq uint64
}

// Has reports whether the card accepts every capability in c.
func (c *Card) Has(caps Capability) bool {
	return c.Caps&caps == caps
}

// Sprite is a drawable image reference. A zero Size means the sprite uses
// its image's native size. Without a positive width and height the sprite
// has no bounds, so it is never hit.
type Sprite struct {
	Image string
	Size  Vec2
	Color Color
}

// Component types registered with Donburi.
var (
	CardComponent      = donburi.NewComponentType[Card]()
	TransformComponent = donburi.NewComponentType[Transform]()
	SpriteComponent    = donburi.NewComponentType[Sprite]()
)

// cardQuery matches every entity that is a card with a placement and sprite.
var cardQuery = donburi.NewQuery(filter.Contains(CardComponent, TransformComponent, SpriteComponent))

// drawableQuery matches everything the renderer draws.
var drawableQuery = donburi.NewQuery(filter.Contains(TransformComponent, SpriteComponent))

// CardSpec describes a card to spawn.
type CardSpec struct {
	Asset    string
	Owner    Owner
	Zone     Zone
	Role     Role
	Caps     Capability
	Position Vec2
	Size     Vec2
}

// SpawnCard creates a card entity in world. seq must be unique per world;
// Table.SpawnCard assigns it.
func SpawnCard(world donburi.World, spec CardSpec, seq uint64) donburi.Entity {
	e := world.Create(CardComponent, TransformComponent, SpriteComponent)
	entry := world.Entry(e)
	caps := spec.Caps
	if caps == 0 {
		caps = DefaultCapabilities
	}
	CardComponent.SetValue(entry, Card{
		Asset: spec.Asset,
		Kind:  EntityKindCard,
		Owner: spec.Owner,
		Zone:  spec.Zone,
		Role:  spec.Role,
		Caps:  caps,
		Seq:   seq,
	})
	TransformComponent.SetValue(entry, NewTransform(spec.Position.X, spec.Position.Y, 0))
	SpriteComponent.SetValue(entry, Sprite{Image: spec.Asset, Size: spec.Size, Color: ColorWhite})
	return e
}

// SpawnSprite creates a non-card drawable, such as a playsheet.
func SpawnSprite(world donburi.World, sprite Sprite, tr Transform) donburi.Entity {
	e := world.Create(TransformComponent, SpriteComponent)
	entry := world.Entry(e)
	TransformComponent.SetValue(entry, tr)
	SpriteComponent.SetValue(entry, sprite)
	return e
}

// cardEntry returns the entry for e if it is still a live card.
func cardEntry(world donburi.World, e donburi.Entity) (*donburi.Entry, bool) {
	if !world.Valid(e) {
		return nil, false
	}
	entry := world.Entry(e)
	if !entry.HasComponent(CardComponent) || !entry.HasComponent(TransformComponent) {
		return nil, false
	}
	return entry, true
}

// MoveToZone changes a card's zone. Leaving play untaps the card, since tap
// state only has meaning in play. Returns false if e is not a card.
func MoveToZone(world donburi.World, e donburi.Entity, zone Zone) bool {
	entry, ok := cardEntry(world, e)
	if !ok {
		return false
	}
	card := CardComponent.Get(entry)
	card.Zone = zone
	if zone != InPlay && card.Tapped {
		card.Tapped = false
		TransformComponent.Get(entry).Rotation = 0
	}
	return true
}

// CardOf returns a copy of e's card data.
func CardOf(world donburi.World, e donburi.Entity) (Card, bool) {
	entry, ok := cardEntry(world, e)
	if !ok {
		return Card{}, false
	}
	return *CardComponent.Get(entry), true
}

// TransformOf returns a copy of e's transform.
func TransformOf(world donburi.World, e donburi.Entity) (Transform, bool) {
	if !world.Valid(e) {
		return Transform{}, false
	}
	entry := world.Entry(e)
	if !entry.HasComponent(TransformComponent) {
		return Transform{}, false
	}
	return *TransformComponent.Get(entry), true
}
