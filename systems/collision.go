package systems

import (
	"slices"

	"github.com/automoto/asteroids/components"
	cfg "github.com/automoto/asteroids/config"
	"github.com/automoto/asteroids/gamemath"
	"github.com/automoto/asteroids/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// UpdateCollisions finds overlapping bodies and resolves the physical
// pairs: asteroid/asteroid, ship/asteroid and asteroid/bullet. Each pair is
// recorded in the contact buffer before it is separated, so damage transfer
// sees it even though the resolver pushed the bodies apart.
//
// Pairs are visited in entity order and every unordered asteroid pair once.
func UpdateCollisions(ecs *ecs.ECS) {
	contacts := components.Contacts.Get(worldEntry(ecs))
	contacts.Pairs = contacts.Pairs[:0]

	for _, a := range sortedEntries(ecs, tags.Asteroid) {
		for _, b := range candidates(a, tags.ResolvAsteroid, tags.ResolvBullet) {
			if b.HasComponent(tags.Asteroid) && b.Entity() <= a.Entity() {
				continue
			}
			collide(contacts, a, b)
		}
	}

	for _, s := range sortedEntries(ecs, tags.Ship) {
		if !components.Ship.Get(s).Collidable() {
			continue
		}
		for _, b := range candidates(s, tags.ResolvAsteroid) {
			collide(contacts, s, b)
		}
	}
}

// collide records and resolves one pair if the bodies overlap. a stays put;
// b is pushed out along the contact normal.
func collide(contacts *components.ContactsData, a, b *donburi.Entry) {
	ta, tb := components.Transform.Get(a), components.Transform.Get(b)
	ra, rb := components.Bounding.Get(a).Radius, components.Bounding.Get(b).Radius
	if !gamemath.Touching(ta.Position, ra, tb.Position, rb) {
		return
	}

	va, vb := components.Velocity.Get(a), components.Velocity.Get(b)
	point, ok := gamemath.IntersectionMidpoint(ta.Position, ra, tb.Position, rb)
	contacts.Pairs = append(contacts.Pairs, components.Contact{
		A:        a,
		B:        b,
		Point:    point,
		HasPoint: ok,
		VelA:     va.Vec2,
		VelB:     vb.Vec2,
	})

	res := gamemath.ResolveElastic(
		gamemath.Body{Pos: ta.Position, Vel: va.Vec2, Radius: ra},
		gamemath.Body{Pos: tb.Position, Vel: vb.Vec2, Radius: rb},
		cfg.Collision.Restitution,
	)
	va.Vec2 = res.VelA
	vb.Vec2 = res.VelB
	tb.Position = res.PosB
}

// candidates returns the live entities sharing a broad phase cell with e
// and carrying one of the given tags, ordered by entity.
func candidates(e *donburi.Entry, resolvTags ...string) []*donburi.Entry {
	obj := components.Object.Get(e)
	check := obj.Check(0, 0, resolvTags...)
	if check == nil {
		return nil
	}

	seen := make(map[donburi.Entity]bool, len(check.Objects))
	out := make([]*donburi.Entry, 0, len(check.Objects))
	for _, o := range check.Objects {
		other, ok := o.Data.(*donburi.Entry)
		if !ok || other == e || !other.Valid() || seen[other.Entity()] {
			continue
		}
		seen[other.Entity()] = true
		out = append(out, other)
	}
	sortByEntity(out)
	return out
}

func sortedEntries(ecs *ecs.ECS, tag donburi.IComponentType) []*donburi.Entry {
	var out []*donburi.Entry
	donburi.NewQuery(filter.Contains(tag)).Each(ecs.World, func(e *donburi.Entry) {
		out = append(out, e)
	})
	sortByEntity(out)
	return out
}

func sortByEntity(entries []*donburi.Entry) {
	slices.SortFunc(entries, func(a, b *donburi.Entry) int {
		switch {
		case a.Entity() < b.Entity():
			return -1
		case a.Entity() > b.Entity():
			return 1
		}
		return 0
	})
}
