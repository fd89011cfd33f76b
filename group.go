package kinetic

import "strconv"

// TweenerGroup is an ordered, keyed collection of animatables that updates
// as a single unit. Members are added explicitly with [TweenerGroup.Add] or
// created lazily by [TweenerGroup.SetTarget]; a member may itself be another
// group, so whole animation trees fan out from one Update call at the top.
//
// Iteration always follows insertion order. Keys are unique; adding under an
// existing key replaces that member in place.
type TweenerGroup struct {
	// OnMemberUpdate, if set, is invoked after each member's Update during
	// [TweenerGroup.Update] with the member's key and its step result.
	// Compose bookkeeping (dirty marking, settle notifications, metrics)
	// through this hook instead of wrapping the group.
	OnMemberUpdate func(key string, member Animatable, animating bool)

	entries []groupEntry
	index   map[string]int
	nextPos int
}

type groupEntry struct {
	key    string
	member Animatable
}

// NewTweenerGroup creates an empty group.
func NewTweenerGroup() *TweenerGroup {
	return &TweenerGroup{index: make(map[string]int)}
}

// Add registers member under key and returns the key it was stored under.
// An empty key appends positionally: the member is stored under the next
// auto-generated numeric key ("0", "1", ...). Adding under a key that is
// already present replaces that entry's member without moving it.
// Panics if member is nil.
func (g *TweenerGroup) Add(member Animatable, key string) string {
	if member == nil {
		panic("kinetic: cannot add nil member")
	}
	if key == "" {
		// Skip auto keys shadowed by explicit numeric keys.
		for {
			key = strconv.Itoa(g.nextPos)
			g.nextPos++
			if _, taken := g.index[key]; !taken {
				break
			}
		}
	}
	if i, ok := g.index[key]; ok {
		g.entries[i].member = member
		return key
	}
	g.index[key] = len(g.entries)
	g.entries = append(g.entries, groupEntry{key: key, member: member})
	return key
}

// SetTarget animates the member under name toward target. If no member
// exists under name, a new [Tweener] starting at start is created from opts
// (nil means all defaults) and registered first; callers never construct
// leaf tweeners themselves. If the member already exists, only its target
// changes — start and opts are ignored, so in-flight motion is preserved.
//
// The tweener is returned for further configuration. If name refers to a
// nested group rather than a leaf tweener, nothing happens and the result
// is nil.
func (g *TweenerGroup) SetTarget(name string, start, target float64, opts *TweenerOptions) *Tweener {
	if i, ok := g.index[name]; ok {
		tw, ok := g.entries[i].member.(*Tweener)
		if !ok {
			return nil
		}
		tw.SetTarget(target)
		return tw
	}

	var o TweenerOptions
	if opts != nil {
		o = *opts
	}
	if o.Speed == 0 {
		o.Speed = DefaultSpeed
	}
	tw := NewTweener(start, o.Speed, o.Spring)
	if o.Tolerance != 0 {
		tw.Tolerance = o.Tolerance
	}
	tw.OnUpdate = o.OnUpdate
	tw.OnSettled = o.OnSettled
	g.Add(tw, name)
	tw.SetTarget(target)
	return tw
}

// Target returns the target of the leaf tweener under name. The second
// result is false if no member exists under name or the member is a nested
// group.
func (g *TweenerGroup) Target(name string) (float64, bool) {
	if i, ok := g.index[name]; ok {
		if tw, ok := g.entries[i].member.(*Tweener); ok {
			return tw.Target(), true
		}
	}
	return 0, false
}

// Update advances every member one step in insertion order and reports
// whether the group as a whole is still animating: true only if every
// member reported true. An empty group is not animating.
//
// Every member is updated on every call — settled members are cheap no-ops,
// and aggregation never short-circuits.
func (g *TweenerGroup) Update() bool {
	if len(g.entries) == 0 {
		return false
	}
	animating := true
	for _, e := range g.entries {
		r := e.member.Update()
		if g.OnMemberUpdate != nil {
			g.OnMemberUpdate(e.key, e.member, r)
		}
		animating = animating && r
	}
	return animating
}

// Key returns the key under which member is stored, comparing by identity.
// The second result is false if member is not in this group.
func (g *TweenerGroup) Key(member Animatable) (string, bool) {
	for _, e := range g.entries {
		if e.member == member {
			return e.key, true
		}
	}
	return "", false
}

// Member returns the animatable stored under key, or nil if absent.
func (g *TweenerGroup) Member(key string) Animatable {
	if i, ok := g.index[key]; ok {
		return g.entries[i].member
	}
	return nil
}

// Tweener returns the leaf tweener stored under key, or nil if the key is
// absent or names a nested group.
func (g *TweenerGroup) Tweener(key string) *Tweener {
	tw, _ := g.Member(key).(*Tweener)
	return tw
}

// Len returns the number of members.
func (g *TweenerGroup) Len() int {
	return len(g.entries)
}
