package gamedata

import "errors"

// WeaponRegistry holds loaded weapon definitions and provides lookup
// utilities.
type WeaponRegistry struct {
	byID    map[string]*WeaponDef
	byGlyph map[rune]*WeaponDef
	all     []WeaponDef
}

// NewWeaponRegistry creates a registry from loaded weapon definitions.
func NewWeaponRegistry(weapons []WeaponDef) *WeaponRegistry {
	registry := &WeaponRegistry{
		byID:    make(map[string]*WeaponDef),
		byGlyph: make(map[rune]*WeaponDef),
		all:     weapons,
	}
	for i := range weapons {
		registry.byID[weapons[i].ID] = &weapons[i]
		registry.byGlyph[weapons[i].GlyphRune()] = &weapons[i]
	}
	return registry
}

// LoadWeaponRegistry loads and creates a registry from the embedded
// weapons.json.
func LoadWeaponRegistry() (*WeaponRegistry, error) {
	weapons, err := LoadWeapons()
	if err != nil {
		return nil, err
	}
	if len(weapons) == 0 {
		return nil, errors.New("no weapons loaded from weapons.json")
	}
	return NewWeaponRegistry(weapons), nil
}

// MustLoadWeaponRegistry loads a registry, panicking on error.
func MustLoadWeaponRegistry() *WeaponRegistry {
	registry, err := LoadWeaponRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the weapon definition with the given ID, or nil.
func (r *WeaponRegistry) GetByID(id string) *WeaponDef {
	return r.byID[id]
}

// GetByGlyph returns the weapon definition with the given glyph, or nil.
func (r *WeaponRegistry) GetByGlyph(glyph rune) *WeaponDef {
	return r.byGlyph[glyph]
}

// All returns all weapon definitions.
func (r *WeaponRegistry) All() []WeaponDef {
	return r.all
}

// Count returns the number of weapon kinds in the registry.
func (r *WeaponRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// SlugRegistry
// =============================================================================

// SlugRegistry holds loaded slug definitions and provides lookup utilities.
type SlugRegistry struct {
	byID    map[string]*SlugDef
	byGlyph map[rune]*SlugDef
	all     []SlugDef
}

// NewSlugRegistry creates a registry from loaded slug definitions.
func NewSlugRegistry(slugs []SlugDef) *SlugRegistry {
	registry := &SlugRegistry{
		byID:    make(map[string]*SlugDef),
		byGlyph: make(map[rune]*SlugDef),
		all:     slugs,
	}
	for i := range slugs {
		registry.byID[slugs[i].ID] = &slugs[i]
		registry.byGlyph[slugs[i].GlyphRune()] = &slugs[i]
	}
	return registry
}

// LoadSlugRegistry loads and creates a registry from the embedded slugs.json.
func LoadSlugRegistry() (*SlugRegistry, error) {
	slugs, err := LoadSlugs()
	if err != nil {
		return nil, err
	}
	if len(slugs) == 0 {
		return nil, errors.New("no slugs loaded from slugs.json")
	}
	return NewSlugRegistry(slugs), nil
}

// MustLoadSlugRegistry loads a registry, panicking on error.
func MustLoadSlugRegistry() *SlugRegistry {
	registry, err := LoadSlugRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the slug definition with the given ID, or nil.
func (r *SlugRegistry) GetByID(id string) *SlugDef {
	return r.byID[id]
}

// GetByGlyph returns the slug definition with the given glyph, or nil.
func (r *SlugRegistry) GetByGlyph(glyph rune) *SlugDef {
	return r.byGlyph[glyph]
}

// All returns all slug definitions.
func (r *SlugRegistry) All() []SlugDef {
	return r.all
}

// Count returns the number of slug kinds in the registry.
func (r *SlugRegistry) Count() int {
	return len(r.all)
}
