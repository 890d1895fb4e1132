package domain

// CharacterMeta is one row of characters.json.
type CharacterMeta struct {
	Element         string   `json:"Element"`
	NameTextMapHash TextHash `json:"NameTextMapHash"`
	SideIconName    string   `json:"SideIconName"`
	IconName        string   `json:"IconName"`
	SplashIconName  string   `json:"SplashIconName"`
	QualityType     string   `json:"QualityType"`
	WeaponType      string   `json:"WeaponType"`
	Consts          []string `json:"Consts"`
}

// ReferenceTables holds the static lookup data. It is built once and never
// modified afterwards, so it is safe for concurrent reads.
type ReferenceTables struct {
	characters map[string]CharacterMeta
	texts      map[string]string
}

// NewReferenceTables takes ownership of both maps. Nil maps become empty tables.
func NewReferenceTables(characters map[string]CharacterMeta, texts map[string]string) *ReferenceTables {
	if characters == nil {
		characters = map[string]CharacterMeta{}
	}
	if texts == nil {
		texts = map[string]string{}
	}
	return &ReferenceTables{characters: characters, texts: texts}
}

// EmptyReferenceTables is the degraded state used when nothing could be loaded.
func EmptyReferenceTables() *ReferenceTables {
	return NewReferenceTables(nil, nil)
}

func (t *ReferenceTables) Character(avatarID int64) (CharacterMeta, bool) {
	if t == nil {
		return CharacterMeta{}, false
	}
	meta, ok := t.characters[AvatarKey(avatarID)]
	return meta, ok
}

// Text resolves a localization hash. Empty hashes and empty strings are misses.
func (t *ReferenceTables) Text(hash TextHash) (string, bool) {
	if t == nil || hash == "" {
		return "", false
	}
	text, ok := t.texts[string(hash)]
	if !ok || text == "" {
		return "", false
	}
	return text, true
}

func (t *ReferenceTables) CharacterCount() int {
	if t == nil {
		return 0
	}
	return len(t.characters)
}

func (t *ReferenceTables) TextCount() int {
	if t == nil {
		return 0
	}
	return len(t.texts)
}
