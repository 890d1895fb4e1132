package catalog

import (
	"fmt"

	"github.com/kttyan/genshin-build-viewer/internal/domain"
)

const (
	elementUnknownLabel = "？"
	elementUnknownKey   = "Unknown"
	elementNoneKey      = "None"
)

var elementLabels = map[string]string{
	"Ice":      "氷",
	"Fire":     "炎",
	"Electric": "雷",
	"Wind":     "風",
	"Water":    "水",
	"Grass":    "草",
	"Rock":     "岩",
}

// LookupCharacter never fails: unknown avatars get a placeholder naming the id.
func (c *Catalog) LookupCharacter(avatarID int64) domain.CharacterInfo {
	meta, ok := c.tables.Character(avatarID)
	if !ok {
		return domain.CharacterInfo{
			Name:       fmt.Sprintf("未登録(%d)", avatarID),
			Element:    elementUnknownLabel,
			ElementKey: elementUnknownKey,
		}
	}

	name, ok := c.text(meta.NameTextMapHash)
	if !ok {
		name = fmt.Sprintf("キャラ(%d)", avatarID)
	}

	key := meta.Element
	if key == "" {
		key = elementNoneKey
	}

	return domain.CharacterInfo{
		Name:       name,
		Element:    ElementLabel(key),
		ElementKey: key,
		SideIcon:   meta.SideIconName,
	}
}

// ElementLabel maps an element code to its display label; unknown codes pass through.
func ElementLabel(code string) string {
	if label, ok := elementLabels[code]; ok {
		return label
	}
	return code
}
