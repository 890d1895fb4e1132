package catalog

import (
	"fmt"
	"strings"

	"github.com/kttyan/genshin-build-viewer/internal/constants"
	"github.com/kttyan/genshin-build-viewer/internal/domain"
)

const (
	playerBoyIcon   = "UI_AvatarIcon_PlayerBoy"
	playerBoySplash = "UI_Gacha_AvatarImg_PlayerBoy"
)

// elementSlugs accepts display labels, internal codes and global names.
var elementSlugs = map[string]string{
	"炎": "pyro", "水": "hydro", "風": "anemo", "雷": "electro",
	"氷": "cryo", "岩": "geo", "草": "dendro",

	"Fire": "pyro", "Water": "hydro", "Wind": "anemo", "Electric": "electro",
	"Ice": "cryo", "Rock": "geo", "Grass": "dendro",

	"Pyro": "pyro", "Hydro": "hydro", "Anemo": "anemo", "Electro": "electro",
	"Cryo": "cryo", "Geo": "geo", "Dendro": "dendro",
}

// IconURL builds an asset URL from an icon name, or "" for an empty name.
func IconURL(iconName string) string {
	if iconName == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s.png", constants.APIConfig.AssetBaseURL, iconName)
}

// ElementIconURL returns "" for elements without an icon.
func ElementIconURL(element string) string {
	slug, ok := elementSlugs[element]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s/%s.png", constants.ElementIconConfig.BaseURL, slug)
}

// SplashArtURL tries the explicit splash name, then derives the gacha art from the
// side icon or the plain icon, and finally falls back to the default traveler.
func (c *Catalog) SplashArtURL(avatarID int64) string {
	meta, ok := c.tables.Character(avatarID)
	if !ok {
		return IconURL(playerBoySplash)
	}
	if meta.SplashIconName != "" {
		return IconURL(meta.SplashIconName)
	}

	var base string
	switch {
	case meta.SideIconName != "":
		base = strings.TrimPrefix(meta.SideIconName, "UI_AvatarIcon_Side_")
	case meta.IconName != "":
		base = strings.TrimPrefix(meta.IconName, "UI_AvatarIcon_")
	}
	if base == "" {
		return IconURL(playerBoySplash)
	}
	return IconURL("UI_Gacha_AvatarImg_" + base)
}

// CharacterIconURL returns the round selector icon of a character.
func (c *Catalog) CharacterIconURL(avatarID int64) string {
	iconName := playerBoyIcon
	if meta, ok := c.tables.Character(avatarID); ok {
		switch {
		case meta.SideIconName != "":
			iconName = strings.Replace(meta.SideIconName, "_Side", "", 1)
		case meta.IconName != "":
			iconName = meta.IconName
		}
	}
	return IconURL(iconName)
}

// ProfileIconURL resolves the player's profile picture.
func (c *Catalog) ProfileIconURL(picture *domain.ProfilePicture) string {
	switch {
	case picture == nil:
		return IconURL(playerBoyIcon)
	case picture.AvatarID != 0:
		return c.CharacterIconURL(picture.AvatarID)
	case picture.ID != 0:
		return IconURL(fmt.Sprintf("UI_AvatarIcon_Item_%d", picture.ID))
	default:
		return IconURL(playerBoyIcon)
	}
}
