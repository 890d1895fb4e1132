package catalog

import (
	"fmt"

	"github.com/kttyan/genshin-build-viewer/internal/domain"
)

// BuildDisplayRecord derives the full detail view of one character.
func (c *Catalog) BuildDisplayRecord(avatar domain.AvatarInfo) *domain.DisplayRecord {
	info := c.LookupCharacter(avatar.AvatarID)

	record := &domain.DisplayRecord{
		AvatarID:       avatar.AvatarID,
		Name:           info.Name,
		Element:        info.Element,
		ElementKey:     info.ElementKey,
		Level:          avatar.Level(),
		ThemeColor:     ElementTheme(info.Element),
		ElementIconURL: ElementIconURL(info.Element),
		SplashArtURL:   c.SplashArtURL(avatar.AvatarID),
		IconURL:        c.CharacterIconURL(avatar.AvatarID),
		Constellation:  len(avatar.TalentIDList),
		BaseStats:      FormatBaseStats(avatar.FightPropMap),
		Weapon:         c.FormatWeapon(avatar.EquipList),
		Artifacts:      c.FormatArtifacts(avatar.EquipList),
	}
	if avatar.FetterInfo != nil {
		record.Friendship = avatar.FetterInfo.ExpLevel
	}
	return record
}

// BuildPlayerHeader summarizes playerInfo. A nil block yields an anonymous header.
func (c *Catalog) BuildPlayerHeader(player *domain.PlayerInfo) domain.PlayerHeader {
	if player == nil {
		return domain.PlayerHeader{IconURL: c.ProfileIconURL(nil)}
	}

	header := domain.PlayerHeader{
		Nickname:     player.Nickname,
		Level:        player.Level,
		WorldLevel:   player.WorldLevel,
		Signature:    player.Signature,
		Achievements: player.FinishAchievementNum,
		IconURL:      c.ProfileIconURL(player.ProfilePicture),
	}
	if player.TowerFloorIndex > 0 {
		header.Abyss = fmt.Sprintf("%d-%d", player.TowerFloorIndex, player.TowerLevelIndex)
	}
	return header
}

// BuildSelector lists the showcased characters in document order.
func (c *Catalog) BuildSelector(avatars []domain.AvatarInfo) []domain.CharacterSummary {
	summaries := make([]domain.CharacterSummary, 0, len(avatars))
	for i, avatar := range avatars {
		info := c.LookupCharacter(avatar.AvatarID)
		summaries = append(summaries, domain.CharacterSummary{
			Index:    i,
			AvatarID: avatar.AvatarID,
			Name:     info.Name,
			Element:  info.Element,
			Level:    avatar.Level(),
			IconURL:  c.CharacterIconURL(avatar.AvatarID),
		})
	}
	return summaries
}
