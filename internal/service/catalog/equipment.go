package catalog

import (
	"sort"

	"github.com/kttyan/genshin-build-viewer/internal/domain"
	"github.com/kttyan/genshin-build-viewer/internal/util"
)

const (
	weaponNameFallback   = "武器"
	artifactNameFallback = "聖遺物"
)

// artifactSlotOrder is the canonical display order. Unknown slots go last.
var artifactSlotOrder = []string{
	domain.EquipBracer,
	domain.EquipNecklace,
	domain.EquipShoes,
	domain.EquipRing,
	domain.EquipDress,
}

var artifactSlotNames = map[string]string{
	domain.EquipBracer:   "生の花",
	domain.EquipNecklace: "死の羽",
	domain.EquipShoes:    "時の砂",
	domain.EquipRing:     "空の杯",
	domain.EquipDress:    "理の冠",
}

// FormatWeapon returns the equipped weapon, or nil when none is equipped.
func (c *Catalog) FormatWeapon(equipList []domain.EquipItem) *domain.WeaponRecord {
	for _, item := range equipList {
		if item.Flat.ItemType != domain.ItemTypeWeapon {
			continue
		}

		name, ok := c.text(item.Flat.NameTextMapHash)
		if !ok {
			name = weaponNameFallback
		}

		record := &domain.WeaponRecord{
			Name:    name,
			Rarity:  item.Flat.RankLevel,
			IconURL: IconURL(item.Flat.Icon),
		}
		if item.Weapon != nil {
			record.Level = item.Weapon.Level
			record.Refinement = refinement(item.Weapon.AffixMap)
		}

		stats := item.Flat.WeaponStats
		if len(stats) > 0 {
			main := weaponStatLine(stats[0])
			record.MainStat = &main
		}
		if len(stats) > 1 {
			sub := weaponStatLine(stats[1])
			record.SubStat = &sub
		}
		return record
	}
	return nil
}

// weaponStatLine keeps the value as reported; weapon stats arrive already rounded.
func weaponStatLine(stat domain.StatEntry) domain.StatLine {
	id := stat.PropID()
	value := util.FormatRaw(stat.StatValue)
	if IsPercentStat(id) {
		value += "%"
	}
	return domain.StatLine{Name: StatName(id), Value: value}
}

// refinement converts the zero-based affix level into the 1-5 refinement rank.
func refinement(affixMap map[string]int) int {
	for _, level := range affixMap {
		return level + 1
	}
	return 0
}

// FormatArtifacts returns the equipped artifacts in canonical slot order.
func (c *Catalog) FormatArtifacts(equipList []domain.EquipItem) []domain.ArtifactRecord {
	artifacts := make([]domain.EquipItem, 0, len(artifactSlotOrder))
	for _, item := range equipList {
		if item.Flat.ItemType == domain.ItemTypeReliquary {
			artifacts = append(artifacts, item)
		}
	}

	sort.SliceStable(artifacts, func(i, j int) bool {
		return slotIndex(artifacts[i].Flat.EquipType) < slotIndex(artifacts[j].Flat.EquipType)
	})

	records := make([]domain.ArtifactRecord, 0, len(artifacts))
	for _, item := range artifacts {
		name, ok := c.text(item.Flat.SetNameTextMapHash)
		if !ok {
			name = artifactNameFallback
		}

		record := domain.ArtifactRecord{
			Name:    name,
			Slot:    slotName(item.Flat.EquipType),
			Rarity:  item.Flat.RankLevel,
			IconURL: IconURL(item.Flat.Icon),
		}
		if item.Reliquary != nil {
			// stored levels start at 1 for a +0 artifact
			record.Level = item.Reliquary.Level - 1
		}
		if main := item.Flat.ReliquaryMainstat; main != nil {
			line := artifactStatLine(*main)
			record.MainStatName = line.Name
			record.MainStatValue = line.Value
		}
		for _, sub := range item.Flat.ReliquarySubstats {
			record.Substats = append(record.Substats, artifactStatLine(sub))
		}
		records = append(records, record)
	}
	return records
}

func artifactStatLine(stat domain.StatEntry) domain.StatLine {
	id := stat.PropID()
	if IsPercentStat(id) {
		return domain.StatLine{Name: StatName(id), Value: util.FormatPercent(stat.StatValue)}
	}
	return domain.StatLine{Name: StatName(id), Value: util.FormatGrouped(stat.StatValue)}
}

func slotIndex(equipType string) int {
	for i, slot := range artifactSlotOrder {
		if slot == equipType {
			return i
		}
	}
	return len(artifactSlotOrder)
}

func slotName(equipType string) string {
	if name, ok := artifactSlotNames[equipType]; ok {
		return name
	}
	return equipType
}
