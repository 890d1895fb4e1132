package catalog

import (
	"github.com/kttyan/genshin-build-viewer/internal/domain"
	"github.com/kttyan/genshin-build-viewer/internal/util"
)

type baseStatDef struct {
	id      string
	name    string
	percent bool
}

// baseStatDefs is the fixed display order of fightPropMap entries.
var baseStatDefs = []baseStatDef{
	{id: "2000", name: "最大HP"},
	{id: "2001", name: "攻撃力"},
	{id: "2002", name: "防御力"},
	{id: "28", name: "元素熟知"},
	{id: "20", name: "会心率", percent: true},
	{id: "22", name: "会心ダメ", percent: true},
	{id: "23", name: "元チャ効率", percent: true},
}

// percentMarkers identify percentage-valued FIGHT_PROP keys.
var percentMarkers = []string{"PERCENT", "CRITICAL", "HURT", "EFFICIENCY"}

var statNames = map[string]string{
	"FIGHT_PROP_BASE_ATTACK":       "基礎攻撃力",
	"FIGHT_PROP_HP":                "HP",
	"FIGHT_PROP_HP_PERCENT":        "HP%",
	"FIGHT_PROP_ATTACK":            "攻撃力",
	"FIGHT_PROP_ATTACK_PERCENT":    "攻撃力%",
	"FIGHT_PROP_DEFENSE":           "防御力",
	"FIGHT_PROP_DEFENSE_PERCENT":   "防御力%",
	"FIGHT_PROP_ELEMENT_MASTERY":   "元素熟知",
	"FIGHT_PROP_CHARGE_EFFICIENCY": "元チャ",
	"FIGHT_PROP_CRITICAL":          "会心率",
	"FIGHT_PROP_CRITICAL_HURT":     "会心ダメ",
	"FIGHT_PROP_HEAL_ADD":          "与える治療効果",
	"FIGHT_PROP_FIRE_ADD_HURT":     "炎バフ",
	"FIGHT_PROP_WATER_ADD_HURT":    "水バフ",
	"FIGHT_PROP_ELEC_ADD_HURT":     "雷バフ",
	"FIGHT_PROP_ICE_ADD_HURT":      "氷バフ",
	"FIGHT_PROP_WIND_ADD_HURT":     "風バフ",
	"FIGHT_PROP_ROCK_ADD_HURT":     "岩バフ",
	"FIGHT_PROP_GRASS_ADD_HURT":    "草バフ",
	"FIGHT_PROP_PHYSICAL_ADD_HURT": "物理バフ",
}

// FormatBaseStats projects the seven headline stats in fixed order. Missing keys count
// as zero; a nil map yields no lines.
func FormatBaseStats(fightProps map[string]float64) []domain.StatLine {
	if fightProps == nil {
		return nil
	}

	lines := make([]domain.StatLine, 0, len(baseStatDefs))
	for _, def := range baseStatDefs {
		value := fightProps[def.id]
		if def.percent {
			lines = append(lines, domain.StatLine{Name: def.name, Value: util.FormatPercent(value * 100)})
			continue
		}
		lines = append(lines, domain.StatLine{Name: def.name, Value: util.FormatGrouped(value)})
	}
	return lines
}

// IsPercentStat reports whether a FIGHT_PROP key carries a percentage.
func IsPercentStat(propID string) bool {
	return util.ContainsAny(propID, percentMarkers...)
}

// StatName returns the display name of a FIGHT_PROP key, or the key itself.
func StatName(propID string) string {
	if name, ok := statNames[propID]; ok {
		return name
	}
	return propID
}
