package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Item types and equip slots as reported in equipList[].flat.
const (
	ItemTypeWeapon    = "ITEM_WEAPON"
	ItemTypeReliquary = "ITEM_RELIQUARY"

	EquipBracer   = "EQUIP_BRACER"
	EquipNecklace = "EQUIP_NECKLACE"
	EquipShoes    = "EQUIP_SHOES"
	EquipRing     = "EQUIP_RING"
	EquipDress    = "EQUIP_DRESS"
)

// PropLevel is the propMap key holding the character level.
const PropLevel = "4001"

// ProfileDocument is the normalized body of GET /api/uid/<uid>.
type ProfileDocument struct {
	PlayerInfo     *PlayerInfo  `json:"playerInfo"`
	AvatarInfoList []AvatarInfo `json:"avatarInfoList"`
	TTL            int          `json:"ttl"`
	UID            string       `json:"uid"`
}

// HasCharacters reports whether the showcase exposes any character details.
func (d *ProfileDocument) HasCharacters() bool {
	return d != nil && len(d.AvatarInfoList) > 0
}

type PlayerInfo struct {
	Nickname             string          `json:"nickname"`
	Level                int             `json:"level"`
	Signature            string          `json:"signature"`
	WorldLevel           int             `json:"worldLevel"`
	NameCardID           int64           `json:"nameCardId"`
	FinishAchievementNum int             `json:"finishAchievementNum"`
	TowerFloorIndex      int             `json:"towerFloorIndex"`
	TowerLevelIndex      int             `json:"towerLevelIndex"`
	ProfilePicture       *ProfilePicture `json:"profilePicture"`
}

// ProfilePicture references either a character (AvatarID) or a standalone icon (ID).
type ProfilePicture struct {
	AvatarID int64 `json:"avatarId"`
	ID       int64 `json:"id"`
}

type AvatarInfo struct {
	AvatarID      int64              `json:"avatarId"`
	PropMap       map[string]Prop    `json:"propMap"`
	FightPropMap  map[string]float64 `json:"fightPropMap"`
	TalentIDList  []int64            `json:"talentIdList"`
	SkillLevelMap map[string]int     `json:"skillLevelMap"`
	EquipList     []EquipItem        `json:"equipList"`
	FetterInfo    *FetterInfo        `json:"fetterInfo"`
}

// Level returns the displayed character level, "?" when absent.
func (a AvatarInfo) Level() string {
	if prop, ok := a.PropMap[PropLevel]; ok && prop.Val != "" {
		return prop.Val
	}
	return "?"
}

type Prop struct {
	Type int    `json:"type"`
	Ival string `json:"ival"`
	Val  string `json:"val"`
}

type FetterInfo struct {
	ExpLevel int `json:"expLevel"`
}

type EquipItem struct {
	ItemID    int64          `json:"itemId"`
	Weapon    *WeaponData    `json:"weapon"`
	Reliquary *ReliquaryData `json:"reliquary"`
	Flat      EquipFlat      `json:"flat"`
}

type WeaponData struct {
	Level        int            `json:"level"`
	PromoteLevel int            `json:"promoteLevel"`
	AffixMap     map[string]int `json:"affixMap"`
}

type ReliquaryData struct {
	Level      int   `json:"level"`
	MainPropID int64 `json:"mainPropId"`
}

type EquipFlat struct {
	NameTextMapHash    TextHash    `json:"nameTextMapHash"`
	SetNameTextMapHash TextHash    `json:"setNameTextMapHash"`
	RankLevel          int         `json:"rankLevel"`
	ItemType           string      `json:"itemType"`
	EquipType          string      `json:"equipType"`
	Icon               string      `json:"icon"`
	ReliquaryMainstat  *StatEntry  `json:"reliquaryMainstat"`
	ReliquarySubstats  []StatEntry `json:"reliquarySubstats"`
	WeaponStats        []StatEntry `json:"weaponStats"`
}

// StatEntry covers main stats (mainPropId) and weapon/sub stats (appendPropId).
type StatEntry struct {
	MainPropID   string  `json:"mainPropId"`
	AppendPropID string  `json:"appendPropId"`
	StatValue    float64 `json:"statValue"`
}

func (s StatEntry) PropID() string {
	if s.MainPropID != "" {
		return s.MainPropID
	}
	return s.AppendPropID
}

// TextHash is a localization key. The API sends it as a string in profiles and as a
// number in the reference tables, so both encodings are accepted.
type TextHash string

func (h *TextHash) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*h = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*h = TextHash(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("text hash: %w", err)
	}
	*h = TextHash(num.String())
	return nil
}

func (h TextHash) String() string {
	return string(h)
}

// AvatarKey converts a numeric avatar id into the reference table key.
func AvatarKey(avatarID int64) string {
	return strconv.FormatInt(avatarID, 10)
}
