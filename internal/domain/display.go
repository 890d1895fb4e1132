package domain

// CharacterInfo is the resolved identity of an avatar.
type CharacterInfo struct {
	Name       string
	Element    string
	ElementKey string
	SideIcon   string
}

type StatLine struct {
	Name  string
	Value string
}

type WeaponRecord struct {
	Name       string
	Level      int
	Refinement int // 0 when the weapon has no refinement
	Rarity     int
	IconURL    string
	MainStat   *StatLine
	SubStat    *StatLine
}

type ArtifactRecord struct {
	Name          string
	Slot          string
	Level         int
	Rarity        int
	MainStatName  string
	MainStatValue string
	IconURL       string
	Substats      []StatLine
}

// DisplayRecord is the presentation projection of one character. It is derived on
// every render and never cached.
type DisplayRecord struct {
	AvatarID       int64
	Name           string
	Element        string
	ElementKey     string
	Level          string
	ThemeColor     string
	ElementIconURL string
	SplashArtURL   string
	IconURL        string
	Constellation  int
	Friendship     int
	BaseStats      []StatLine
	Weapon         *WeaponRecord
	Artifacts      []ArtifactRecord
}

type PlayerHeader struct {
	Nickname     string
	Level        int
	WorldLevel   int
	Signature    string
	Achievements int
	Abyss        string
	IconURL      string
}

// CharacterSummary is one entry of the character selector.
type CharacterSummary struct {
	Index    int
	AvatarID int64
	Name     string
	Element  string
	Level    string
	IconURL  string
}

// ProfileView is what a successful search hands to the renderer.
type ProfileView struct {
	UID        string
	Header     PlayerHeader
	Characters []CharacterSummary
	Document   *ProfileDocument
}
