package adapter

import (
	"strings"
	"testing"

	"github.com/kttyan/genshin-build-viewer/internal/domain"
)

func TestFormatSearchFailureIsGeneric(t *testing.T) {
	f := NewResponseFormatter("")
	got := f.FormatSearchFailure()
	if !strings.Contains(got, "データが見つかりませんでした。ゲーム内で詳細を表示設定にしているか確認してください。") {
		t.Fatalf("unexpected failure message: %q", got)
	}
}

func TestFormatProfile(t *testing.T) {
	f := NewResponseFormatter("")
	view := &domain.ProfileView{
		UID: "801630705",
		Header: domain.PlayerHeader{
			Nickname:   "Traveler",
			Level:      60,
			WorldLevel: 9,
			Signature:  "hello",
			Abyss:      "12-3",
		},
		Characters: []domain.CharacterSummary{
			{Index: 0, Name: "ナヒーダ", Element: "草", Level: "90"},
			{Index: 1, Name: "胡桃", Element: "炎", Level: "80"},
		},
	}

	got := f.FormatProfile(view, 1)
	for _, want := range []string{
		"Traveler (UID: 801630705)",
		"冒険ランク 60 / 世界ランク 9",
		"💬 hello",
		"深境螺旋 12-3",
		"キャラクター (2人)",
		"  1. ナヒーダ [草] Lv.90",
		"▶ 2. 胡桃 [炎] Lv.80",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("profile output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "アチーブメント") {
		t.Fatalf("zero achievements should be omitted:\n%s", got)
	}
}

func TestFormatCharacterDetail(t *testing.T) {
	f := NewResponseFormatter("")
	record := &domain.DisplayRecord{
		Name:          "ナヒーダ",
		Element:       "草",
		Level:         "90",
		Constellation: 2,
		BaseStats: []domain.StatLine{
			{Name: "最大HP", Value: "17,000"},
			{Name: "会心率", Value: "50.0%"},
		},
		Weapon: &domain.WeaponRecord{
			Name:       "千夜に浮かぶ夢",
			Level:      90,
			Refinement: 1,
			MainStat:   &domain.StatLine{Name: "基礎攻撃力", Value: "542"},
		},
		Artifacts: []domain.ArtifactRecord{
			{
				Name: "深林の記憶", Slot: "生の花", Level: 20,
				MainStatName: "HP", MainStatValue: "4,780",
				Substats: []domain.StatLine{{Name: "会心ダメ", Value: "21.8%"}},
			},
		},
	}

	got := f.FormatCharacterDetail(record)
	for _, want := range []string{
		"ナヒーダ [草] Lv.90  C2",
		"最大HP: 17,000",
		"会心率: 50.0%",
		"千夜に浮かぶ夢 Lv.90 R1",
		"基礎攻撃力 542",
		"[生の花] 深林の記憶 +20  HP 4,780",
		"会心ダメ 21.8%",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("detail output missing %q:\n%s", want, got)
		}
	}
}

func TestFormatCharacterDetailWithoutWeapon(t *testing.T) {
	f := NewResponseFormatter("")
	got := f.FormatCharacterDetail(&domain.DisplayRecord{Name: "旅人", Level: "?"})
	if !strings.Contains(got, "武器情報なし") {
		t.Fatalf("expected no-weapon message:\n%s", got)
	}
	if !strings.Contains(got, "聖遺物なし") {
		t.Fatalf("expected no-artifact message:\n%s", got)
	}
}

func TestFormatHelpUsesPrefix(t *testing.T) {
	got := NewResponseFormatter("/").FormatHelp()
	if !strings.Contains(got, "/search [UID]") || !strings.Contains(got, "/exit") {
		t.Fatalf("unexpected help:\n%s", got)
	}
}
