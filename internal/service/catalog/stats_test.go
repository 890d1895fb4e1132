package catalog

import "testing"

func TestFormatBaseStatsFixedOrder(t *testing.T) {
	props := map[string]float64{
		"23":   1.456,
		"20":   0.331,
		"2001": 1876.2,
		"28":   998.7,
		"2000": 12345.9,
		"22":   1.2,
		"2002": 812.4,
		"1":    99999,
	}

	lines := FormatBaseStats(props)
	want := []struct{ name, value string }{
		{"最大HP", "12,345"},
		{"攻撃力", "1,876"},
		{"防御力", "812"},
		{"元素熟知", "998"},
		{"会心率", "33.1%"},
		{"会心ダメ", "120.0%"},
		{"元チャ効率", "145.6%"},
	}

	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i, w := range want {
		if lines[i].Name != w.name || lines[i].Value != w.value {
			t.Fatalf("line %d = %+v, want %s %s", i, lines[i], w.name, w.value)
		}
	}
}

func TestFormatBaseStatsMissingKeys(t *testing.T) {
	lines := FormatBaseStats(map[string]float64{})
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d", len(lines))
	}
	if lines[0].Value != "0" || lines[4].Value != "0.0%" {
		t.Fatalf("missing stats should render as zero: %+v", lines)
	}
	if FormatBaseStats(nil) != nil {
		t.Fatalf("nil map should give no lines")
	}
}

func TestIsPercentStat(t *testing.T) {
	percent := []string{
		"FIGHT_PROP_ATTACK_PERCENT",
		"FIGHT_PROP_CRITICAL",
		"FIGHT_PROP_CRITICAL_HURT",
		"FIGHT_PROP_CHARGE_EFFICIENCY",
		"FIGHT_PROP_GRASS_ADD_HURT",
	}
	for _, id := range percent {
		if !IsPercentStat(id) {
			t.Fatalf("%s should be a percentage", id)
		}
	}
	for _, id := range []string{"FIGHT_PROP_BASE_ATTACK", "FIGHT_PROP_HP", "FIGHT_PROP_ELEMENT_MASTERY"} {
		if IsPercentStat(id) {
			t.Fatalf("%s should be flat", id)
		}
	}
}

func TestStatNameFallsBackToKey(t *testing.T) {
	if StatName("FIGHT_PROP_CRITICAL_HURT") != "会心ダメ" {
		t.Fatalf("unexpected name")
	}
	if StatName("FIGHT_PROP_NEW_THING") != "FIGHT_PROP_NEW_THING" {
		t.Fatalf("unknown key should pass through")
	}
}
