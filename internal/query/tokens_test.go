package query

import (
	"reflect"
	"testing"
)

func TestExtractTokensStripsDatesAndFiller(t *testing.T) {
	got := ExtractTokens("2025-10-27 hangtag 작업 했나요?")
	want := []string{"hangtag"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestExtractTokensLowercases(t *testing.T) {
	got := ExtractTokens("HANGTAG 조회")
	if !reflect.DeepEqual(got, []string{"hangtag"}) {
		t.Errorf("expected lowercase token, got %v", got)
	}
}

func TestExtractTokensKeepsLongCodes(t *testing.T) {
	// Codes collide with english stop words once lowercased; length five or
	// more alphanumerics must survive regardless.
	got := ExtractTokens("po12345 수량 알려줘")
	if !reflect.DeepEqual(got, []string{"po12345"}) {
		t.Errorf("expected the order code to survive, got %v", got)
	}

	// "items" is a stop word but also five-plus alphanumerics; code retention
	// wins, matching literal search behavior.
	got = ExtractTokens("items0 확인")
	if !reflect.DeepEqual(got, []string{"items0"}) {
		t.Errorf("got %v", got)
	}
}

func TestExtractTokensSplitsOnPunctuation(t *testing.T) {
	got := ExtractTokens("sticker,label! 내역 보여줘")
	want := []string{"sticker", "label"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestExtractTokensExtraStops(t *testing.T) {
	got := ExtractTokens("한빛 sticker 내역", "한빛")
	if !reflect.DeepEqual(got, []string{"sticker"}) {
		t.Errorf("expected extra stop word to be dropped, got %v", got)
	}
}

func TestExtractTokensEmpty(t *testing.T) {
	for _, text := range []string{"", "수량 알려줘", "2025-10-27"} {
		if got := ExtractTokens(text); len(got) != 0 {
			t.Errorf("%q: expected no tokens, got %v", text, got)
		}
	}
}
