package detect

import "testing"

func TestMatchCaseInsensitive(t *testing.T) {
	word, ok := Match("Mua ngay SPAM giá rẻ", []string{"casino", "spam"})
	if !ok {
		t.Fatal("expected a match")
	}
	if word != "spam" {
		t.Fatalf("expected matched word spam, got %q", word)
	}
}

func TestMatchReturnsFirstByListOrder(t *testing.T) {
	word, ok := Match("casino and spam", []string{"spam", "casino"})
	if !ok || word != "spam" {
		t.Fatalf("expected first listed word, got %q ok=%v", word, ok)
	}
}

func TestMatchInsideLargerWord(t *testing.T) {
	// Substring containment is intentional policy, not word-boundary search.
	if _, ok := Match("despamify", []string{"spam"}); !ok {
		t.Fatal("expected embedded word to match")
	}
}

func TestMatchPreservesStoredCase(t *testing.T) {
	word, ok := Match("toàn quảng cáo", []string{"Quảng Cáo"})
	if !ok || word != "Quảng Cáo" {
		t.Fatalf("expected stored casing back, got %q ok=%v", word, ok)
	}
}

func TestMatchSkipsBlankWords(t *testing.T) {
	if _, ok := Match("anything", []string{"", "   "}); ok {
		t.Fatal("blank words must never match")
	}
}

func TestMatchEmptyInputs(t *testing.T) {
	if _, ok := Match("", []string{"spam"}); ok {
		t.Fatal("empty text must not match")
	}
	if _, ok := Match("text", nil); ok {
		t.Fatal("empty word list must not match")
	}
}
