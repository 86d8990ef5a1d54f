package engine

import (
	"strings"
	"testing"

	"github.com/Anjani2611/legal-doc-simplifier/model"
)

func TestExtractClausesNumberedSections(t *testing.T) {
	text := "1. The Buyer shall pay the Seller $5,000.\n2. The Seller shall deliver the goods within 10 days.\n3. This agreement terminates on default."

	clauses := ExtractClauses(text)
	if len(clauses) != 3 {
		t.Fatalf("Expected 3 clauses, got %d", len(clauses))
	}

	for i, clause := range clauses {
		wantID := "clause_" + string(rune('1'+i))
		if clause.ID != wantID {
			t.Errorf("Expected id %s, got %s", wantID, clause.ID)
		}
	}
	if !strings.HasPrefix(clauses[0].OriginalText, "1.") {
		t.Errorf("Expected clause text to keep its section marker, got %q", clauses[0].OriginalText)
	}
}

func TestExtractClausesSingleNumberedSectionFallsThrough(t *testing.T) {
	// One numbered marker is not enough to accept the numbered split
	text := "1. The Buyer shall pay the Seller."

	clauses := ExtractClauses(text)
	if len(clauses) != 1 {
		t.Fatalf("Expected 1 clause, got %d", len(clauses))
	}
	if clauses[0].ID != "clause_1" {
		t.Errorf("Expected clause_1, got %s", clauses[0].ID)
	}
}

func TestExtractClausesSentenceBoundary(t *testing.T) {
	text := "The Vendor may disclose data provided that the Client consents. The Vendor retains all records. All records remain confidential."

	clauses := ExtractClauses(text)
	if len(clauses) != 2 {
		t.Fatalf("Expected 2 clauses, got %d", len(clauses))
	}
	if !strings.Contains(clauses[0].OriginalText, "provided that") {
		t.Errorf("Expected first clause to carry the boundary phrase, got %q", clauses[0].OriginalText)
	}
}

func TestExtractClausesEmpty(t *testing.T) {
	if got := ExtractClauses(""); got != nil {
		t.Errorf("Expected nil for empty input, got %v", got)
	}
	if got := ExtractClauses("   \n  "); got != nil {
		t.Errorf("Expected nil for whitespace input, got %v", got)
	}
}

func TestInferClauseType(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"The Buyer shall pay the invoice amount.", model.TypePaymentObligation},
		{"The Vendor shall be liable for all damages and shall indemnify the Client.", model.TypeLiability},
		{"Either party may terminate this agreement upon expiration.", model.TypeTermination},
		{"All proprietary information remains confidential under this non-disclosure agreement.", model.TypeConfidentiality},
		{"The Seller warrants that the goods conform; this warranty is a representation.", model.TypeWarranty},
		{"\"Effective Date\" means the date of signature.", model.TypeDefinition},
		{"The weather was pleasant that afternoon.", model.TypeGeneral},
	}

	for _, tt := range tests {
		if got := inferClauseType(tt.text); got != tt.want {
			t.Errorf("inferClauseType(%q): expected %s, got %s", tt.text, tt.want, got)
		}
	}
}

func TestInferClauseTypeTieBreak(t *testing.T) {
	// One payment hit, one termination hit: payment_obligation is declared
	// earlier so it wins the tie
	got := inferClauseType("Pay before you cancel.")
	if got != model.TypePaymentObligation {
		t.Errorf("Expected payment_obligation on tie, got %s", got)
	}
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("First sentence. Second one! Third? Done.")
	if len(got) != 4 {
		t.Fatalf("Expected 4 sentences, got %d: %v", len(got), got)
	}
	if got[0] != "First sentence." {
		t.Errorf("Expected 'First sentence.', got %q", got[0])
	}
}

func TestSplitSentencesNoBreakOnAbbreviationBeforeLowercase(t *testing.T) {
	// Only a following capital letter after the delimiter closes a sentence
	got := splitSentences("Payment of approx. twelve dollars is due. Next item.")
	if len(got) != 2 {
		t.Fatalf("Expected 2 sentences, got %d: %v", len(got), got)
	}
}
