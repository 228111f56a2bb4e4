package match

import "testing"

func TestNormalizeIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"A@X.com", "a@x.com"},
		{"  a@x.com ", "a@x.com"},
		{"+1 555 01 02", "+15550102"},
		{"\tB@Y.ORG\n", "b@y.org"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeIdentifier(tt.in); got != tt.want {
			t.Fatalf("NormalizeIdentifier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBlocked_RequesterBlockedByCandidate(t *testing.T) {
	t.Parallel()

	blocked := Blocked(
		[]string{"a@x.com"}, nil,
		[]string{"b@y.com"}, []string{"A@X.COM"},
	)
	if !blocked {
		t.Fatal("candidate blocking requester's email must hide both")
	}
}

func TestBlocked_CandidateBlockedByRequester(t *testing.T) {
	t.Parallel()

	blocked := Blocked(
		[]string{"a@x.com"}, []string{" 5550102 "},
		[]string{"5550102"}, nil,
	)
	if !blocked {
		t.Fatal("requester blocking candidate's phone must hide both")
	}
}

func TestBlocked_Symmetric(t *testing.T) {
	t.Parallel()

	aIDs := []string{"a@x.com"}
	aBlocked := []string{"b@y.com"}
	bIDs := []string{"b@y.com"}
	var bBlocked []string

	if !Blocked(aIDs, aBlocked, bIDs, bBlocked) {
		t.Fatal("a's query must exclude b")
	}
	if !Blocked(bIDs, bBlocked, aIDs, aBlocked) {
		t.Fatal("b's query must exclude a")
	}
}

func TestBlocked_NoOverlap(t *testing.T) {
	t.Parallel()

	if Blocked([]string{"a@x.com"}, []string{"c@z.com"}, []string{"b@y.com"}, []string{"d@w.com"}) {
		t.Fatal("unrelated identifiers must not block")
	}
}

func TestBlocked_EmptyIdentifiersNeverMatch(t *testing.T) {
	t.Parallel()

	if Blocked([]string{""}, nil, []string{"b@y.com"}, []string{""}) {
		t.Fatal("empty identifiers must never produce a block")
	}
	if Blocked(nil, nil, nil, nil) {
		t.Fatal("all-empty sets must not block")
	}
	if Blocked([]string{"  "}, []string{"   "}, []string{" "}, []string{"\t"}) {
		t.Fatal("whitespace-only identifiers must never produce a block")
	}
}
