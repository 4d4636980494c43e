package cvl

import (
	"strings"
	"testing"
)

func TestSplitKeys(t *testing.T) {
	cases := []struct {
		name     string
		line     string
		keys     []string
		warnings int
	}{
		{
			name: "simple names",
			line: "numVoted Voted",
			keys: []string{"numVoted", "Voted"},
		},
		{
			name: "keyed hook with whitespace payload",
			line: "numVoted HookSstore:_hasVoted[KEY address voter]",
			keys: []string{"numVoted", "HookSstore:_hasVoted[KEY address voter]"},
		},
		{
			name: "payload with accessor chain",
			line: "HookSstore:votes[INDEX uint256 i].to(offset 32) Voted",
			keys: []string{"HookSstore:votes[INDEX uint256 i].to(offset 32)", "Voted"},
		},
		{
			name:     "unclosed bracket",
			line:     "HookSstore:voted[INDEX uint256 i numVoted",
			keys:     []string{"uint256", "i", "numVoted"},
			warnings: 2,
		},
		{
			name: "extra whitespace",
			line: "  foo   bar  ",
			keys: []string{"foo", "bar"},
		},
		{
			name: "empty",
			line: "",
			keys: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			keys, warnings := SplitKeys(tc.line)
			if len(keys) != len(tc.keys) {
				t.Fatalf("expected keys %v, got %v", tc.keys, keys)
			}
			for i := range tc.keys {
				if keys[i] != tc.keys[i] {
					t.Fatalf("expected keys %v, got %v", tc.keys, keys)
				}
			}
			if len(warnings) != tc.warnings {
				t.Fatalf("expected %d warnings, got %d: %v", tc.warnings, len(warnings), warnings)
			}
		})
	}
}

func TestSplitKeysUnclosedBracketWarning(t *testing.T) {
	_, warnings := SplitKeys("HookSstore:voted[INDEX uint256 i numVoted")
	if len(warnings) == 0 || !strings.Contains(warnings[0], "unclosed ]") {
		t.Fatalf("expected unclosed bracket warning, got %v", warnings)
	}
}

func TestParseID(t *testing.T) {
	cases := []struct {
		key     string
		want    ElementID
		wantErr bool
	}{
		{key: "onlyLegalVoterCanVote", want: ElementID{Kind: KindAny, Key: "onlyLegalVoterCanVote"}},
		{key: "methods", want: ElementID{Kind: KindAny, Key: "methods"}},
		{key: "Rule:totalVotesMonotone", want: ElementID{Kind: KindRule, Key: "totalVotesMonotone"}},
		{key: "HookOpcode:GASPRICE", want: ElementID{Kind: KindHookOpcode, Key: "GASPRICE"}},
		{
			key:  "HookSstore:_hasVoted[KEY address voter]",
			want: ElementID{Kind: KindHookSstore, Key: "_hasVoted[KEY address voter]"},
		},
		{key: "Bogus:name", wantErr: true},
		{key: "Rule:with:extra", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			id, err := ParseID(tc.key)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.key)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%q) failed: %v", tc.key, err)
			}
			if id != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, id)
			}
		})
	}
}

func TestParseIDsPropagatesKindErrors(t *testing.T) {
	_, _, err := ParseIDs("good Bogus:name")
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
