package include

import (
	"reflect"
	"testing"
)

func TestParseLineSpec(t *testing.T) {
	cases := []struct {
		spec    string
		total   int
		want    []int
		wantErr bool
	}{
		{spec: "3", total: 10, want: []int{3}},
		{spec: "1,4-6", total: 10, want: []int{1, 4, 5, 6}},
		{spec: "4-6,1", total: 10, want: []int{4, 5, 6, 1}},
		{spec: "-3", total: 10, want: []int{1, 2, 3}},
		{spec: "7-", total: 10, want: []int{7, 8, 9, 10}},
		{spec: "7-", total: 5, want: nil}, // open end clamps to an empty selection
		{spec: "2-20", total: 5, want: []int{2, 3, 4, 5}},
		{spec: " 2 , 4 - 5 ", total: 10, want: []int{2, 4, 5}},
		{spec: "5-5", total: 10, want: []int{5}},
		{spec: "", total: 10, wantErr: true},
		{spec: "1,,3", total: 10, wantErr: true},
		{spec: "0", total: 10, wantErr: true},
		{spec: "0-3", total: 10, wantErr: true},
		{spec: "5-3", total: 10, wantErr: true},
		{spec: "a-b", total: 10, wantErr: true},
		{spec: "x", total: 10, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.spec, func(t *testing.T) {
			got, err := ParseLineSpec(tc.spec, tc.total)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLineSpec(%q, %d) failed: %v", tc.spec, tc.total, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseLineSpec(%q, %d) = %v, want %v", tc.spec, tc.total, got, tc.want)
			}
		})
	}
}
