package domain

import (
	"reflect"
	"testing"
)

func TestExclusionSet_Apply(t *testing.T) {
	token := "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	set := NewExclusionSet(map[string][]string{
		token: {"0x000000000000000000000000000000000000DEAD"},
	})

	tests := []struct {
		name  string
		token string
		in    []string
		want  []string
	}{
		{
			name:  "removes one occurrence only",
			token: token,
			in:    []string{"0x000000000000000000000000000000000000dead", "0x1", "0x000000000000000000000000000000000000dead"},
			want:  []string{"0x1", "0x000000000000000000000000000000000000dead"},
		},
		{
			name:  "absent address is a no-op",
			token: token,
			in:    []string{"0x1", "0x2"},
			want:  []string{"0x1", "0x2"},
		},
		{
			name:  "other tokens unaffected",
			token: "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
			in:    []string{"0x000000000000000000000000000000000000dead", "0x1"},
			want:  []string{"0x000000000000000000000000000000000000dead", "0x1"},
		},
		{
			name:  "token key matching is case-insensitive",
			token: "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
			in:    []string{"0x000000000000000000000000000000000000dead"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := set.Apply(tt.token, tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply(%s, %v) = %v, want %v", tt.token, tt.in, got, tt.want)
			}
		})
	}
}
