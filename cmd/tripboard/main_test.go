package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectEventLookupArgs(t *testing.T) {
	t.Parallel()

	const id = "6f1c2a4e-8a9b-4b55-9a51-0c1d2e3f4a5b"

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"tripboard"},
			want: []string{"tripboard"},
		},
		{
			name: "direct event id first token",
			in:   []string{"tripboard", id},
			want: []string{"tripboard", "events", "show", id},
		},
		{
			name: "direct event id after value flag",
			in:   []string{"tripboard", "--dir", "./tmp-board", id},
			want: []string{"tripboard", "--dir", "./tmp-board", "events", "show", id},
		},
		{
			name: "direct event id after equals flag",
			in:   []string{"tripboard", "--dir=./tmp-board", id},
			want: []string{"tripboard", "--dir=./tmp-board", "events", "show", id},
		},
		{
			name: "direct event id after bool flag",
			in:   []string{"tripboard", "--pretty", id},
			want: []string{"tripboard", "--pretty", "events", "show", id},
		},
		{
			name: "direct event id after double dash",
			in:   []string{"tripboard", "--format", "text", "--", id},
			want: []string{"tripboard", "--format", "text", "--", "events", "show", id},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"tripboard", "events", "show", id},
			want: []string{"tripboard", "events", "show", id},
		},
		{
			name: "non-uuid token not rewritten",
			in:   []string{"tripboard", "wat"},
			want: []string{"tripboard", "wat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectEventLookupArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewrite(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
