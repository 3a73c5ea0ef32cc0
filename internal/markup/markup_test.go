package markup

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Span
	}{
		{
			name: "plain only",
			text: "Hangi sayı daha büyüktür?",
			want: []Span{{Plain, "Hangi sayı daha büyüktür?"}},
		},
		{
			name: "single emphasis",
			text: "Aşağıdakilerden hangisi **değildir**?",
			want: []Span{
				{Plain, "Aşağıdakilerden hangisi "},
				{Emphasis, "değildir"},
				{Plain, "?"},
			},
		},
		{
			name: "leading emphasis",
			text: "**Her zaman** doğru olan seçenek hangisidir?",
			want: []Span{
				{Emphasis, "Her zaman"},
				{Plain, " doğru olan seçenek hangisidir?"},
			},
		},
		{
			name: "multiple emphasis runs",
			text: "**I.** öncül ve **II.** öncül",
			want: []Span{
				{Emphasis, "I."},
				{Plain, " öncül ve "},
				{Emphasis, "II."},
				{Plain, " öncül"},
			},
		},
		{
			name: "unpaired marker kept literal",
			text: "yarım **kalmış",
			want: []Span{
				{Plain, "yarım "},
				{Plain, "**kalmış"},
			},
		},
		{
			name: "empty emphasis collapses",
			text: "a****b",
			want: []Span{
				{Plain, "a"},
				{Plain, "b"},
			},
		},
		{
			name: "empty string",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
