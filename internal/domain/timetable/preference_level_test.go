package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProlog2Color(t *testing.T) {
	tests := []struct {
		prolog string
		want   string
	}{
		{PrefRequired, "#660099"},
		{PrefStronglyPreferred, "#006600"},
		{PrefPreferred, "#009900"},
		{PrefNeutral, "#ffffff"},
		{PrefDiscouraged, "#cca500"},
		{PrefStronglyDiscouraged, "#ff9900"},
		{PrefProhibited, "#660000"},
		{"nonsense", "#ffffff"},
		{"", "#ffffff"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Prolog2Color(tt.prolog), "prolog %q", tt.prolog)
	}
}
