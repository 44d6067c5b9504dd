package masters

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextNumber(t *testing.T) {
	no := func(l Ledger) string { return string(l.LedgerNo) }
	tests := []struct {
		name string
		in   []Ledger
		want string
	}{
		{name: "empty", in: nil, want: "1"},
		{name: "max plus one", in: []Ledger{{LedgerNo: "3"}, {LedgerNo: "10"}, {LedgerNo: "7"}}, want: "11"},
		{name: "skips blanks and text", in: []Ledger{{LedgerNo: ""}, {LedgerNo: "A-9"}, {LedgerNo: " 4 "}}, want: "5"},
		{name: "nothing numeric", in: []Ledger{{LedgerNo: "x"}}, want: "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NextNumber(tt.in, no))
		})
	}
}
