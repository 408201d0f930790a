package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    int
		wantErr bool
	}{
		{name: "simple", arg: "7", want: 7},
		{name: "zero", arg: "0", want: 0},
		{name: "negative", arg: "-1", wantErr: true},
		{name: "not a number", arg: "seven", wantErr: true},
		{name: "empty", arg: "", wantErr: true},
		{name: "trailing garbage", arg: "7x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseID(tt.arg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
