package connectivity_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/FrenchMajesty/connectivity/pkg/connectivity"
	"github.com/FrenchMajesty/connectivity/pkg/pairs"
	"github.com/FrenchMajesty/connectivity/pkg/testutil"
	"github.com/FrenchMajesty/connectivity/pkg/unionfind"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinyUF = `10
4 3
3 8
6 5
9 4
2 1
8 9
5 0
7 2
6 1
1 0
6 7
`

func TestRun_TinyStream(t *testing.T) {
	want := []pairs.Pair{
		{P: 4, Q: 3}, {P: 3, Q: 8}, {P: 6, Q: 5}, {P: 9, Q: 4}, {P: 2, Q: 1},
		{P: 5, Q: 0}, {P: 7, Q: 2}, {P: 6, Q: 1},
	}

	for _, v := range unionfind.Variants() {
		t.Run(string(v), func(t *testing.T) {
			logger := &testutil.RecordingLogger{}
			var joined []pairs.Pair

			res, err := connectivity.Run(context.Background(),
				connectivity.Config{Variant: v, Logger: logger.Logf},
				strings.NewReader(tinyUF),
				func(p pairs.Pair) { joined = append(joined, p) })
			require.NoError(t, err)

			assert.Equal(t, want, joined)
			assert.Equal(t, v, res.Variant)
			assert.Equal(t, 10, res.Sites)
			assert.Equal(t, 11, res.Pairs)
			assert.Equal(t, 8, res.Joined)
			assert.Equal(t, 2, res.Components)

			_, err = uuid.Parse(res.RunID)
			assert.NoError(t, err)

			lines := logger.Lines()
			require.Len(t, lines, 9)
			assert.Equal(t, "4 3", lines[0])
			assert.Equal(t, "2 components", lines[8])
		})
	}
}

func TestRun_DefaultsToWeighted(t *testing.T) {
	res, err := connectivity.Run(context.Background(), connectivity.Config{}, strings.NewReader("4\n0 1\n2 3\n1 2\n"), nil)
	require.NoError(t, err)

	assert.Equal(t, unionfind.WeightedVariant, res.Variant)
	assert.Equal(t, 1, res.Components)
	assert.Equal(t, 3, res.Joined)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		variant unionfind.Variant
		wantErr error
	}{
		{name: "empty input", input: "", wantErr: pairs.ErrMissingHeader},
		{name: "zero sites", input: "0\n", wantErr: unionfind.ErrInvalidArgument},
		{name: "negative sites", input: "-3\n", wantErr: unionfind.ErrInvalidArgument},
		{name: "oversized header", input: "4611686018427387904\n0 1\n", variant: unionfind.QuickFindVariant, wantErr: unionfind.ErrInvalidArgument},
		{name: "one past max sites", input: strconv.Itoa(unionfind.MaxSites+1) + "\n0 1\n", wantErr: unionfind.ErrInvalidArgument},
		{name: "site equal to N", input: "3\n0 1\n1 3\n", wantErr: unionfind.ErrIndexOutOfRange},
		{name: "negative site", input: "3\n-1 0\n", wantErr: unionfind.ErrIndexOutOfRange},
		{name: "malformed token", input: "3\n0 one\n", wantErr: pairs.ErrMalformed},
		{name: "truncated pair", input: "3\n0 1\n2\n", wantErr: pairs.ErrTruncated},
		{name: "unknown variant", input: "3\n", variant: "fastest", wantErr: unionfind.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := connectivity.Run(context.Background(),
				connectivity.Config{Variant: tt.variant}, strings.NewReader(tt.input), nil)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestRun_SingleLineStream(t *testing.T) {
	// Longer than one default bufio.Scanner buffer.
	input := "10" + strings.Repeat(" 1 2", 20000)

	res, err := connectivity.Run(context.Background(), connectivity.Config{}, strings.NewReader(input), nil)
	require.NoError(t, err)
	assert.Equal(t, 20000, res.Pairs)
	assert.Equal(t, 1, res.Joined)
	assert.Equal(t, 9, res.Components)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := connectivity.Run(ctx, connectivity.Config{}, strings.NewReader(tinyUF), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "tiny.txt")
	require.NoError(t, os.WriteFile(input, []byte(tinyUF), 0644))

	res, err := connectivity.RunFile(context.Background(), connectivity.Config{Input: input}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Components)

	_, err = connectivity.RunFile(context.Background(), connectivity.Config{Input: filepath.Join(dir, "missing.txt")}, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = connectivity.RunFile(context.Background(), connectivity.Config{}, nil)
	assert.Error(t, err)
}

func TestSaveResult(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	res, err := connectivity.Run(context.Background(), connectivity.Config{}, strings.NewReader(tinyUF), nil)
	require.NoError(t, err)

	path, err := connectivity.SaveResult(dir, res)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "connectivity_"))
	assert.True(t, strings.HasSuffix(path, res.RunID[:8]+".json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got connectivity.Result
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *res, got)
}
