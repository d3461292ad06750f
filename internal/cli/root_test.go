package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/govalues/bigdecimal"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(zaptest.NewLogger(t))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"add", []string{"add", "123.45", "76.6"}, "200.05\n"},
		{"add negative", []string{"add", "--", "-5", "3"}, "-2\n"},
		{"add abs", []string{"add", "--abs", "--", "-1", "2"}, "3\n"},
		{"sub", []string{"sub", "100", "0.001"}, "99.999\n"},
		{"sub abs", []string{"sub", "--abs", "3", "5"}, "2\n"},
		{"mul", []string{"mul", "12.34", "5.6"}, "69.104\n"},
		{"mul signs", []string{"mul", "--", "-2", "-3"}, "6\n"},
		{"mul abs", []string{"mul", "--abs", "--", "-2", "3"}, "6\n"},
		{"quo", []string{"quo", "10", "4"}, "2.5\n"},
		{"quo default scale", []string{"quo", "1", "3"}, "0.333333\n"},
		{"quo scale", []string{"quo", "--scale", "4", "1", "3"}, "0.3333\n"},
		{"quo abs", []string{"quo", "--abs", "--scale=2", "--", "-2", "3"}, "0.66\n"},
		{"cmp", []string{"cmp", "--", "-0.5", "0.5"}, "-1\n"},
		{"cmp equal", []string{"cmp", "007", "7.00"}, "0\n"},
		{"cmp abs", []string{"cmp", "--abs", "--", "-2", "2"}, "0\n"},
		{"shift", []string{"shift", "1.5", "3"}, "1500\n"},
		{"shift left", []string{"shift", "--", "1.5", "-3"}, "0.0015\n"},
		{"trunc", []string{"trunc", "1.239", "2"}, "1.23\n"},
		{"trunc pads", []string{"trunc", "1.2", "4"}, "1.2000\n"},
		{"show", []string{"show", "007.1200"}, "007.1200\n7.12\n"},
		{"eval", []string{"eval", "* 10 + 1.23 4.56"}, "57.9\n"},
		{"eval split", []string{"eval", "+", "1", "2"}, "3\n"},
		{"eval scale", []string{"eval", "--scale", "2", "/ 1 3"}, "0.33\n"},
		{"log level", []string{"--log-level", "debug", "add", "1", "1"}, "2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRootCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"division by zero", []string{"quo", "1", "0"}, bigdecimal.ErrDivisionByZero},
		{"zero by zero", []string{"quo", "0", "0"}, bigdecimal.ErrDivisionByZero},
		{"invalid operand", []string{"add", "1", "x"}, bigdecimal.ErrInvalidDecimal},
		{"invalid show", []string{"show", "1."}, bigdecimal.ErrInvalidDecimal},
		{"negative scale", []string{"quo", "--scale=-1", "1", "3"}, bigdecimal.ErrScaleRange},
		{"negative trunc", []string{"trunc", "--", "1.5", "-1"}, bigdecimal.ErrScaleRange},
		{"eval division by zero", []string{"eval", "/ 1 0"}, bigdecimal.ErrDivisionByZero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, got)
		})
	}

	t.Run("arguments", func(t *testing.T) {
		for _, args := range [][]string{
			{"add", "1"},
			{"add", "1", "2", "3"},
			{"shift", "1.5", "x"},
			{"eval"},
			{"--log-level", "loud", "add", "1", "1"},
		} {
			_, err := run(t, args...)
			assert.Error(t, err, "args %v", args)
		}
	})
}

func TestRootCmd_Config(t *testing.T) {
	path := writeConfig(t, "scale = 2\nlog_level = \"debug\"\n")

	t.Run("file", func(t *testing.T) {
		got, err := run(t, "--config", path, "quo", "1", "3")
		require.NoError(t, err)
		assert.Equal(t, "0.33\n", got)
	})

	t.Run("flag overrides file", func(t *testing.T) {
		got, err := run(t, "--config", path, "--scale", "4", "quo", "1", "3")
		require.NoError(t, err)
		assert.Equal(t, "0.3333\n", got)
	})

	t.Run("invalid file", func(t *testing.T) {
		bad := writeConfig(t, "scale = -3\n")
		_, err := run(t, "--config", bad, "quo", "1", "3")
		assert.ErrorIs(t, err, bigdecimal.ErrScaleRange)
	})
}
