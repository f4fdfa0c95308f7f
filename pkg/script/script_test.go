package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plfanzen/plfanzen/pkg/types"
)

// TestCheckFlag tests flag validation scripts end to end
func TestCheckFlag(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		submitted string
		want      bool
		wantErr   string
	}{
		{
			name:      "literal comparison match",
			source:    `setFlagValidationFunction((flag) => flag === "CTF{hello}");`,
			submitted: "CTF{hello}",
			want:      true,
		},
		{
			name:      "literal comparison mismatch",
			source:    `setFlagValidationFunction((flag) => flag === "CTF{hello}");`,
			submitted: "CTF{nope}",
			want:      false,
		},
		{
			name: "hmac validator",
			source: `
				setFlagValidationFunction(function (flag) {
					return crypto.hmacSha256Hex("k", flag).startsWith("0") || flag === "CTF{x}";
				});
			`,
			submitted: "CTF{x}",
			want:      true,
		},
		{
			name:      "validator never registered",
			source:    `var x = 1;`,
			submitted: "CTF{x}",
			wantErr:   "flag validation function not set",
		},
		{
			name:      "non-boolean return",
			source:    `setFlagValidationFunction((flag) => "yes");`,
			submitted: "CTF{x}",
			wantErr:   "did not return a boolean",
		},
		{
			name:      "non-function argument",
			source:    `setFlagValidationFunction("not a function");`,
			submitted: "CTF{x}",
			wantErr:   "expects a function as its first argument",
		},
		{
			name:      "validator throws",
			source:    `setFlagValidationFunction((flag) => { throw new Error("backend unreachable"); });`,
			submitted: "CTF{x}",
			wantErr:   "backend unreachable",
		},
		{
			name:      "parse error",
			source:    `setFlagValidationFunction((flag => {`,
			submitted: "CTF{x}",
			wantErr:   "run script",
		},
		{
			name:      "imports rejected",
			source:    `const fs = require("fs"); setFlagValidationFunction((f) => true);`,
			submitted: "CTF{x}",
			wantErr:   "imports are not supported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckFlag(tt.source, tt.submitted)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Equal(t, types.KindScriptError, types.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestCheckFlagBudget tests that runaway validators are interrupted
func TestCheckFlagBudget(t *testing.T) {
	_, err := CheckFlag(`setFlagValidationFunction((flag) => { while (true) {} });`, "CTF{x}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "evaluation budget")
	assert.Equal(t, types.KindScriptError, types.KindOf(err))
}

// TestPoints tests scoring scripts
func TestPoints(t *testing.T) {
	meta := map[string]interface{}{
		"name":       "web-intro",
		"difficulty": "easy",
	}

	t.Run("dynamic scoring", func(t *testing.T) {
		src := `
			setPointsFn(function (metadata, totalSolves, solveIndex, totalCompetitors) {
				var base = metadata.difficulty === "easy" ? 100 : 500;
				return Math.max(base - totalSolves * 10, 50);
			});
		`
		points, err := Points(src, meta, 3, 2, 40)
		require.NoError(t, err)
		assert.Equal(t, int64(70), points)
	})

	t.Run("first blood bonus", func(t *testing.T) {
		src := `
			setPointsFn((metadata, totalSolves, solveIndex) => solveIndex === 0 ? 120 : 100);
		`
		points, err := Points(src, meta, 1, 0, 40)
		require.NoError(t, err)
		assert.Equal(t, int64(120), points)
	})

	t.Run("never registered", func(t *testing.T) {
		_, err := Points(`var unused = true;`, meta, 0, 0, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "points function not set")
	})

	t.Run("non-integer return", func(t *testing.T) {
		_, err := Points(`setPointsFn(() => "lots");`, meta, 0, 0, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "did not return an integer")
	})

	t.Run("fractional return", func(t *testing.T) {
		_, err := Points(`setPointsFn(() => 99.5);`, meta, 0, 0, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "did not return an integer")
	})
}

// TestSandboxEvalString tests expression evaluation for templates
func TestSandboxEvalString(t *testing.T) {
	s := New()
	require.NoError(t, s.Run(`function greet(name) { return "hello " + name; }`))

	got, err := s.EvalString(`greet("player")`)
	require.NoError(t, err)
	assert.Equal(t, "hello player", got)

	got, err = s.EvalString(`1 + 2`)
	require.NoError(t, err)
	assert.Equal(t, "3", got)

	got, err = s.EvalString(`undefined`)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = s.EvalString(`missingHelper()`)
	require.Error(t, err)
	assert.Equal(t, types.KindScriptError, types.KindOf(err))
}

// TestSandboxStatePersistsAcrossRuns tests helper loading semantics
func TestSandboxStatePersistsAcrossRuns(t *testing.T) {
	s := New()
	require.NoError(t, s.Run(`var counter = 0;`))
	require.NoError(t, s.Run(`counter += 41;`))

	got, err := s.EvalString(`counter + 1`)
	require.NoError(t, err)
	assert.Equal(t, "42", got)
}

// TestSandboxTimers tests the cooperative timer queue
func TestSandboxTimers(t *testing.T) {
	s := New()
	src := `
		var order = [];
		setTimeout(() => order.push("late"), 50);
		setTimeout(() => order.push("early"), 10);
		var cancelled = setTimeout(() => order.push("never"), 20);
		clearTimeout(cancelled);
		order.push("main");
	`
	require.NoError(t, s.Run(src))

	got, err := s.EvalString(`order.join(",")`)
	require.NoError(t, err)
	assert.Equal(t, "main,early,late", got)
}

// TestCryptoHelpers tests the crypto surface against known vectors
func TestCryptoHelpers(t *testing.T) {
	s := New()

	got, err := s.EvalString(`crypto.sha256Hex("abc")`)
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", got)

	got, err = s.EvalString(`crypto.md5Hex("abc")`)
	require.NoError(t, err)
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", got)

	got, err = s.EvalString(`crypto.hmacSha256Hex("key", "The quick brown fox jumps over the lazy dog")`)
	require.NoError(t, err)
	assert.Equal(t, "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8", got)

	// 64 hex chars for every helper output
	got, err = s.EvalString(`crypto.hmacSha256Hex("a", "b").length.toString()`)
	require.NoError(t, err)
	assert.Equal(t, "64", got)
	assert.True(t, !strings.ContainsAny(got, "ABCDEF"))
}
