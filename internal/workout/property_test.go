package workout

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var messageRe = regexp.MustCompile(
	`^Workout type: [A-Za-z]+; Duration: \d+\.\d{3} h\.; Distance: \d+\.\d{3} km; Mean speed: \d+\.\d{3} km/h; Calories burned: \d+\.\d{3}\.$`,
)

func drawPackage(t *rapid.T) (string, []float64) {
	actions := float64(rapid.IntRange(1, 1_000_000).Draw(t, "actions"))
	duration := rapid.Float64Range(0.01, 24).Draw(t, "duration")
	weight := rapid.Float64Range(30, 200).Draw(t, "weight")

	switch rapid.SampledFrom([]string{CodeRunning, CodeWalking, CodeSwimming}).Draw(t, "code") {
	case CodeWalking:
		height := rapid.Float64Range(50, 250).Draw(t, "height")
		return CodeWalking, []float64{actions, duration, weight, height}
	case CodeSwimming:
		poolLen := rapid.Float64Range(10, 50).Draw(t, "poolLen")
		laps := float64(rapid.IntRange(0, 500).Draw(t, "laps"))
		return CodeSwimming, []float64{actions, duration, weight, poolLen, laps}
	default:
		return CodeRunning, []float64{actions, duration, weight}
	}
}

func TestSummaryIdempotentForAllValidPackages(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		code, data := drawPackage(t)

		rec, err := ParsePackage(code, data)
		require.NoError(t, err)

		first := BuildSummary(rec)
		second := BuildSummary(rec)
		require.Equal(t, first, second, "summaries of the same record must be bit-identical")
		require.Equal(t, first.Message(), second.Message())
	})
}

func TestMessageAlwaysRendersThreeDecimals(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		code, data := drawPackage(t)

		rec, err := ParsePackage(code, data)
		require.NoError(t, err)

		msg := BuildSummary(rec).Message()
		require.Regexp(t, messageRe, msg)
	})
}

func TestRunningSpeedIsDistanceOverDuration(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		actions := float64(rapid.IntRange(1, 1_000_000).Draw(t, "actions"))
		duration := rapid.Float64Range(0.01, 24).Draw(t, "duration")
		weight := rapid.Float64Range(30, 200).Draw(t, "weight")

		rec, err := ParsePackage(CodeRunning, []float64{actions, duration, weight})
		require.NoError(t, err)

		require.InEpsilon(t, rec.DistanceKm()/duration, rec.MeanSpeedKmh(), 1e-12)
		require.Greater(t, rec.CaloriesKcal(), 0.0)
	})
}

func TestWrongArityAlwaysRejected(t *testing.T) {
	arity := map[string]int{CodeRunning: 3, CodeWalking: 4, CodeSwimming: 5}

	rapid.Check(t, func(t *rapid.T) {
		code := rapid.SampledFrom([]string{CodeRunning, CodeWalking, CodeSwimming}).Draw(t, "code")
		n := rapid.IntRange(0, 8).Filter(func(n int) bool { return n != arity[code] }).Draw(t, "n")

		data := make([]float64, n)
		for i := range data {
			data[i] = 1
		}

		rec, err := ParsePackage(code, data)
		require.ErrorIs(t, err, ErrInvalidArguments)
		require.Nil(t, rec)
	})
}
