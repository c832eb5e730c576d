package gate

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	liberrors "github.com/vortex-fintech/period-lib/errors"
	"github.com/vortex-fintech/period-lib/metrics"
	"github.com/vortex-fintech/period-lib/timeutil"
)

var (
	mondayMorning   = time.Date(2014, 2, 10, 10, 0, 0, 0, time.UTC)
	mondayEvening   = time.Date(2014, 2, 10, 20, 0, 0, 0, time.UTC)
	saturdayMorning = time.Date(2014, 2, 15, 10, 0, 0, 0, time.UTC)
)

func TestNewAndAllow(t *testing.T) {
	g, err := New(Config{Name: "business-hours", Expression: "wd {mo-fr} hr {9-17}"})
	require.NoError(t, err)
	require.Equal(t, "business-hours", g.Name())
	require.Equal(t, "wd{mo-fr}|hr{9-17}", g.Expression())

	require.True(t, g.Allow(mondayMorning))
	require.False(t, g.Allow(mondayEvening))
	require.False(t, g.Allow(saturdayMorning))
}

func TestNewDefaultsName(t *testing.T) {
	g, err := New(Config{Expression: "always"})
	require.NoError(t, err)
	require.Equal(t, "default", g.Name())
	require.True(t, g.Allow(mondayMorning))
}

func TestNewRejectsMissingExpression(t *testing.T) {
	_, err := New(Config{Name: "empty"})
	require.Error(t, err)

	var er liberrors.ErrorResponse
	require.ErrorAs(t, err, &er)
	require.Equal(t, codes.InvalidArgument, er.Code)
	require.Equal(t, liberrors.Reason("validation_failed"), er.Reason)
	require.Equal(t, "required", er.Details["Expression"])
}

func TestNewRejectsMalformedExpression(t *testing.T) {
	_, err := New(Config{Name: "broken", Expression: "hr {25}"})
	require.Error(t, err)

	var er liberrors.ErrorResponse
	require.ErrorAs(t, err, &er)
	require.Equal(t, codes.InvalidArgument, er.Code)
	require.Equal(t, liberrors.Reason("invalid_period_format"), er.Reason)
	require.Contains(t, er.Message, "25 is not valid for hour")
}

func TestAllowNowUsesClock(t *testing.T) {
	frozen := timeutil.NewFrozenClock(mondayMorning)
	g, err := New(Config{Expression: "wd {mo} hr {9-16}"}, WithClock(frozen))
	require.NoError(t, err)

	require.True(t, g.AllowNow())

	frozen.Set(saturdayMorning)
	require.False(t, g.AllowNow())
}

func TestAllowCountsEvaluations(t *testing.T) {
	reg := prometheus.NewRegistry()
	g, err := New(Config{Name: "office", Expression: "wd {mo-fr}"}, WithRegisterer(reg))
	require.NoError(t, err)

	require.True(t, g.Allow(mondayMorning))
	require.True(t, g.Allow(mondayEvening))
	require.False(t, g.Allow(saturdayMorning))

	require.Equal(t, 2.0, testutil.ToFloat64(g.evals.evaluations.WithLabelValues("office", resultAllow)))
	require.Equal(t, 1.0, testutil.ToFloat64(g.evals.evaluations.WithLabelValues("office", resultDeny)))
}

func TestGateMetricsExposedOverHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	g, err := New(Config{Name: "window", Expression: "hr {0-23}"}, WithRegisterer(reg))
	require.NoError(t, err)
	require.True(t, g.Allow(mondayMorning))

	h, _ := metrics.New(metrics.Options{Registry: reg})
	srv := httptest.NewServer(h)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(body), "period_gate_evaluations_total"))
}

func TestTwoGatesShareCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	g1, err := New(Config{Name: "a", Expression: "always"}, WithRegisterer(reg))
	require.NoError(t, err)
	g2, err := New(Config{Name: "b", Expression: "never"}, WithRegisterer(reg))
	require.NoError(t, err)

	g1.Allow(mondayMorning)
	g2.Allow(mondayMorning)

	require.Equal(t, 1.0, testutil.ToFloat64(g1.evals.evaluations.WithLabelValues("a", resultAllow)))
	require.Equal(t, 1.0, testutil.ToFloat64(g2.evals.evaluations.WithLabelValues("b", resultDeny)))
}
